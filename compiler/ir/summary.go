package ir

import "github.com/slowlang/irkit/compiler/set"

// Summary collects virtual registers defined and used by code.
// A register both defined and used is in both sets.
func Summary(code []*Instr) (defs, uses set.Bits[int]) {
	defs = set.MakeBits(0)
	uses = set.MakeBits(0)

	for _, in := range code {
		in.RangeDefs(func(_ int, x Operand) bool {
			if r, ok := x.(*Reg); ok && !r.Phys {
				defs.Set(r.ID)
			}

			return true
		})

		in.RangeUses(func(_ int, x Operand) bool {
			if r, ok := x.(*Reg); ok && !r.Phys {
				uses.Set(r.ID)
			}

			return true
		})
	}

	return defs, uses
}

// UpwardExposed returns registers used in code before any def of them in code.
func UpwardExposed(code []*Instr) set.Bits[int] {
	seen := set.MakeBits(0)
	exp := set.MakeBits(0)

	for _, in := range code {
		in.RangeUses(func(_ int, x Operand) bool {
			if r, ok := x.(*Reg); ok && !r.Phys && !seen.IsSet(r.ID) {
				exp.Set(r.ID)
			}

			return true
		})

		in.RangeDefs(func(_ int, x Operand) bool {
			if r, ok := x.(*Reg); ok && !r.Phys {
				seen.Set(r.ID)
			}

			return true
		})
	}

	return exp
}
