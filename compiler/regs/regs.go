package regs

import (
	"math/bits"
	"strings"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Reg is an IA32 physical register or a condition flag the instruction
	// tables track as a register.
	Reg uint8

	// Set is a mask of physical registers.
	Set uint64
)

const (
	EAX Reg = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI

	AF
	CF
	OF
	PF
	SF
	ZF

	C0
	C1
	C2
	C3

	ST0

	NumRegs
)

const (
	None Set = 0

	Flags       = Set(1)<<AF | Set(1)<<CF | Set(1)<<OF | Set(1)<<PF | Set(1)<<SF | Set(1)<<ZF
	FPFlags     = Set(1)<<C0 | Set(1)<<C1 | Set(1)<<C2 | Set(1)<<C3
	CallerSaved = Set(1)<<EAX | Set(1)<<ECX | Set(1)<<EDX
	CalleeSaved = Set(1)<<EBX | Set(1)<<EBP | Set(1)<<ESI | Set(1)<<EDI
)

var names = [NumRegs]string{
	EAX: "eax", ECX: "ecx", EDX: "edx", EBX: "ebx",
	ESP: "esp", EBP: "ebp", ESI: "esi", EDI: "edi",
	AF: "af", CF: "cf", OF: "of", PF: "pf", SF: "sf", ZF: "zf",
	C0: "c0", C1: "c1", C2: "c2", C3: "c3",
	ST0: "st0",
}

var groups = map[string]Set{
	"flags":       Flags,
	"fpflags":     FPFlags,
	"callersaved": CallerSaved,
	"calleesaved": CalleeSaved,
}

var groupIdents = map[string]string{
	"flags":       "Flags",
	"fpflags":     "FPFlags",
	"callersaved": "CallerSaved",
	"calleesaved": "CalleeSaved",
}

func Of(rs ...Reg) (s Set) {
	for _, r := range rs {
		s |= 1 << r
	}

	return s
}

// Lookup resolves a register or a register group name.
func Lookup(name string) (Set, bool) {
	name = strings.ToLower(name)

	if s, ok := groups[name]; ok {
		return s, true
	}

	for r, n := range names {
		if n == name {
			return Of(Reg(r)), true
		}
	}

	return None, false
}

// IsGroup reports whether name is a register group rather than a single register.
func IsGroup(name string) bool {
	_, ok := groups[strings.ToLower(name)]
	return ok
}

// Ident is the Go identifier of a register or a group in this package.
func Ident(name string) (string, bool) {
	name = strings.ToLower(name)

	if id, ok := groupIdents[name]; ok {
		return id, true
	}

	for _, n := range names {
		if n == name {
			return strings.ToUpper(n), true
		}
	}

	return "", false
}

func (r Reg) String() string {
	if r >= NumRegs {
		return "reg?"
	}

	return names[r]
}

func (s Set) Has(r Reg) bool {
	return s&(1<<r) != 0
}

func (s Set) With(rs ...Reg) Set {
	return s | Of(rs...)
}

func (s Set) Without(rs ...Reg) Set {
	return s &^ Of(rs...)
}

func (s Set) Union(x Set) Set     { return s | x }
func (s Set) Intersect(x Set) Set { return s & x }
func (s Set) Overlaps(x Set) bool { return s&x != 0 }
func (s Set) Empty() bool         { return s == 0 }

// Len is the number of registers in the set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

func (s Set) Range(f func(r Reg) bool) {
	for x := uint64(s); x != 0; x &= x - 1 {
		if !f(Reg(bits.TrailingZeros64(x))) {
			return
		}
	}
}

func (s Set) Regs() (r []Reg) {
	s.Range(func(x Reg) bool {
		r = append(r, x)
		return true
	})

	return r
}

func (s Set) String() string {
	var b strings.Builder

	b.WriteByte('{')

	s.Range(func(r Reg) bool {
		if b.Len() > 1 {
			b.WriteByte(',')
		}

		b.WriteString(r.String())

		return true
	})

	b.WriteByte('}')

	return b.String()
}

func (s Set) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	b = e.AppendTag(b, tlwire.Array, -1)

	s.Range(func(r Reg) bool {
		b = e.AppendString(b, r.String())
		return true
	})

	return e.AppendBreak(b)
}
