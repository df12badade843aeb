package ir

import (
	"strings"

	"github.com/slowlang/irkit/compiler/op"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"
)

type (
	// Instr is an operator and a flat list of operand slots.
	// It knows nothing of field names: typed views in package format do.
	//
	// Slots hold nil or an Operand. The slot count is len(ops),
	// cap(ops) is never less than MinOperands.
	Instr struct {
		Op *op.Operator

		ops []Operand
	}
)

// MinOperands is the smallest slot capacity of any instruction.
const MinOperands = 5

// New makes an instruction with n empty slots.
func New(o *op.Operator, n int) *Instr {
	return &Instr{
		Op:  o,
		ops: make([]Operand, n, max(n, MinOperands)),
	}
}

// Operand returns slot i.
func (in *Instr) Operand(i int) Operand {
	in.check(i)

	return in.ops[i]
}

// ClearOperand returns slot i and empties it.
func (in *Instr) ClearOperand(i int) Operand {
	in.check(i)

	x := in.ops[i]
	in.ops[i] = nil

	return x
}

// PutOperand stores x in slot i. The slot must exist.
// A nil pointer of any operand kind empties the slot.
func (in *Instr) PutOperand(i int, x Operand) {
	in.check(i)

	if IsNil(x) {
		x = nil
	}

	in.ops[i] = x
}

func (in *Instr) NumOperands() int { return len(in.ops) }

// ResizeOperands sets the slot count to n.
// Slots up to min(old, n) are kept, the rest are empty.
func (in *Instr) ResizeOperands(n int) {
	if n < 0 {
		panic(errors.New("%v: negative operand count %d", in.Op, n))
	}

	l := len(in.ops)

	if n > cap(in.ops) {
		tlog.V("ir_realloc").Printw("grow operands", "op", in.Op, "len", l, "cap", cap(in.ops), "to", n, "from", loc.Caller(1))

		ops := make([]Operand, n, max(n, MinOperands))
		copy(ops, in.ops)
		in.ops = ops

		return
	}

	for i := n; i < l; i++ {
		in.ops[i] = nil
	}

	in.ops = in.ops[:n]

	for i := l; i < n; i++ {
		in.ops[i] = nil
	}
}

// Reset changes the operator and leaves n empty slots.
// The instruction keeps its identity.
func (in *Instr) Reset(o *op.Operator, n int) {
	in.Op = o
	in.ResizeOperands(n)

	for i := range in.ops {
		in.ops[i] = nil
	}
}

// Copy makes a new instruction with the same operator and operands.
func (in *Instr) Copy() *Instr {
	c := New(in.Op, len(in.ops))
	copy(c.ops, in.ops)

	return c
}

// NumDefs is the number of def slots, def-uses included.
// They are the first slots of the instruction.
func (in *Instr) NumDefs() int {
	if in.Op.HasVarDefs() {
		return len(in.ops) - in.Op.FixedPureUses()
	}

	return in.Op.NumberOfDefs()
}

// NumUses is the number of use slots, def-uses included.
// They are the last slots of the instruction.
func (in *Instr) NumUses() int {
	if in.Op.HasVarUses() {
		return len(in.ops) - in.Op.FixedPureDefs()
	}

	return in.Op.NumberOfUses()
}

// RangeDefs calls f for non-empty def slots.
func (in *Instr) RangeDefs(f func(slot int, x Operand) bool) {
	n := min(in.NumDefs(), len(in.ops))

	for i := 0; i < n; i++ {
		if in.ops[i] == nil {
			continue
		}

		if !f(i, in.ops[i]) {
			return
		}
	}
}

// RangeUses calls f for non-empty use slots.
func (in *Instr) RangeUses(f func(slot int, x Operand) bool) {
	st := in.Op.FixedPureDefs()
	end := min(st+in.NumUses(), len(in.ops))

	if in.Op.HasVarDefs() {
		st = len(in.ops) - in.NumUses()
		end = len(in.ops)
	}

	for i := max(st, 0); i < end; i++ {
		if in.ops[i] == nil {
			continue
		}

		if !f(i, in.ops[i]) {
			return
		}
	}
}

// Replace puts to into every use slot holding an operand similar to from.
func (in *Instr) Replace(from, to Operand) (n int) {
	if IsNil(to) {
		to = nil
	}

	in.RangeUses(func(slot int, x Operand) bool {
		if Similar(x, from) {
			in.ops[slot] = to
			n++
		}

		return true
	})

	return n
}

func (in *Instr) String() string {
	var b strings.Builder

	b.WriteString(in.Op.Name())

	for i, x := range in.ops {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}

		if x == nil {
			b.WriteString("<nil>")
			continue
		}

		b.WriteString(x.String())
	}

	return b.String()
}

func (in *Instr) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if in == nil {
		return e.AppendNil(b)
	}

	b = e.AppendMap(b, 2)

	b = e.AppendString(b, "op")
	b = e.AppendString(b, in.Op.Name())

	b = e.AppendString(b, "ops")
	b = e.AppendTag(b, tlwire.Array, len(in.ops))

	for _, x := range in.ops {
		if x == nil {
			b = e.AppendNil(b)
			continue
		}

		b = e.AppendString(b, x.String())
	}

	return b
}

func (in *Instr) check(i int) {
	if i >= 0 && i < len(in.ops) {
		return
	}

	panic(errors.New("%v: slot %d out of range [0:%d) at %v", in.Op, i, len(in.ops), loc.Caller(2)))
}
