package ir

import (
	"testing"

	"github.com/slowlang/irkit/compiler/op"
	"github.com/slowlang/irkit/compiler/regs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperandSlots(t *testing.T) {
	in := New(op.Lookup(op.IntAdd), 3)

	require.Equal(t, 3, in.NumOperands())
	assert.Equal(t, MinOperands, cap(in.ops))

	r := VReg(1, Int)
	c := IntConst(5)

	in.PutOperand(0, r)
	in.PutOperand(2, c)

	assert.Same(t, r, in.Operand(0))
	assert.Nil(t, in.Operand(1))

	x := in.ClearOperand(2)
	assert.Same(t, c, x)
	assert.Nil(t, in.Operand(2))
	assert.Nil(t, in.ClearOperand(2))

	in.PutOperand(1, x)
	assert.Same(t, c, in.Operand(1))

	assert.Panics(t, func() { in.Operand(3) })
	assert.Panics(t, func() { in.PutOperand(-1, r) })
	assert.Panics(t, func() { in.ClearOperand(5) })
}

func TestResizeOperands(t *testing.T) {
	in := New(op.Lookup(op.Call), 4)

	for i := 0; i < 4; i++ {
		in.PutOperand(i, IntConst(int64(i)))
	}

	in.ResizeOperands(2)
	assert.Equal(t, 2, in.NumOperands())

	in.ResizeOperands(4)
	assert.Equal(t, 4, in.NumOperands())
	assert.Equal(t, IntConst(1), in.Operand(1))
	assert.Nil(t, in.Operand(2))
	assert.Nil(t, in.Operand(3))

	in.ResizeOperands(12)
	assert.Equal(t, 12, in.NumOperands())
	assert.Equal(t, IntConst(0), in.Operand(0))
	assert.Nil(t, in.Operand(11))

	in.ResizeOperands(0)
	assert.Equal(t, 0, in.NumOperands())
	assert.Panics(t, func() { in.Operand(0) })

	assert.Panics(t, func() { in.ResizeOperands(-1) })
}

func TestResetKeepsIdentity(t *testing.T) {
	in := New(op.Lookup(op.IntAdd), 3)
	in.PutOperand(0, VReg(1, Int))
	in.PutOperand(1, VReg(2, Int))
	in.PutOperand(2, VReg(3, Int))

	p := in

	in.Reset(op.Lookup(op.IntMove), 2)

	assert.Same(t, p, in)
	assert.Same(t, op.Lookup(op.IntMove), in.Op)
	assert.Equal(t, 2, in.NumOperands())
	assert.Nil(t, in.Operand(0))
	assert.Nil(t, in.Operand(1))
}

func TestCopy(t *testing.T) {
	in := New(op.Lookup(op.IntAdd), 3)
	in.PutOperand(0, VReg(1, Int))
	in.PutOperand(2, IntConst(7))

	c := in.Copy()
	assert.NotSame(t, in, c)
	assert.Same(t, in.Op, c.Op)
	assert.Equal(t, in.String(), c.String())

	c.ClearOperand(0)
	assert.NotNil(t, in.Operand(0))
}

func TestDefsUses(t *testing.T) {
	r1, r2, r3 := VReg(1, Int), VReg(2, Int), VReg(3, Int)

	add := New(op.Lookup(op.IntAdd), 3)
	add.PutOperand(0, r1)
	add.PutOperand(1, r2)
	add.PutOperand(2, r3)

	assert.Equal(t, 1, add.NumDefs())
	assert.Equal(t, 2, add.NumUses())
	assert.Equal(t, []int{0}, slots(add.RangeDefs))
	assert.Equal(t, []int{1, 2}, slots(add.RangeUses))

	acc := New(op.Lookup(op.IA32Add), 2)
	acc.PutOperand(0, PReg(regs.EAX, Int))
	acc.PutOperand(1, r2)

	assert.Equal(t, []int{0}, slots(acc.RangeDefs))
	assert.Equal(t, []int{0, 1}, slots(acc.RangeUses))

	call := New(op.Lookup(op.Call), 4+3)
	for i := 0; i < call.NumOperands(); i++ {
		call.PutOperand(i, VReg(10+i, Int))
	}

	assert.Equal(t, 1, call.NumDefs())
	assert.Equal(t, 6, call.NumUses())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slots(call.RangeUses))

	pro := New(op.Lookup(op.Prologue), 3)
	pro.PutOperand(0, r1)
	pro.PutOperand(2, r3)

	assert.Equal(t, 3, pro.NumDefs())
	assert.Equal(t, 0, pro.NumUses())
	assert.Equal(t, []int{0, 2}, slots(pro.RangeDefs))
	assert.Empty(t, slots(pro.RangeUses))
}

func TestReplace(t *testing.T) {
	r1, r2 := VReg(1, Int), VReg(2, Int)

	in := New(op.Lookup(op.IntAdd), 3)
	in.PutOperand(0, r1)
	in.PutOperand(1, VReg(1, Int))
	in.PutOperand(2, r1)

	n := in.Replace(r1, r2)
	assert.Equal(t, 2, n)
	assert.Same(t, r1, in.Operand(0))
	assert.Same(t, r2, in.Operand(1))
	assert.Same(t, r2, in.Operand(2))
}

func TestSummary(t *testing.T) {
	r1, r2, r3 := VReg(1, Int), VReg(2, Int), VReg(3, Int)

	mov := New(op.Lookup(op.IntMove), 2)
	mov.PutOperand(0, r1)
	mov.PutOperand(1, r2)

	add := New(op.Lookup(op.IntAdd), 3)
	add.PutOperand(0, r3)
	add.PutOperand(1, r1)
	add.PutOperand(2, PReg(regs.ESP, Int))

	defs, uses := Summary([]*Instr{mov, add})
	assert.Equal(t, []int{1, 3}, defs.Slice())
	assert.Equal(t, []int{1, 2}, uses.Slice())

	exp := UpwardExposed([]*Instr{mov, add})
	assert.Equal(t, []int{2}, exp.Slice())
}

func TestInstrString(t *testing.T) {
	in := New(op.Lookup(op.IntAdd), 3)
	in.PutOperand(0, VReg(1, Int))
	in.PutOperand(2, IntConst(3))

	assert.Equal(t, "IntAdd v1:int, <nil>, 3", in.String())
	assert.Equal(t, "Nop", New(op.Lookup(op.Nop), 0).String())
}

func TestSimilar(t *testing.T) {
	assert.True(t, Similar(VReg(1, Int), VReg(1, Int)))
	assert.False(t, Similar(VReg(1, Int), VReg(1, Long)))
	assert.False(t, Similar(VReg(1, Int), IntConst(1)))
	assert.True(t, Similar(NewLabel(3), NewLabel(3)))
	assert.True(t, Similar(nil, nil))
	assert.False(t, Similar(VReg(1, Int), nil))

	assert.Equal(t, "true", TrueGuard.String())
	assert.Equal(t, "esp", PReg(regs.ESP, Int).String())
	assert.Equal(t, GT, LT.Flip())
	assert.Equal(t, GE, LT.Negate())
	assert.Equal(t, EQ, EQ.Flip())
}

func slots(r func(func(int, Operand) bool)) (s []int) {
	r(func(slot int, _ Operand) bool {
		s = append(s, slot)
		return true
	})

	return s
}

func TestTypedNilOperand(t *testing.T) {
	in := New(op.Lookup(op.IntAdd), 3)
	in.PutOperand(0, VReg(1, Int))
	in.PutOperand(1, (*Reg)(nil))
	in.PutOperand(2, (*Const)(nil))

	assert.Nil(t, in.Operand(1))
	assert.Nil(t, in.Operand(2))
	assert.Equal(t, "IntAdd v1:int, <nil>, <nil>", in.String())

	in.PutOperand(2, VReg(2, Int))

	n := in.Replace(VReg(2, Int), (*Reg)(nil))
	assert.Equal(t, 1, n)
	assert.Nil(t, in.Operand(2))

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil((*Label)(nil)))
	assert.False(t, IsNil(NewLabel(0)))

	assert.False(t, Similar((*Reg)(nil), VReg(1, Int)))
	assert.False(t, Similar(VReg(1, Int), (*Reg)(nil)))
	assert.True(t, Similar((*Reg)(nil), nil))
	assert.True(t, Similar((*Reg)(nil), (*Const)(nil)))
}
