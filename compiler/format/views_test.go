package format

import (
	"testing"

	"github.com/slowlang/irkit/compiler/ir"
	"github.com/slowlang/irkit/compiler/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	for id := op.Format(0); id < op.NumFormats; id++ {
		f := Lookup(id)
		require.NotNil(t, f, "%v", id)

		assert.Equal(t, id, f.ID)
		assert.Equal(t, id.String(), f.Name)

		g, ok := ByName(f.Name)
		assert.True(t, ok)
		assert.Same(t, f, g)
	}

	assert.Nil(t, Lookup(op.NumFormats))

	assert.Equal(t, FixedLayout, CondMove.Kind())
	assert.Equal(t, VariableLayout, LookupSwitch.Kind())
	assert.Equal(t, 3, LookupSwitch.Group)
	assert.Equal(t, 2, TableSwitch.Group)
	assert.Equal(t, 1, Call.Group)
}

// Every operator's fixed counts match the layout of its format.
func TestOperatorCountsMatchLayouts(t *testing.T) {
	op.Default().Range(func(o *op.Operator) bool {
		f := Lookup(o.Format())

		var defs, defUses, uses int

		for _, fi := range f.Fields {
			if fi.Var {
				continue
			}

			switch fi.Role {
			case Def:
				defs++
			case DefUse:
				defUses++
			case Use:
				uses++
			}
		}

		assert.Equal(t, defs, o.FixedPureDefs(), "%v", o)
		assert.Equal(t, defUses, o.NumberOfDefUses(), "%v", o)
		assert.Equal(t, uses, o.FixedPureUses(), "%v", o)
		assert.Equal(t, f.Kind() == VariableLayout, o.HasVarUsesOrDefs(), "%v", o)

		return true
	})
}

func TestCondMoveRoundTrip(t *testing.T) {
	r := ir.VReg(1, ir.Int)
	v1, v2 := ir.VReg(2, ir.Int), ir.IntConst(0)
	c := ir.NewCond(ir.LT)
	tv, fv := ir.IntConst(1), ir.IntConst(-1)

	for _, code := range []op.Opcode{op.IntCondMove, op.RefCondMove} {
		in := CondMove.Create(op.Lookup(code), r, v1, v2, c, tv, fv)

		require.Equal(t, 6, in.NumOperands())

		assert.Same(t, r, CondMove.Result.Get(in))
		assert.Equal(t, ir.Operand(v1), CondMove.Val1.Get(in))
		assert.Equal(t, ir.Operand(v2), CondMove.Val2.Get(in))
		assert.Same(t, c, CondMove.Cond.Get(in))
		assert.Equal(t, ir.Operand(tv), CondMove.TrueValue.Get(in))
		assert.Equal(t, ir.Operand(fv), CondMove.FalseValue.Get(in))

		for i, x := range []Field[ir.Operand]{CondMove.Val1, CondMove.Val2, CondMove.TrueValue, CondMove.FalseValue} {
			assert.Equal(t, []int{1, 2, 4, 5}[i], x.IndexOf(in))
		}

		assert.Equal(t, 3, CondMove.Cond.IndexOf(in))
	}
}

func TestAttemptSlotOrder(t *testing.T) {
	r := ir.VReg(1, ir.Int)
	addr := ir.VReg(2, ir.Addr)
	off := ir.IntConst(8)
	ov, nv := ir.VReg(3, ir.Int), ir.VReg(4, ir.Int)
	loc := &ir.Loc{Field: "count"}
	g := ir.VReg(5, ir.Validation)

	in := Attempt.Create(op.Lookup(op.AttemptInt), r, addr, off, ov, nv, loc, g)

	want := []ir.Operand{r, addr, off, ov, nv, loc, g}

	require.Equal(t, len(want), in.NumOperands())

	for i, x := range want {
		assert.Same(t, x, in.Operand(i), "slot %d", i)
	}

	assert.Same(t, r, Attempt.Result.Get(in))
	assert.Same(t, loc, Attempt.Location.Get(in))
	assert.Equal(t, ir.Operand(g), Attempt.Guard.Get(in))
	assert.Equal(t, 6, Attempt.Guard.IndexOf(in))
}

func TestCallParams(t *testing.T) {
	r := ir.VReg(1, ir.Ref)
	a := ir.VReg(2, ir.Addr)
	m := &ir.Method{Class: "java/lang/Object", Name: "hashCode", Desc: "()I"}
	g := ir.TrueGuard
	p0, p1 := ir.VReg(3, ir.Ref), ir.IntConst(4)

	in := Call.Create(op.Lookup(op.Call), r, a, m, g, 2)
	Call.Params.Set(in, 0, p0)
	Call.Params.Set(in, 1, p1)

	assert.Equal(t, 2, Call.Params.Count(in))
	assert.Equal(t, ir.Operand(p0), Call.Params.Get(in, 0))
	assert.Equal(t, ir.Operand(p1), Call.Params.Get(in, 1))
	assert.False(t, Call.Params.Has(in, 2))
	assert.True(t, Call.Params.Has(in, 1))
	assert.True(t, Call.Params.HasAny(in))
	assert.Equal(t, 5, Call.Params.IndexOf(in, 1))

	assert.Same(t, m, Call.Method.Get(in))
	assert.Panics(t, func() { Call.Params.Get(in, 2) })
}

func TestLookupSwitchSharedRegion(t *testing.T) {
	v := ir.VReg(1, ir.Int)
	def := ir.NewLabel(9)

	in := LookupSwitch.Create(op.Lookup(op.LookupSwitch), v, nil, nil, def, ir.NewProfile(0.1), 3)

	for k := 0; k < 3; k++ {
		LookupSwitch.Matches.Set(in, k, ir.IntConst(int64(k*10)))
		LookupSwitch.Targets.Set(in, k, ir.NewLabel(k+1))
		LookupSwitch.BranchProfiles.Set(in, k, ir.NewProfile(0.3))
	}

	assert.Equal(t, 5+3*3, in.NumOperands())
	assert.Equal(t, 3, LookupSwitch.Matches.Count(in))
	assert.Equal(t, 3, LookupSwitch.Targets.Count(in))
	assert.Equal(t, 3, LookupSwitch.BranchProfiles.Count(in))

	assert.Equal(t, int64(20), LookupSwitch.Matches.Get(in, 2).Value)
	assert.Equal(t, 3, LookupSwitch.Targets.Get(in, 2).Block)
	assert.Equal(t, 5+2*3+1, LookupSwitch.Targets.IndexOf(in, 2))

	LookupSwitch.Matches.Resize(in, 5)

	assert.Equal(t, 5, LookupSwitch.Matches.Count(in))
	assert.Equal(t, 5, LookupSwitch.Targets.Count(in))
	assert.Equal(t, 5, LookupSwitch.BranchProfiles.Count(in))

	assert.Equal(t, 1, LookupSwitch.Targets.Get(in, 0).Block)
	assert.Nil(t, LookupSwitch.Targets.Get(in, 4))
	assert.False(t, LookupSwitch.Targets.Has(in, 4))
	assert.Same(t, def, LookupSwitch.Default.Get(in))

	LookupSwitch.Targets.Resize(in, 1)

	assert.Equal(t, 1, LookupSwitch.Matches.Count(in))
	assert.Equal(t, 1, LookupSwitch.BranchProfiles.Count(in))
	assert.Equal(t, 5+3, in.NumOperands())
}

func TestVarRegionResize(t *testing.T) {
	in := TableSwitch.Create(op.Lookup(op.TableSwitch), ir.VReg(1, ir.Int), nil, nil, ir.IntConst(0), ir.IntConst(3), ir.NewLabel(5), nil, 0)

	for _, n := range []int{0, 1, 4, 2, 7, 0, 3} {
		TableSwitch.Targets.Resize(in, n)

		assert.Equal(t, n, TableSwitch.Targets.Count(in), "n %d", n)
		assert.Equal(t, n, TableSwitch.BranchProfiles.Count(in), "n %d", n)
		assert.False(t, TableSwitch.Targets.Has(in, n), "n %d", n)
		assert.Equal(t, 7+2*n, in.NumOperands())
	}

	assert.Panics(t, func() { TableSwitch.Targets.Resize(in, -1) })
}

func TestHasAnyNeedsFirstElement(t *testing.T) {
	in := Phi.Create(op.Lookup(op.Phi), ir.VReg(1, ir.Int), 2)

	assert.Equal(t, 2, Phi.Values.Count(in))
	assert.False(t, Phi.Values.HasAny(in))

	Phi.Values.Set(in, 1, ir.VReg(2, ir.Int))
	assert.False(t, Phi.Values.HasAny(in))
	assert.True(t, Phi.Values.Has(in, 1))

	Phi.Values.Set(in, 0, ir.VReg(3, ir.Int))
	assert.True(t, Phi.Values.HasAny(in))
	assert.False(t, Phi.Preds.HasAny(in))

	Phi.Values.Resize(in, 0)
	assert.False(t, Phi.Values.HasAny(in))
}

func TestMutate(t *testing.T) {
	in := Binary.Create(op.Lookup(op.IntAdd), ir.VReg(1, ir.Int), ir.VReg(2, ir.Int), ir.VReg(3, ir.Int))
	p := in

	r := ir.VReg(4, ir.Int)

	in = Move.Mutate(in, op.Lookup(op.IntMove), r, nil)

	assert.Same(t, p, in)
	assert.Same(t, op.Lookup(op.IntMove), in.Op)
	assert.Equal(t, 2, in.NumOperands())
	assert.Same(t, r, Move.Result.Get(in))
	assert.False(t, Move.Val.Has(in))

	in = Phi.Mutate(in, op.Lookup(op.Phi), r, 3)
	assert.Equal(t, 1+2*3, in.NumOperands())

	for k := 0; k < 3; k++ {
		assert.False(t, Phi.Values.Has(in, k))
		assert.False(t, Phi.Preds.Has(in, k))
	}

	in = Empty.Mutate(in, op.Lookup(op.Nop))
	assert.Equal(t, 0, in.NumOperands())
	assert.Same(t, p, in)

	assert.Panics(t, func() { Move.Mutate(in, op.Lookup(op.IntAdd), r, nil) })
}

func TestGetClear(t *testing.T) {
	g := ir.VReg(2, ir.Validation)
	ref := ir.VReg(1, ir.Ref)

	in := NullCheck.Create(op.Lookup(op.NullCheck), g, ref)

	x := NullCheck.Ref.GetClear(in)
	assert.Equal(t, ir.Operand(ref), x)
	assert.Nil(t, NullCheck.Ref.Get(in))
	assert.False(t, NullCheck.Ref.Has(in))

	other := Move.Create(op.Lookup(op.IntMove), ir.VReg(3, ir.Ref), x)
	assert.Equal(t, x, Move.Val.Get(other))

	call := Call.Create(op.Lookup(op.SysCall), nil, nil, nil, nil, 1)
	Call.Params.Set(call, 0, x)

	assert.Equal(t, x, Call.Params.GetClear(call, 0))
	assert.False(t, Call.Params.Has(call, 0))
	assert.Equal(t, 1, Call.Params.Count(call))
}

func TestSetNil(t *testing.T) {
	in := Binary.Create(op.Lookup(op.IntSub), ir.VReg(1, ir.Int), ir.VReg(2, ir.Int), ir.IntConst(1))

	Binary.Result.Set(in, nil)
	assert.False(t, Binary.Result.Has(in))
	assert.Nil(t, in.Operand(0))

	var r *ir.Reg
	assert.Equal(t, r, Binary.Result.Get(in))
}

func TestTypedNilClearsSlot(t *testing.T) {
	var val2 *ir.Reg

	in := Binary.Create(op.Lookup(op.IntSub), ir.VReg(1, ir.Int), ir.VReg(2, ir.Int), val2)

	assert.False(t, Binary.Val2.Has(in))
	assert.Nil(t, in.Operand(2))
	assert.Equal(t, "IntSub v1:int, v2:int, <nil>", in.String())
	assert.Equal(t, "IntSub Result=v1:int Val1=v2:int", string(Append(nil, in)))

	in = Binary.Mutate(in, op.Lookup(op.IntAdd), nil, (*ir.Const)(nil), ir.IntConst(1))
	assert.False(t, Binary.Result.Has(in))
	assert.False(t, Binary.Val1.Has(in))
	assert.True(t, Binary.Val2.Has(in))

	c := Call.Create(op.Lookup(op.Call), nil, nil, nil, ir.TrueGuard, 2)
	Call.Params.Set(c, 0, (*ir.Reg)(nil))
	Call.Params.Set(c, 1, (*ir.Label)(nil))

	assert.False(t, Call.Params.HasAny(c))
	assert.False(t, Call.Params.Has(c, 0))
	assert.False(t, Call.Params.Has(c, 1))
	assert.NoError(t, Check(c))
}

func TestConformanceGuard(t *testing.T) {
	defer func(v bool) { Verify = v }(Verify)

	in := Binary.Create(op.Lookup(op.IntAdd), ir.VReg(1, ir.Int), ir.VReg(2, ir.Int), ir.VReg(3, ir.Int))

	assert.True(t, Binary.Conforms(in))
	assert.True(t, Binary.Conforms(in))
	assert.False(t, Unary.Conforms(in))
	assert.False(t, Unary.Conforms(in))
	assert.Equal(t, 3, in.NumOperands())

	Verify = false
	assert.NotPanics(t, func() { Unary.Result.Get(in) })

	Verify = true

	func() {
		defer func() {
			p := recover()
			require.NotNil(t, p)

			e, ok := p.(*NonConformError)
			require.True(t, ok, "%T", p)

			assert.Equal(t, "Unary", e.Format)
			assert.Same(t, op.Lookup(op.IntAdd), e.Op)
			assert.Contains(t, e.Error(), "Unary")
			assert.Contains(t, e.Error(), "IntAdd")
		}()

		Unary.Val.Get(in)
	}()

	assert.Panics(t, func() { Call.Params.Count(in) })
	assert.NotPanics(t, func() { Binary.Val1.Get(in) })

	assert.Panics(t, func() { Binary.Create(op.Lookup(op.IntNeg), nil, nil, nil) })
}

func TestTypeMismatchUnderVerify(t *testing.T) {
	defer func(v bool) { Verify = v }(Verify)

	in := Move.Create(op.Lookup(op.IntMove), nil, nil)
	in.PutOperand(0, ir.IntConst(1))

	Verify = false
	assert.Nil(t, Move.Result.Get(in))

	Verify = true
	assert.Panics(t, func() { Move.Result.Get(in) })
}

func TestFail(t *testing.T) {
	in := Goto.Create(op.Lookup(op.Goto), ir.NewLabel(1))

	defer func() {
		p := recover()

		e, ok := p.(*NonConformError)
		require.True(t, ok, "%T", p)

		assert.Equal(t, "Call", e.Format)
		assert.Same(t, in.Op, e.Op)
		assert.Equal(t, in.String(), e.Instr)
		assert.Contains(t, e.Error(), "does not conform to format Call")
	}()

	Call.Fail(in)
}
