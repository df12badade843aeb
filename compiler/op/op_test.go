package op

import (
	"testing"

	"github.com/slowlang/irkit/compiler/regs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/tlog/tlwire"
)

func TestBranchPredicates(t *testing.T) {
	for _, tc := range []struct {
		traits Traits

		cond, uncond, direct, indirect bool
	}{
		{traits: branch, uncond: true, direct: true},
		{traits: branch | conditional, cond: true, direct: true},
		{traits: branch | indirect, uncond: true, indirect: true},
		{traits: branch | conditional | indirect, cond: true, indirect: true},
		{traits: conditional},
		{traits: indirect},
		{traits: none},
	} {
		o := &Operator{name: "x", traits: tc.traits}

		assert.Equal(t, tc.cond, o.IsConditionalBranch(), "cond %v", tc.traits)
		assert.Equal(t, tc.uncond, o.IsUnconditionalBranch(), "uncond %v", tc.traits)
		assert.Equal(t, tc.direct, o.IsDirectBranch(), "direct %v", tc.traits)
		assert.Equal(t, tc.indirect, o.IsIndirectBranch(), "indirect %v", tc.traits)
	}
}

func TestCallPredicates(t *testing.T) {
	for _, tc := range []struct {
		traits Traits

		cond, uncond, direct, indirect bool
	}{
		{traits: call, uncond: true, direct: true},
		{traits: call | conditional, cond: true, direct: true},
		{traits: call | indirect, uncond: true, indirect: true},
		{traits: conditional | indirect},
	} {
		o := &Operator{name: "x", traits: tc.traits}

		assert.Equal(t, tc.cond, o.IsConditionalCall(), "cond %v", tc.traits)
		assert.Equal(t, tc.uncond, o.IsUnconditionalCall(), "uncond %v", tc.traits)
		assert.Equal(t, tc.direct, o.IsDirectCall(), "direct %v", tc.traits)
		assert.Equal(t, tc.indirect, o.IsIndirectCall(), "indirect %v", tc.traits)
	}
}

func TestMemoryPredicates(t *testing.T) {
	ld := &Operator{traits: load}
	assert.True(t, ld.IsExplicitLoad())
	assert.True(t, ld.IsImplicitLoad())
	assert.False(t, ld.IsImplicitStore())

	st := &Operator{traits: memAsStore}
	assert.False(t, st.IsExplicitStore())
	assert.True(t, st.IsImplicitStore())

	c := &Operator{traits: call}
	assert.True(t, c.IsImplicitLoad())
	assert.True(t, c.IsImplicitStore())
	assert.False(t, c.IsExplicitLoad())
	assert.False(t, c.IsExplicitStore())
}

func TestGCPoint(t *testing.T) {
	assert.True(t, (&Operator{traits: immedPEI}).IsGCPoint())
	assert.True(t, (&Operator{traits: alloc}).IsGCPoint())
	assert.True(t, (&Operator{traits: tsp}).IsGCPoint())
	assert.False(t, (&Operator{traits: load | store}).IsGCPoint())
}

func TestEveryTraitSinglePredicate(t *testing.T) {
	preds := map[Traits]func(o *Operator) bool{
		move:        (*Operator).IsMove,
		branch:      (*Operator).IsBranch,
		call:        (*Operator).IsCall,
		load:        (*Operator).IsExplicitLoad,
		store:       (*Operator).IsExplicitStore,
		throw:       (*Operator).IsThrow,
		immedPEI:    (*Operator).IsPEI,
		compare:     (*Operator).IsCompare,
		alloc:       (*Operator).IsAllocation,
		ret:         (*Operator).IsReturn,
		varUses:     (*Operator).HasVarUses,
		varDefs:     (*Operator).HasVarDefs,
		tsp:         (*Operator).IsThreadSwitchPoint,
		acquire:     (*Operator).IsAcquire,
		release:     (*Operator).IsRelease,
		dynLink:     (*Operator).IsDynamicLinkingPoint,
		yieldPoint:  (*Operator).IsYieldPoint,
		fpPop:       (*Operator).IsFpPop,
		fpPush:      (*Operator).IsFpPush,
		commutative: (*Operator).IsCommutative,
	}

	for bit, pred := range preds {
		for other := range preds {
			o := &Operator{traits: other}
			assert.Equal(t, bit == other, pred(o), "pred %v on %v", bit, other)
		}
	}
}

func TestTraitsString(t *testing.T) {
	assert.Equal(t, "none", none.String())
	assert.Equal(t, "branch|conditional", (conditional | branch).String())

	x, err := ParseTraits("branch | Conditional")
	require.NoError(t, err)
	assert.Equal(t, branch|conditional, x)

	x, err = ParseTraits("")
	require.NoError(t, err)
	assert.Equal(t, none, x)

	_, err = ParseTraits("branch|jump")
	assert.Error(t, err)

	assert.Equal(t, []string{"move", "commutative"}, (move | commutative).Names())
}

func TestCounts(t *testing.T) {
	add := Lookup(IntAdd)
	assert.Equal(t, 1, add.NumberOfPureDefs())
	assert.Equal(t, 0, add.NumberOfDefUses())
	assert.Equal(t, 2, add.NumberOfPureUses())
	assert.Equal(t, 1, add.NumberOfDefs())
	assert.Equal(t, 2, add.NumberOfUses())

	acc := Lookup(IA32Add)
	assert.Equal(t, 0, acc.NumberOfPureDefs())
	assert.Equal(t, 1, acc.NumberOfDefUses())
	assert.Equal(t, 1, acc.NumberOfDefs())
	assert.Equal(t, 2, acc.NumberOfUses())

	call := Lookup(Call)
	assert.True(t, call.HasVarUses())
	assert.Equal(t, 1, call.NumberOfDefs())
	assert.Panics(t, func() { call.NumberOfPureUses() })
	assert.Panics(t, func() { call.NumberOfUses() })
	assert.Equal(t, 3, call.FixedPureUses())

	pro := Lookup(Prologue)
	assert.True(t, pro.HasVarDefs())
	assert.True(t, pro.HasVarUsesOrDefs())
	assert.Panics(t, func() { pro.NumberOfPureDefs() })
	assert.Equal(t, 0, pro.NumberOfUses())
}

func TestImplicitRegs(t *testing.T) {
	c := Lookup(IA32Call)

	assert.True(t, c.ImplicitDefs().Has(regs.EAX))
	assert.True(t, c.ImplicitDefs().Has(regs.ZF))
	assert.True(t, c.ImplicitDefs().Has(regs.C3))
	assert.False(t, c.ImplicitDefs().Has(regs.EBX))
	assert.Equal(t, 3+6+4, c.NumImplicitDefs())
	assert.Equal(t, regs.Of(regs.ESP), c.ImplicitUses())
	assert.Equal(t, 1, c.NumImplicitUses())

	assert.Equal(t, 0, Lookup(IntAdd).NumImplicitDefs())
	assert.Equal(t, regs.Flags, Lookup(IA32Jcc).ImplicitUses())
}

func TestOperatorTraits(t *testing.T) {
	assert.True(t, Lookup(IntIfCmp).IsConditionalBranch())
	assert.True(t, Lookup(Goto).IsUnconditionalBranch())
	assert.True(t, Lookup(IA32JmpIndirect).IsIndirectBranch())
	assert.True(t, Lookup(IA32Call).IsIndirectCall())
	assert.True(t, Lookup(IA32Call).IsDynamicLinkingPoint())
	assert.True(t, Lookup(Call).IsDirectCall())
	assert.True(t, Lookup(MonitorEnter).IsGCPoint())
	assert.True(t, Lookup(New).IsGCPoint())
	assert.False(t, Lookup(IntAdd).IsGCPoint())
	assert.True(t, Lookup(IntAdd).IsCommutative())
	assert.False(t, Lookup(IntSub).IsCommutative())
	assert.True(t, Lookup(Fence).IsAcquire() && Lookup(Fence).IsRelease())
}

func TestOpcodeRegions(t *testing.T) {
	assert.False(t, Nop.ArchDependent())
	assert.False(t, Prologue.ArchDependent())
	assert.True(t, IA32Mov.ArchDependent())
	assert.True(t, Lookup(IA32Pause).ArchDependent())

	assert.Equal(t, "IntAdd", IntAdd.String())
	assert.Equal(t, "MIR_Call", FormatMIRCall.String())
	assert.Equal(t, "Opcode(?)", Opcode(NumOpcodes).String())
}

func TestConforms(t *testing.T) {
	add := Lookup(IntAdd)

	assert.True(t, add.Conforms(FormatBinary))
	assert.False(t, add.Conforms(FormatUnary))
	assert.True(t, Conforms(add, FormatBinary))
	assert.False(t, Conforms(nil, FormatBinary))

	for i := 0; i < 3; i++ {
		assert.True(t, Conforms(add, FormatBinary))
	}
}

func TestOperatorTlogAppend(t *testing.T) {
	var d tlwire.LowDecoder

	o := Lookup(IA32Call)
	b := o.TlogAppend(nil)

	tag, n, i := d.Tag(b, 0)
	require.Equal(t, byte(tlwire.Map), tag)
	require.Equal(t, int64(6), n)

	vals := map[string][]byte{}

	for el := 0; el < int(n); el++ {
		var k []byte

		k, i = d.Bytes(b, i)
		st := i
		i = d.Skip(b, i)

		vals[string(k)] = b[st:i]
	}

	assert.Equal(t, len(b), i)

	v, _ := d.Bytes(vals["traits"], 0)
	assert.Equal(t, o.Traits().String(), string(v))

	v, _ = d.Bytes(vals["name"], 0)
	assert.Equal(t, "IA32Call", string(v))

	assert.Equal(t, o.ImplicitDefs().TlogAppend(nil), vals["implicit_defs"])

	tag, n, i = d.Tag(vals["implicit_uses"], 0)
	assert.Equal(t, byte(tlwire.Array), tag)
	assert.Equal(t, int64(-1), n)

	v, _ = d.Bytes(vals["implicit_uses"], i)
	assert.Equal(t, regs.ESP.String(), string(v))

	assert.Equal(t, []byte{tlwire.Special | tlwire.Nil}, (*Operator)(nil).TlogAppend(nil))
}
