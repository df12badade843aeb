package format

import (
	"context"
	"testing"

	"github.com/slowlang/irkit/compiler/ir"
	"github.com/slowlang/irkit/compiler/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	in := Binary.Create(op.Lookup(op.IntAdd), ir.VReg(1, ir.Int), ir.VReg(2, ir.Int), ir.IntConst(3))
	assert.Equal(t, "IntAdd Result=v1:int Val1=v2:int Val2=3", string(Append(nil, in)))

	sw := TableSwitch.Create(op.Lookup(op.TableSwitch), ir.VReg(1, ir.Int), nil, nil, ir.IntConst(0), ir.IntConst(1), ir.NewLabel(4), nil, 2)
	TableSwitch.Targets.Set(sw, 0, ir.NewLabel(2))
	TableSwitch.Targets.Set(sw, 1, ir.NewLabel(3))
	TableSwitch.BranchProfiles.Set(sw, 1, ir.NewProfile(0.25))

	assert.Equal(t, "TableSwitch Value=v1:int Low=0 High=1 Default=B4 Targets[0]=B2 Targets[1]=B3 BranchProfiles[1]=p=0.25",
		string(Append(nil, sw)))

	assert.Equal(t, "Nop", string(Append(nil, Empty.Create(op.Lookup(op.Nop)))))
}

func TestAppendCode(t *testing.T) {
	ctx := context.Background()

	a, b := ir.VReg(1, ir.Int), ir.VReg(2, ir.Int)

	code := []*ir.Instr{
		Binary.Create(op.Lookup(op.IntSub), a, a, b),
		Return.Create(op.Lookup(op.Return), a),
	}

	res, err := AppendCode(ctx, nil, code)
	require.NoError(t, err)

	assert.Equal(t, "\t0   IntSub Result=v1:int Val1=v1:int Val2=v2:int\n\t1   Return Val=v1:int\n", string(res))

	code[1].ResizeOperands(2)

	_, err = AppendCode(ctx, nil, code)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	r := ir.VReg(1, ir.Int)

	in := Move.Create(op.Lookup(op.IntMove), r, ir.IntConst(1))
	assert.NoError(t, Check(in))
	assert.NoError(t, Move.Check(in))
	assert.Error(t, Unary.Check(in))

	in.PutOperand(0, ir.IntConst(2))
	assert.Error(t, Check(in))

	in.PutOperand(0, nil)
	assert.NoError(t, Check(in))

	in.ResizeOperands(3)
	assert.Error(t, Check(in))

	sw := LookupSwitch.Create(op.Lookup(op.LookupSwitch), r, nil, nil, nil, nil, 2)
	assert.NoError(t, Check(sw))

	LookupSwitch.Targets.Set(sw, 1, ir.NewLabel(1))
	assert.NoError(t, Check(sw))

	sw.PutOperand(LookupSwitch.Matches.IndexOf(sw, 1), ir.NewLabel(2))
	assert.Error(t, Check(sw))

	sw.ResizeOperands(5 + 2*3 + 1)
	assert.Error(t, Check(sw))

	pro := Prologue.Create(op.Lookup(op.Prologue), 0)
	assert.NoError(t, Check(pro))

	assert.Error(t, Check(nil))
}
