package main

import (
	"context"
	"strings"
	"testing"

	"github.com/slowlang/irkit/compiler/format"
	"github.com/slowlang/irkit/compiler/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOps(t *testing.T) {
	tab := op.Default()

	for _, tc := range []struct {
		traits string
		format string
		arch   bool
		want   []op.Opcode
	}{
		{"branch|conditional", "", false, []op.Opcode{op.IntIfCmp, op.RefIfCmp, op.LookupSwitch, op.TableSwitch, op.IA32Jcc}},
		{"branch | conditional", "IfCmp", false, []op.Opcode{op.IntIfCmp, op.RefIfCmp}},
		{"branch|conditional", "", true, []op.Opcode{op.IA32Jcc}},
		{"branch|conditional", "IfCmp", true, nil},
		{"commutative", "Binary", false, []op.Opcode{op.IntAdd, op.IntMul, op.IntAnd, op.IntOr}},
	} {
		sel, err := selectOps(tab, tc.traits, tc.format, tc.arch)
		require.NoError(t, err, "%+v", tc)

		assert.Equal(t, tc.want, sel.Slice(), "%+v", tc)
	}

	all, err := selectOps(tab, "", "", false)
	require.NoError(t, err)
	assert.Equal(t, tab.Len(), all.Size())

	arch, err := selectOps(tab, "none", "", true)
	require.NoError(t, err)
	assert.Equal(t, int(op.NumOpcodes-op.FirstArchOpcode), arch.Size())

	_, err = selectOps(tab, "branch|jump", "", false)
	assert.Error(t, err)

	_, err = selectOps(tab, "", "NoSuchFormat", false)
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	code := sample()
	require.Len(t, code, 6)

	for i, in := range code {
		assert.NoError(t, format.Check(in), "instr %d: %v", i, in)
	}

	assert.Equal(t, 2, format.Prologue.Formals.Count(code[0]))
	assert.True(t, code[1].Op.IsConditionalBranch())

	b, err := format.AppendCode(context.Background(), nil, code)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[2], "IntAdd Result=v3:int Val1=v1:int Val2=v2:int")
	assert.Contains(t, lines[5], "Return Val=v3:int")
}
