package format

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"github.com/slowlang/irkit/compiler/ir"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// AppendCode appends a listing of code, one instruction per line.
// Malformed instructions are errors.
func AppendCode(ctx context.Context, b []byte, code []*ir.Instr) (_ []byte, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "append code", "instrs", len(code))
	defer tr.Finish("err", &err)

	for i, in := range code {
		err = Check(in)
		if err != nil {
			return nil, errors.Wrap(err, "instr %d", i)
		}

		b = app(b, 1, "%-4d", i)
		b = Append(b, in)
		b = append(b, '\n')
	}

	return b, nil
}

// Append appends the operator name and the named operands set.
func Append(b []byte, in *ir.Instr) []byte {
	b = append(b, in.Op.Name()...)

	f := Of(in)
	if f == nil {
		return b
	}

	n := in.NumOperands()

	for _, fi := range f.Fields {
		if fi.Var || fi.Slot >= n {
			continue
		}

		b = appendOperand(b, fi.Name, -1, in.Operand(fi.Slot))
	}

	cnt := f.count(in)

	for k := 0; k < cnt; k++ {
		for _, fi := range f.Fields {
			if !fi.Var {
				continue
			}

			b = appendOperand(b, fi.Name, k, in.Operand(f.Fixed+k*f.Group+fi.Slot))
		}
	}

	return b
}

func appendOperand(b []byte, name string, k int, x ir.Operand) []byte {
	if x == nil {
		return b
	}

	if k < 0 {
		return app(b, 0, " %s=%v", name, x)
	}

	return app(b, 0, " %s[%d]=%v", name, k, x)
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)
	return b
}
