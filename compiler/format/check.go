package format

import (
	"github.com/slowlang/irkit/compiler/ir"
	"tlog.app/go/errors"
)

// Check verifies in against the layout: the operator format,
// the slot count and kinds of the operands set.
// Empty slots are fine.
func (f *Format) Check(in *ir.Instr) error {
	if in == nil || in.Op == nil {
		return errors.New("%v: no operator", f.Name)
	}

	if !f.Conforms(in) {
		return errors.New("%v: operator %v has format %v", f.Name, in.Op, in.Op.Format())
	}

	n := in.NumOperands()

	switch {
	case n < f.Fixed:
		return errors.New("%v: %d operands, want at least %d", f.Name, n, f.Fixed)
	case f.Group == 0 && n != f.Fixed:
		return errors.New("%v: %d operands, want %d", f.Name, n, f.Fixed)
	case f.Group != 0 && (n-f.Fixed)%f.Group != 0:
		return errors.New("%v: var region of %d slots is not a multiple of %d", f.Name, n-f.Fixed, f.Group)
	}

	cnt := f.count(in)

	for _, fi := range f.Fields {
		if !fi.Var {
			if err := checkSlot(f, fi, in, fi.Slot); err != nil {
				return err
			}

			continue
		}

		for k := 0; k < cnt; k++ {
			if err := checkSlot(f, fi, in, f.Fixed+k*f.Group+fi.Slot); err != nil {
				return errors.Wrap(err, "element %d", k)
			}
		}
	}

	return nil
}

// Check verifies in against the layout its operator declares.
func Check(in *ir.Instr) error {
	if in == nil || in.Op == nil {
		return errors.New("no operator")
	}

	f := Of(in)
	if f == nil {
		return errors.New("%v: unknown format %v", in.Op, in.Op.Format())
	}

	return f.Check(in)
}

func checkSlot(f *Format, fi FieldInfo, in *ir.Instr, slot int) error {
	x := in.Operand(slot)
	if x == nil || accepts(fi.Type, x) {
		return nil
	}

	return errors.New("%v.%v: slot %d holds %T, want %v", f.Name, fi.Name, slot, x, fi.Type)
}

func accepts(typ string, x ir.Operand) (ok bool) {
	switch typ {
	case "Reg":
		_, ok = x.(*ir.Reg)
	case "Const":
		_, ok = x.(*ir.Const)
	case "Cond":
		_, ok = x.(*ir.Cond)
	case "Label":
		_, ok = x.(*ir.Label)
	case "Profile":
		_, ok = x.(*ir.Profile)
	case "Method":
		_, ok = x.(*ir.Method)
	case "Loc":
		_, ok = x.(*ir.Loc)
	case "Type":
		_, ok = x.(*ir.TypeRef)
	default:
		ok = true
	}

	return ok
}
