package format

import (
	"github.com/slowlang/irkit/compiler/ir"
	"tlog.app/go/errors"
)

type (
	// Field is a fixed slot of a format holding operands of type T.
	Field[T ir.Operand] struct {
		f    *Format
		slot int
	}

	// VarField is a field repeated in every element of a format var region.
	// All var fields of a format share one region: they always have the same count.
	VarField[T ir.Operand] struct {
		f   *Format
		off int
	}
)

func (x Field[T]) Get(in *ir.Instr) T {
	x.f.guard(in)

	return get[T](x.f, in, x.slot)
}

// GetClear returns the operand and empties the slot.
func (x Field[T]) GetClear(in *ir.Instr) T {
	x.f.guard(in)

	r := get[T](x.f, in, x.slot)
	in.ClearOperand(x.slot)

	return r
}

// Set stores v. A nil v empties the slot.
func (x Field[T]) Set(in *ir.Instr, v T) {
	x.f.guard(in)

	put(in, x.slot, v)
}

func (x Field[T]) IndexOf(in *ir.Instr) int {
	x.f.guard(in)

	return x.slot
}

func (x Field[T]) Has(in *ir.Instr) bool {
	x.f.guard(in)

	return in.Operand(x.slot) != nil
}

func (x VarField[T]) Get(in *ir.Instr, k int) T {
	x.f.guard(in)

	return get[T](x.f, in, x.index(in, k))
}

func (x VarField[T]) GetClear(in *ir.Instr, k int) T {
	x.f.guard(in)

	i := x.index(in, k)

	r := get[T](x.f, in, i)
	in.ClearOperand(i)

	return r
}

func (x VarField[T]) Set(in *ir.Instr, k int, v T) {
	x.f.guard(in)

	put(in, x.index(in, k), v)
}

// IndexOf is the slot of element k. k may be past the end.
func (x VarField[T]) IndexOf(in *ir.Instr, k int) int {
	x.f.guard(in)

	return x.f.Fixed + k*x.f.Group + x.off
}

// Has reports whether element k exists and is not empty.
func (x VarField[T]) Has(in *ir.Instr, k int) bool {
	x.f.guard(in)

	if k < 0 || k >= x.f.count(in) {
		return false
	}

	return in.Operand(x.f.Fixed+k*x.f.Group+x.off) != nil
}

// HasAny reports whether the region has elements and the first one is set.
// A region resized but not filled yet reports false.
func (x VarField[T]) HasAny(in *ir.Instr) bool {
	x.f.guard(in)

	return x.f.count(in) > 0 && in.Operand(x.f.Fixed+x.off) != nil
}

// Count is the number of var elements.
func (x VarField[T]) Count(in *ir.Instr) int {
	x.f.guard(in)

	return x.f.count(in)
}

// Resize sets the number of var elements of the whole region.
// Elements below n are kept, new ones are empty.
func (x VarField[T]) Resize(in *ir.Instr, n int) {
	x.f.guard(in)

	if n < 0 {
		panic(errors.New("%v: negative element count %d", x.f.Name, n))
	}

	in.ResizeOperands(x.f.Size(n))
}

func (x VarField[T]) index(in *ir.Instr, k int) int {
	if n := x.f.count(in); k < 0 || k >= n {
		panic(errors.New("%v: element %d out of range [0:%d) in %v", x.f.Name, k, n, in))
	}

	return x.f.Fixed + k*x.f.Group + x.off
}

func get[T ir.Operand](f *Format, in *ir.Instr, i int) (r T) {
	v := in.Operand(i)
	if v == nil {
		return r
	}

	r, ok := v.(T)
	if !ok && Verify {
		panic(errors.New("%v: slot %d holds %T, want %T", f.Name, i, v, r))
	}

	return r
}

func put[T ir.Operand](in *ir.Instr, i int, v T) {
	in.PutOperand(i, v)
}
