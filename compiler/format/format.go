package format

import (
	"github.com/nikandfor/hacked/hfmt"
	"github.com/slowlang/irkit/compiler/ir"
	"github.com/slowlang/irkit/compiler/op"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
)

type (
	// Format is an operand layout: a fixed prefix of named slots
	// optionally followed by a var region of Group-slot elements.
	Format struct {
		ID   op.Format
		Name string

		Fixed int // prefix length
		Group int // slots per var element, 0 for fixed layouts

		Fields []FieldInfo
	}

	// FieldInfo names a slot, or a slot offset within var elements.
	FieldInfo struct {
		Name string
		Slot int
		Role Role
		Var  bool
		Type string
	}

	// Kind is the shape of a layout.
	Kind uint8

	// Role is how an instruction treats an operand.
	Role uint8

	// NonConformError is the panic value of an accessor used on
	// an instruction whose operator has another format.
	NonConformError struct {
		Format string
		Op     *op.Operator
		Instr  string
		From   loc.PC
	}
)

const (
	FixedLayout Kind = iota
	VariableLayout
)

const (
	Def Role = iota
	DefUse
	Use
)

// Verify enables conformance checks in every accessor.
// Create and Mutate check the operator regardless.
var Verify = false

func init() {
	for i, f := range registry {
		if f == nil || f.ID != op.Format(i) {
			panic(errors.New("format registry: slot %d holds %v", i, f))
		}
	}
}

func newFormat(id op.Format, name string, fixed, group int, fields ...FieldInfo) *Format {
	return &Format{
		ID:     id,
		Name:   name,
		Fixed:  fixed,
		Group:  group,
		Fields: fields,
	}
}

// Lookup returns the layout of format id.
func Lookup(id op.Format) *Format {
	if int(id) >= len(registry) {
		return nil
	}

	return registry[id]
}

func ByName(name string) (*Format, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}

// Of returns the layout the operator of in declares.
func Of(in *ir.Instr) *Format {
	return Lookup(in.Op.Format())
}

func (f *Format) Kind() Kind {
	if f.Group == 0 {
		return FixedLayout
	}

	return VariableLayout
}

// Conforms reports whether the operator of in declares this format.
func (f *Format) Conforms(in *ir.Instr) bool {
	return in != nil && op.Conforms(in.Op, f.ID)
}

// Size is the slot count of an instruction with n var elements.
func (f *Format) Size(n int) int {
	return f.Fixed + n*f.Group
}

func (f *Format) String() string { return f.Name }

func (f *Format) count(in *ir.Instr) int {
	if f.Group == 0 {
		return 0
	}

	n := in.NumOperands() - f.Fixed
	if n <= 0 {
		return 0
	}

	return n / f.Group
}

func (f *Format) alloc(o *op.Operator, n int) *ir.Instr {
	f.operator(o)

	return ir.New(o, f.Size(n))
}

func (f *Format) reset(in *ir.Instr, o *op.Operator, n int) {
	f.operator(o)

	in.Reset(o, f.Size(n))
}

func (f *Format) operator(o *op.Operator) {
	if op.Conforms(o, f.ID) {
		return
	}

	panic(&NonConformError{Format: f.Name, Op: o, From: loc.Caller(3)})
}

func (f *Format) guard(in *ir.Instr) {
	if !Verify || f.Conforms(in) {
		return
	}

	f.fail(in, loc.Caller(2))
}

// Fail panics with a NonConformError for in.
func (f *Format) Fail(in *ir.Instr) {
	f.fail(in, loc.Caller(1))
}

func (f *Format) fail(in *ir.Instr, from loc.PC) {
	e := &NonConformError{Format: f.Name, From: from}

	if in != nil {
		e.Op = in.Op
		e.Instr = in.String()
	}

	panic(e)
}

func (e *NonConformError) Error() string {
	if e.Instr == "" {
		return string(hfmt.Appendf(nil, "operator %v does not have format %v (at %v)", e.Op, e.Format, e.From))
	}

	return string(hfmt.Appendf(nil, "instruction %q does not conform to format %v (at %v)", e.Instr, e.Format, e.From))
}

func (k Kind) String() string {
	if k == FixedLayout {
		return "fixed"
	}

	return "variable"
}

func (r Role) String() string {
	switch r {
	case Def:
		return "def"
	case DefUse:
		return "defuse"
	default:
		return "use"
	}
}
