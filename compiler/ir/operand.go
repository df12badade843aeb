package ir

import (
	"strconv"

	"github.com/slowlang/irkit/compiler/regs"
)

type (
	// Operand is a value in an instruction slot.
	// Operands are immutable and hold no reference to the instruction they are in,
	// so the same operand may be put into any number of slots.
	Operand interface {
		String() string

		isNil() bool
	}

	// Type is the value type of a register or a constant.
	Type uint8

	// Reg is a virtual or physical register.
	Reg struct {
		ID   int
		Type Type
		Phys bool
	}

	Const struct {
		Type  Type
		Value int64
	}

	CondCode uint8

	Cond struct {
		Code CondCode
	}

	// Label is a branch target.
	Label struct {
		Block int
	}

	// Profile is the probability of a branch being taken.
	Profile struct {
		Taken float32
	}

	Method struct {
		Class, Name, Desc string
	}

	// Loc is the memory location a load or store touches.
	Loc struct {
		Field string
	}

	TypeRef struct {
		Name string
	}
)

const (
	Void Type = iota
	Int
	Long
	Float
	Double
	Ref
	Addr
	Validation
)

const (
	EQ CondCode = iota
	NE
	LT
	GE
	GT
	LE
	Lower
	HigherEqual
	Higher
	LowerEqual
)

var typeNames = [...]string{
	Void:       "void",
	Int:        "int",
	Long:       "long",
	Float:      "float",
	Double:     "double",
	Ref:        "ref",
	Addr:       "addr",
	Validation: "guard",
}

var condNames = [...]string{
	EQ:          "==",
	NE:          "!=",
	LT:          "<",
	GE:          ">=",
	GT:          ">",
	LE:          "<=",
	Lower:       "<U",
	HigherEqual: ">=U",
	Higher:      ">U",
	LowerEqual:  "<=U",
}

// TrueGuard is the guard of operations that need no check.
var TrueGuard = &Const{Type: Validation, Value: 1}

func VReg(id int, t Type) *Reg { return &Reg{ID: id, Type: t} }

func PReg(r regs.Reg, t Type) *Reg { return &Reg{ID: int(r), Type: t, Phys: true} }

func IntConst(v int64) *Const { return &Const{Type: Int, Value: v} }

func NewCond(c CondCode) *Cond { return &Cond{Code: c} }

func NewLabel(block int) *Label { return &Label{Block: block} }

func NewProfile(taken float32) *Profile { return &Profile{Taken: taken} }

func (r *Reg) isNil() bool     { return r == nil }
func (c *Const) isNil() bool   { return c == nil }
func (c *Cond) isNil() bool    { return c == nil }
func (l *Label) isNil() bool   { return l == nil }
func (p *Profile) isNil() bool { return p == nil }
func (m *Method) isNil() bool  { return m == nil }
func (l *Loc) isNil() bool     { return l == nil }
func (t *TypeRef) isNil() bool { return t == nil }

// IsNil reports whether x is nil or a nil pointer of one of the operand kinds.
func IsNil(x Operand) bool {
	return x == nil || x.isNil()
}

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return "type?"
	}

	return typeNames[t]
}

func (c CondCode) String() string {
	if int(c) >= len(condNames) {
		return "cond?"
	}

	return condNames[c]
}

// Flip returns the condition with operands swapped.
func (c CondCode) Flip() CondCode {
	switch c {
	case LT:
		return GT
	case GT:
		return LT
	case LE:
		return GE
	case GE:
		return LE
	case Lower:
		return Higher
	case Higher:
		return Lower
	case LowerEqual:
		return HigherEqual
	case HigherEqual:
		return LowerEqual
	}

	return c
}

// Negate returns the condition which holds when c does not.
func (c CondCode) Negate() CondCode {
	switch c {
	case EQ:
		return NE
	case NE:
		return EQ
	case LT:
		return GE
	case GE:
		return LT
	case GT:
		return LE
	case LE:
		return GT
	case Lower:
		return HigherEqual
	case HigherEqual:
		return Lower
	case Higher:
		return LowerEqual
	case LowerEqual:
		return Higher
	}

	return c
}

func (r *Reg) String() string {
	if r.Phys {
		return regs.Reg(r.ID).String()
	}

	return "v" + strconv.Itoa(r.ID) + ":" + r.Type.String()
}

func (c *Const) String() string {
	if c == TrueGuard {
		return "true"
	}

	return strconv.FormatInt(c.Value, 10)
}

func (c *Cond) String() string { return c.Code.String() }

func (l *Label) String() string { return "B" + strconv.Itoa(l.Block) }

func (p *Profile) String() string {
	return "p=" + strconv.FormatFloat(float64(p.Taken), 'g', 3, 32)
}

func (m *Method) String() string { return m.Class + "." + m.Name + m.Desc }

func (l *Loc) String() string { return "@" + l.Field }

func (t *TypeRef) String() string { return t.Name }

// Similar reports whether a and b are the same value.
// Nil operands of any kind are similar to each other only.
func Similar(a, b Operand) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}

	if a == b {
		return true
	}

	switch a := a.(type) {
	case *Reg:
		b, ok := b.(*Reg)
		return ok && *a == *b
	case *Const:
		b, ok := b.(*Const)
		return ok && *a == *b
	case *Cond:
		b, ok := b.(*Cond)
		return ok && *a == *b
	case *Label:
		b, ok := b.(*Label)
		return ok && *a == *b
	case *Profile:
		b, ok := b.(*Profile)
		return ok && *a == *b
	case *Method:
		b, ok := b.(*Method)
		return ok && *a == *b
	case *Loc:
		b, ok := b.(*Loc)
		return ok && *a == *b
	case *TypeRef:
		b, ok := b.(*TypeRef)
		return ok && *a == *b
	}

	return false
}
