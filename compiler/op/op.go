package op

import (
	"strings"

	"github.com/slowlang/irkit/compiler/regs"
	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"
)

type (
	// Opcode is a dense operator id.
	// Architecture independent opcodes come first, then FirstArchOpcode and the rest.
	Opcode uint16

	// Format identifies the operand layout of an operator.
	Format uint8

	// Traits is a bitmask of operator properties.
	Traits uint32

	// Operator is the immutable descriptor of an opcode.
	// There is exactly one Operator per Opcode in a Table, compare them by pointer.
	Operator struct {
		opcode Opcode
		name   string
		format Format
		traits Traits

		// fixed region only for var-defs/var-uses operators
		pureDefs, defUses, pureUses uint8

		implDefs, implUses regs.Set
	}
)

const (
	move Traits = 1 << iota
	branch
	call
	conditional
	indirect
	load
	memAsLoad
	store
	memAsStore
	throw
	immedPEI
	compare
	alloc
	ret
	varUses
	varDefs
	tsp
	acquire
	release
	dynLink
	yieldPoint
	fpPop
	fpPush
	commutative

	numTraits = iota

	none Traits = 0
)

var traitNames = [numTraits]string{
	"move",
	"branch",
	"call",
	"conditional",
	"indirect",
	"load",
	"memAsLoad",
	"store",
	"memAsStore",
	"throw",
	"immedPEI",
	"compare",
	"alloc",
	"ret",
	"varUses",
	"varDefs",
	"tsp",
	"acquire",
	"release",
	"dynLink",
	"yieldPoint",
	"fpPop",
	"fpPush",
	"commutative",
}

// TraitByName resolves a single trait by its name, case insensitive.
func TraitByName(name string) (Traits, bool) {
	for i, n := range traitNames {
		if strings.EqualFold(n, name) {
			return 1 << i, true
		}
	}

	return none, false
}

// ParseTraits parses a "|" separated list of trait names.
func ParseTraits(s string) (t Traits, err error) {
	if s == "" || s == "none" {
		return none, nil
	}

	for _, n := range strings.Split(s, "|") {
		x, ok := TraitByName(strings.TrimSpace(n))
		if !ok {
			return none, errors.New("unknown trait %q", n)
		}

		t |= x
	}

	return t, nil
}

func (t Traits) Has(x Traits) bool { return t&x == x }

// Names lists set traits in bit order.
func (t Traits) Names() (r []string) {
	for i, n := range traitNames {
		if t&(1<<i) != 0 {
			r = append(r, n)
		}
	}

	return r
}

func (t Traits) String() string {
	if t == none {
		return "none"
	}

	return strings.Join(t.Names(), "|")
}

func (c Opcode) String() string {
	if int(c) >= len(operators) {
		return "Opcode(?)"
	}

	return operators[c].name
}

// ArchDependent reports whether the opcode belongs to the IA32 region.
func (c Opcode) ArchDependent() bool {
	return c >= FirstArchOpcode
}

func (f Format) String() string {
	if int(f) >= len(formatNames) {
		return "Format(?)"
	}

	return formatNames[f]
}

func (o *Operator) Opcode() Opcode      { return o.opcode }
func (o *Operator) Name() string        { return o.name }
func (o *Operator) Format() Format      { return o.format }
func (o *Operator) Traits() Traits      { return o.traits }
func (o *Operator) String() string      { return o.name }
func (o *Operator) ArchDependent() bool { return o.opcode.ArchDependent() }

// Conforms reports whether the operator declares format f.
func (o *Operator) Conforms(f Format) bool {
	return o.format == f
}

func Conforms(o *Operator, f Format) bool {
	return o != nil && o.format == f
}

func (o *Operator) IsMove() bool   { return o.traits&move != 0 }
func (o *Operator) IsBranch() bool { return o.traits&branch != 0 }

func (o *Operator) IsConditionalBranch() bool {
	return o.traits&(branch|conditional) == branch|conditional
}

func (o *Operator) IsUnconditionalBranch() bool {
	return o.traits&(branch|conditional) == branch
}

func (o *Operator) IsDirectBranch() bool {
	return o.traits&(branch|indirect) == branch
}

func (o *Operator) IsIndirectBranch() bool {
	return o.traits&(branch|indirect) == branch|indirect
}

func (o *Operator) IsCall() bool { return o.traits&call != 0 }

func (o *Operator) IsConditionalCall() bool {
	return o.traits&(call|conditional) == call|conditional
}

func (o *Operator) IsUnconditionalCall() bool {
	return o.traits&(call|conditional) == call
}

func (o *Operator) IsDirectCall() bool {
	return o.traits&(call|indirect) == call
}

func (o *Operator) IsIndirectCall() bool {
	return o.traits&(call|indirect) == call|indirect
}

func (o *Operator) IsExplicitLoad() bool { return o.traits&load != 0 }

// IsImplicitLoad reports whether the operator may read memory, calls included.
func (o *Operator) IsImplicitLoad() bool {
	return o.traits&(load|memAsLoad|call) != 0
}

func (o *Operator) IsExplicitStore() bool { return o.traits&store != 0 }

// IsImplicitStore reports whether the operator may write memory, calls included.
func (o *Operator) IsImplicitStore() bool {
	return o.traits&(store|memAsStore|call) != 0
}

func (o *Operator) IsThrow() bool { return o.traits&throw != 0 }
func (o *Operator) IsPEI() bool   { return o.traits&immedPEI != 0 }

func (o *Operator) IsGCPoint() bool {
	return o.IsPEI() || o.traits&(alloc|tsp) != 0
}

func (o *Operator) IsThreadSwitchPoint() bool   { return o.traits&tsp != 0 }
func (o *Operator) IsCompare() bool             { return o.traits&compare != 0 }
func (o *Operator) IsAllocation() bool          { return o.traits&alloc != 0 }
func (o *Operator) IsReturn() bool              { return o.traits&ret != 0 }
func (o *Operator) HasVarDefs() bool            { return o.traits&varDefs != 0 }
func (o *Operator) HasVarUses() bool            { return o.traits&varUses != 0 }
func (o *Operator) HasVarUsesOrDefs() bool      { return o.traits&(varUses|varDefs) != 0 }
func (o *Operator) IsAcquire() bool             { return o.traits&acquire != 0 }
func (o *Operator) IsRelease() bool             { return o.traits&release != 0 }
func (o *Operator) IsDynamicLinkingPoint() bool { return o.traits&dynLink != 0 }
func (o *Operator) IsYieldPoint() bool          { return o.traits&yieldPoint != 0 }
func (o *Operator) IsFpPop() bool               { return o.traits&fpPop != 0 }
func (o *Operator) IsFpPush() bool              { return o.traits&fpPush != 0 }
func (o *Operator) IsCommutative() bool         { return o.traits&commutative != 0 }

// NumberOfPureDefs panics for var-defs operators: their def count is not fixed.
func (o *Operator) NumberOfPureDefs() int {
	if o.HasVarDefs() {
		panic(errors.New("%v: pure def count of a var-defs operator", o.name))
	}

	return int(o.pureDefs)
}

func (o *Operator) NumberOfDefUses() int { return int(o.defUses) }

// NumberOfPureUses panics for var-uses operators: their use count is not fixed.
func (o *Operator) NumberOfPureUses() int {
	if o.HasVarUses() {
		panic(errors.New("%v: pure use count of a var-uses operator", o.name))
	}

	return int(o.pureUses)
}

func (o *Operator) NumberOfDefs() int { return o.NumberOfPureDefs() + int(o.defUses) }
func (o *Operator) NumberOfUses() int { return int(o.defUses) + o.NumberOfPureUses() }

// FixedPureDefs is the pure def count of the fixed operand region.
func (o *Operator) FixedPureDefs() int { return int(o.pureDefs) }

// FixedPureUses is the pure use count of the fixed operand region.
func (o *Operator) FixedPureUses() int { return int(o.pureUses) }

func (o *Operator) ImplicitDefs() regs.Set { return o.implDefs }
func (o *Operator) ImplicitUses() regs.Set { return o.implUses }
func (o *Operator) NumImplicitDefs() int   { return o.implDefs.Len() }
func (o *Operator) NumImplicitUses() int   { return o.implUses.Len() }

func (o *Operator) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if o == nil {
		return e.AppendNil(b)
	}

	b = e.AppendMap(b, 6)

	b = e.AppendKeyInt(b, "opcode", int(o.opcode))

	b = e.AppendString(b, "name")
	b = e.AppendString(b, o.name)

	b = e.AppendString(b, "format")
	b = e.AppendString(b, o.format.String())

	b = e.AppendString(b, "traits")
	b = e.AppendString(b, o.traits.String())

	b = e.AppendString(b, "implicit_defs")
	b = o.implDefs.TlogAppend(b)

	b = e.AppendString(b, "implicit_uses")
	b = o.implUses.TlogAppend(b)

	return b
}
