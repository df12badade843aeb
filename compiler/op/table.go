package op

import (
	"github.com/slowlang/irkit/compiler/set"
	"tlog.app/go/errors"
)

type (
	// Table holds one Operator per opcode. It is read-only once built
	// and is shared by every compilation.
	Table struct {
		ops    []Operator
		byName map[string]*Operator
	}
)

//go:generate go run ../../cmd/irkit gen --ops operators.yaml --formats ../format/formats.yaml --ops-out operators_gen.go --views-out ../format/views_gen.go

var defaultTable = mustTable(operators[:])

// Default is the table of the operators this package declares.
func Default() *Table { return defaultTable }

// Lookup finds the operator in the default table.
func Lookup(c Opcode) *Operator { return defaultTable.Lookup(c) }

// NewTable copies ops into a new table and validates it.
func NewTable(ops []Operator) (*Table, error) {
	t := &Table{
		ops:    append([]Operator(nil), ops...),
		byName: make(map[string]*Operator, len(ops)),
	}

	for i := range t.ops {
		o := &t.ops[i]

		if o.opcode != Opcode(i) {
			return nil, errors.New("operator %v: opcode %d at index %d", o.name, o.opcode, i)
		}

		if o.name == "" {
			return nil, errors.New("operator %d: no name", i)
		}

		if _, ok := t.byName[o.name]; ok {
			return nil, errors.New("operator %v: duplicated name", o.name)
		}

		if o.traits&(varDefs|varUses) == varDefs|varUses {
			return nil, errors.New("operator %v: both var defs and var uses", o.name)
		}

		if int(o.format) >= len(formatNames) {
			return nil, errors.New("operator %v: unknown format %d", o.name, o.format)
		}

		t.byName[o.name] = o
	}

	return t, nil
}

func mustTable(ops []Operator) *Table {
	t, err := NewTable(ops)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Table) Len() int { return len(t.ops) }

// Lookup returns the operator of opcode c. Unknown opcodes are a usage error.
func (t *Table) Lookup(c Opcode) *Operator {
	if int(c) >= len(t.ops) {
		panic(errors.New("opcode %d out of range [0:%d)", c, len(t.ops)))
	}

	return &t.ops[c]
}

func (t *Table) ByName(name string) (*Operator, bool) {
	o, ok := t.byName[name]
	return o, ok
}

// Select returns opcodes of the operators pred accepts.
func (t *Table) Select(pred func(o *Operator) bool) set.Bits[Opcode] {
	s := set.MakeBits[Opcode](0)

	for i := range t.ops {
		if pred(&t.ops[i]) {
			s.Set(Opcode(i))
		}
	}

	return s
}

// WithTraits selects operators having all of the given traits.
func (t *Table) WithTraits(x Traits) set.Bits[Opcode] {
	return t.Select(func(o *Operator) bool {
		return o.traits.Has(x)
	})
}

// WithFormat selects operators declaring format f.
func (t *Table) WithFormat(f Format) set.Bits[Opcode] {
	return t.Select(func(o *Operator) bool {
		return o.format == f
	})
}

// Range calls f for every operator in opcode order.
func (t *Table) Range(f func(o *Operator) bool) {
	for i := range t.ops {
		if !f(&t.ops[i]) {
			return
		}
	}
}
