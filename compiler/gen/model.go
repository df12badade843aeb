package gen

import (
	"go/token"
	"strings"

	"github.com/slowlang/irkit/compiler/op"
	"github.com/slowlang/irkit/compiler/regs"
	"tlog.app/go/errors"
)

type (
	// Model is the resolved declarations code is generated from.
	Model struct {
		Formats   []*Format
		Operators []*Operator

		// FirstArch is the first architecture dependent operator,
		// NumOpcodes if there is none.
		FirstArch string

		OperatorsSource string
		FormatsSource   string
	}

	Format struct {
		Name  string
		Ident string

		Fixed int
		Group int

		PureDefs, DefUses, PureUses int

		VarRole string

		Fields    []*Field
		VarFields []*Field
	}

	Field struct {
		Name  string
		Param string

		// Slot in the fixed prefix or offset in a var group.
		Slot int

		Role   string
		Var    bool
		Type   string
		GoType string
	}

	Operator struct {
		Name   string
		Format *Format

		Traits   string
		ImplDefs string
		ImplUses string
	}
)

var roles = map[string]string{
	"def":    "Def",
	"defuse": "DefUse",
	"use":    "Use",
}

var goTypes = map[string]string{
	"":        "ir.Operand",
	"Operand": "ir.Operand",
	"Reg":     "*ir.Reg",
	"Const":   "*ir.Const",
	"Cond":    "*ir.Cond",
	"Label":   "*ir.Label",
	"Profile": "*ir.Profile",
	"Method":  "*ir.Method",
	"Loc":     "*ir.Loc",
	"Type":    "*ir.TypeRef",
}

// Build resolves and validates declarations.
func Build(ops *OperatorsDecl, fmts *FormatsDecl) (*Model, error) {
	m := &Model{
		OperatorsSource: "operators.yaml",
		FormatsSource:   "formats.yaml",
	}

	byName := map[string]*Format{}
	idents := map[string]bool{}

	for _, d := range fmts.Formats {
		f, err := buildFormat(d)
		if err != nil {
			return nil, errors.Wrap(err, "format %v", d.Name)
		}

		if byName[f.Name] != nil || idents[f.Ident] {
			return nil, errors.New("format %v: duplicated", f.Name)
		}

		byName[f.Name] = f
		idents[f.Ident] = true

		m.Formats = append(m.Formats, f)
	}

	if len(m.Formats) == 0 {
		return nil, errors.New("no formats")
	}

	seen := map[string]bool{}

	for _, d := range ops.Operators {
		if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
			return nil, errors.New("operator %q: not an exported identifier", d.Name)
		}

		if seen[d.Name] {
			return nil, errors.New("operator %v: duplicated", d.Name)
		}

		seen[d.Name] = true

		if d.Arch {
			if m.FirstArch != "" {
				return nil, errors.New("operator %v: arch region already started at %v", d.Name, m.FirstArch)
			}

			m.FirstArch = d.Name
		}

		o, err := buildOperator(d, byName)
		if err != nil {
			return nil, errors.Wrap(err, "operator %v", d.Name)
		}

		m.Operators = append(m.Operators, o)
	}

	if len(m.Operators) == 0 {
		return nil, errors.New("no operators")
	}

	if m.FirstArch == "" {
		m.FirstArch = "NumOpcodes"
	}

	return m, nil
}

func buildFormat(d FormatDecl) (f *Format, err error) {
	f = &Format{
		Name:  d.Name,
		Ident: strings.ReplaceAll(d.Name, "_", ""),
	}

	if !token.IsIdentifier(f.Ident) || !token.IsExported(f.Ident) {
		return nil, errors.New("not an exported identifier")
	}

	names := map[string]bool{}
	last := "def"

	for i, fd := range d.Fields {
		x, err := buildField(fd, fd.Kind, names)
		if err != nil {
			return nil, err
		}

		if rank(fd.Kind) < rank(last) {
			return nil, errors.New("field %v: %v after %v", fd.Name, fd.Kind, last)
		}

		last = fd.Kind
		x.Slot = i

		switch fd.Kind {
		case "def":
			f.PureDefs++
		case "defuse":
			f.DefUses++
		case "use":
			f.PureUses++
		}

		f.Fields = append(f.Fields, x)
	}

	f.Fixed = len(f.Fields)

	if d.Var == nil {
		return f, nil
	}

	switch d.Var.Kind {
	case "def":
		if f.DefUses+f.PureUses != 0 {
			return nil, errors.New("var defs after fixed uses")
		}
	case "use":
	default:
		return nil, errors.New("var region kind %q", d.Var.Kind)
	}

	if len(d.Var.Fields) == 0 {
		return nil, errors.New("empty var region")
	}

	f.VarRole = d.Var.Kind
	f.Group = len(d.Var.Fields)

	for i, fd := range d.Var.Fields {
		if fd.Kind != "" {
			return nil, errors.New("var field %v: kind is set by the region", fd.Name)
		}

		x, err := buildField(fd, d.Var.Kind, names)
		if err != nil {
			return nil, err
		}

		x.Slot = i
		x.Var = true

		f.VarFields = append(f.VarFields, x)
	}

	return f, nil
}

func buildField(d FieldDecl, kind string, names map[string]bool) (*Field, error) {
	if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
		return nil, errors.New("field %q: not an exported identifier", d.Name)
	}

	if names[d.Name] {
		return nil, errors.New("field %v: duplicated", d.Name)
	}

	names[d.Name] = true

	role, ok := roles[kind]
	if !ok {
		return nil, errors.New("field %v: kind %q", d.Name, kind)
	}

	gt, ok := goTypes[d.Type]
	if !ok {
		return nil, errors.New("field %v: type %q", d.Name, d.Type)
	}

	typ := d.Type
	if typ == "" {
		typ = "Operand"
	}

	return &Field{
		Name:   d.Name,
		Param:  paramName(d.Name),
		Role:   role,
		Type:   typ,
		GoType: gt,
	}, nil
}

func buildOperator(d OperatorDecl, formats map[string]*Format) (*Operator, error) {
	f := formats[d.Format]
	if f == nil {
		return nil, errors.New("unknown format %q", d.Format)
	}

	var mask op.Traits

	for _, n := range d.Traits {
		t, ok := op.TraitByName(n)
		if !ok {
			return nil, errors.New("unknown trait %q", n)
		}

		if t == traitOf("varDefs") || t == traitOf("varUses") {
			return nil, errors.New("trait %v is set by the format", n)
		}

		mask |= t
	}

	switch f.VarRole {
	case "def":
		mask |= traitOf("varDefs")
	case "use":
		mask |= traitOf("varUses")
	}

	defs, err := regsExpr(d.ImplicitDefs)
	if err != nil {
		return nil, errors.Wrap(err, "implicit defs")
	}

	uses, err := regsExpr(d.ImplicitUses)
	if err != nil {
		return nil, errors.Wrap(err, "implicit uses")
	}

	return &Operator{
		Name:     d.Name,
		Format:   f,
		Traits:   strings.Join(mask.Names(), " | "),
		ImplDefs: defs,
		ImplUses: uses,
	}, nil
}

// regsExpr is a regs.Set expression: groups first, then single registers.
func regsExpr(names []string) (string, error) {
	var groups, single []string

	for _, n := range names {
		id, ok := regs.Ident(n)
		if !ok {
			return "", errors.New("unknown register %q", n)
		}

		if regs.IsGroup(n) {
			groups = append(groups, "regs."+id)
		} else {
			single = append(single, "regs."+id)
		}
	}

	if len(single) != 0 {
		groups = append(groups, "regs.Of("+strings.Join(single, ", ")+")")
	}

	return strings.Join(groups, " | "), nil
}

func traitOf(name string) op.Traits {
	t, _ := op.TraitByName(name)
	return t
}

func rank(kind string) int {
	switch kind {
	case "def":
		return 0
	case "defuse":
		return 1
	default:
		return 2
	}
}

func paramName(n string) string {
	p := strings.ToLower(n[:1]) + n[1:]

	if token.IsKeyword(p) {
		p += "Arg"
	}

	return p
}

// Params is the parameter list of the fixed fields,
// consecutive parameters of the same type grouped.
func (f *Format) Params() string {
	var b strings.Builder

	for i, x := range f.Fields {
		b.WriteString(", ")
		b.WriteString(x.Param)

		if i+1 < len(f.Fields) && f.Fields[i+1].GoType == x.GoType {
			continue
		}

		b.WriteString(" ")
		b.WriteString(x.GoType)
	}

	if f.Group != 0 {
		b.WriteString(", n int")
	}

	return b.String()
}

// UsesRegs reports whether any operator has implicit registers.
func (m *Model) UsesRegs() bool {
	for _, o := range m.Operators {
		if o.ImplDefs != "" || o.ImplUses != "" {
			return true
		}
	}

	return false
}
