package gen

import (
	"bytes"
	"context"
	"go/format"
	"io"
	"os"
	"text/template"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

var operatorsTmpl = template.Must(template.New("operators").Parse(`// Code generated by irkit gen from {{ .OperatorsSource }}; DO NOT EDIT.

package op
{{ if .UsesRegs }}
import "github.com/slowlang/irkit/compiler/regs"
{{ end }}
const (
{{- range $i, $o := .Operators }}
	{{ $o.Name }}{{ if eq $i 0 }} Opcode = iota{{ end }}
{{- end }}

	NumOpcodes = iota
)

const FirstArchOpcode = {{ .FirstArch }}

const (
{{- range $i, $f := .Formats }}
	Format{{ $f.Ident }}{{ if eq $i 0 }} Format = iota{{ end }}
{{- end }}

	NumFormats = iota
)

var formatNames = [NumFormats]string{
{{- range .Formats }}
	{{ printf "%q" .Name }},
{{- end }}
}

var operators = [NumOpcodes]Operator{
{{- range .Operators }}
	{opcode: {{ .Name }}, name: {{ printf "%q" .Name }}, format: Format{{ .Format.Ident }}
	{{- with .Traits }}, traits: {{ . }}{{ end }}
	{{- with .Format.PureDefs }}, pureDefs: {{ . }}{{ end }}
	{{- with .Format.DefUses }}, defUses: {{ . }}{{ end }}
	{{- with .Format.PureUses }}, pureUses: {{ . }}{{ end }}
	{{- with .ImplDefs }}, implDefs: {{ . }}{{ end }}
	{{- with .ImplUses }}, implUses: {{ . }}{{ end }}},
{{- end }}
}
`))

var viewsTmpl = template.Must(template.New("views").Parse(`// Code generated by irkit gen from {{ .FormatsSource }}; DO NOT EDIT.

package format

import (
	"github.com/slowlang/irkit/compiler/ir"
	"github.com/slowlang/irkit/compiler/op"
)

var registry = [op.NumFormats]*Format{
{{- range .Formats }}
	fmt{{ .Ident }},
{{- end }}
}
{{ range .Formats }}
{{- $f := . }}
var fmt{{ .Ident }} = newFormat(op.Format{{ .Ident }}, {{ printf "%q" .Name }}, {{ .Fixed }}, {{ .Group }}
{{- if or .Fields .VarFields }},
{{- range .Fields }}
	FieldInfo{Name: {{ printf "%q" .Name }}, Slot: {{ .Slot }}, Role: {{ .Role }}, Type: {{ printf "%q" .Type }}},
{{- end }}
{{- range .VarFields }}
	FieldInfo{Name: {{ printf "%q" .Name }}, Slot: {{ .Slot }}, Role: {{ .Role }}, Var: true, Type: {{ printf "%q" .Type }}},
{{- end }}
{{ end -}}
)

// {{ .Ident }}View accesses operands of {{ .Name }} instructions.
type {{ .Ident }}View struct {
	*Format
{{- if or .Fields .VarFields }}
{{ range .Fields }}
	{{ .Name }} Field[{{ .GoType }}]
{{- end }}
{{- range .VarFields }}
	{{ .Name }} VarField[{{ .GoType }}]
{{- end }}
{{- end }}
}

var {{ .Ident }} = {{ .Ident }}View{
	Format: fmt{{ .Ident }},
{{- range .Fields }}
	{{ .Name }}: Field[{{ .GoType }}]{fmt{{ $f.Ident }}, {{ .Slot }}},
{{- end }}
{{- range .VarFields }}
	{{ .Name }}: VarField[{{ .GoType }}]{fmt{{ $f.Ident }}, {{ .Slot }}},
{{- end }}
}

// Create makes an instruction of the {{ .Name }} format{{ if .Group }} with n var elements{{ end }}.
func (v {{ .Ident }}View) Create(o *op.Operator{{ .Params }}) *ir.Instr {
	in := v.alloc(o, {{ if .Group }}n{{ else }}0{{ end }})
{{- range .Fields }}
	v.{{ .Name }}.Set(in, {{ .Param }})
{{- end }}

	return in
}

// Mutate turns in into an instruction of the {{ .Name }} format in place.
func (v {{ .Ident }}View) Mutate(in *ir.Instr, o *op.Operator{{ .Params }}) *ir.Instr {
	v.reset(in, o, {{ if .Group }}n{{ else }}0{{ end }})
{{- range .Fields }}
	v.{{ .Name }}.Set(in, {{ .Param }})
{{- end }}

	return in
}
{{ end -}}
`))

// Operators writes the Go source of the operator list.
func Operators(ctx context.Context, w io.Writer, m *Model) (err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "gen operators", "operators", len(m.Operators), "formats", len(m.Formats))
	defer tr.Finish("err", &err)

	return execute(tr, w, operatorsTmpl, m)
}

// Views writes the Go source of the format views.
func Views(ctx context.Context, w io.Writer, m *Model) (err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "gen views", "formats", len(m.Formats))
	defer tr.Finish("err", &err)

	return execute(tr, w, viewsTmpl, m)
}

// WriteFile generates into a buffer and replaces the file only if it succeeded.
func WriteFile(ctx context.Context, name string, m *Model, f func(context.Context, io.Writer, *Model) error) (err error) {
	var b bytes.Buffer

	err = f(ctx, &b, m)
	if err != nil {
		return errors.Wrap(err, "%v", name)
	}

	err = os.WriteFile(name, b.Bytes(), 0o644)
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}

func execute(tr tlog.Span, w io.Writer, t *template.Template, m *Model) error {
	var b bytes.Buffer

	err := t.Execute(&b, m)
	if err != nil {
		return errors.Wrap(err, "execute template")
	}

	if tr.If("dump_gen") {
		tr.Printw("generated", "name", t.Name(), "src", b.String())
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return errors.Wrap(err, "format source")
	}

	_, err = w.Write(src)
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}
