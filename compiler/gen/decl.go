package gen

import (
	"context"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// OperatorsDecl is the contents of operators.yaml.
	OperatorsDecl struct {
		Operators []OperatorDecl `yaml:"operators"`
	}

	OperatorDecl struct {
		Name   string `yaml:"name"`
		Format string `yaml:"format"`

		// Arch marks the first architecture dependent operator.
		// Every operator after it is architecture dependent too.
		Arch bool `yaml:"arch"`

		Traits []string `yaml:"traits"`

		ImplicitDefs []string `yaml:"implicit_defs"`
		ImplicitUses []string `yaml:"implicit_uses"`
	}

	// FormatsDecl is the contents of formats.yaml.
	FormatsDecl struct {
		Formats []FormatDecl `yaml:"formats"`
	}

	FormatDecl struct {
		Name   string      `yaml:"name"`
		Fields []FieldDecl `yaml:"fields"`
		Var    *VarDecl    `yaml:"var"`
	}

	FieldDecl struct {
		Name string `yaml:"name"`
		Kind string `yaml:"kind"`
		Type string `yaml:"type"`
	}

	// VarDecl is a var region: fields repeated in groups after the fixed prefix.
	VarDecl struct {
		Kind   string      `yaml:"kind"`
		Fields []FieldDecl `yaml:"fields"`
	}
)

func ReadOperators(ctx context.Context, name string) (d *OperatorsDecl, err error) {
	d = new(OperatorsDecl)

	err = readFile(ctx, name, d)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func ReadFormats(ctx context.Context, name string) (d *FormatsDecl, err error) {
	d = new(FormatsDecl)

	err = readFile(ctx, name, d)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Decode reads a declaration list. Unknown keys are errors.
func Decode(r io.Reader, v interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(v)
	if err != nil {
		return errors.Wrap(err, "decode")
	}

	return nil
}

func readFile(ctx context.Context, name string, v interface{}) (err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "read decl", "file", name)
	defer tr.Finish("err", &err)

	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open")
	}

	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close")
		}
	}()

	err = Decode(f, v)
	if err != nil {
		return errors.Wrap(err, "%v", name)
	}

	return nil
}
