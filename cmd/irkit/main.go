package main

import (
	"context"
	"os"

	"github.com/nikandfor/hacked/hfmt"
	"github.com/slowlang/irkit/compiler/format"
	"github.com/slowlang/irkit/compiler/gen"
	"github.com/slowlang/irkit/compiler/ir"
	"github.com/slowlang/irkit/compiler/op"
	"github.com/slowlang/irkit/compiler/regs"
	"github.com/slowlang/irkit/compiler/set"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

func main() {
	opsCmd := &cli.Command{
		Name:        "ops",
		Description: "list operators",
		Action:      opsAct,
		Flags: []*cli.Flag{
			cli.NewFlag("trait", "", "only operators having all of the traits, e.g. branch|conditional"),
			cli.NewFlag("format", "", "only operators of the format"),
			cli.NewFlag("arch", false, "only architecture dependent operators"),
		},
	}

	formatsCmd := &cli.Command{
		Name:        "formats",
		Description: "list operand layouts",
		Action:      formatsAct,
	}

	genCmd := &cli.Command{
		Name:        "gen",
		Description: "generate operator table and format views",
		Action:      genAct,
		Flags: []*cli.Flag{
			cli.NewFlag("ops", "compiler/op/operators.yaml", "operators list"),
			cli.NewFlag("formats", "compiler/format/formats.yaml", "formats list"),
			cli.NewFlag("ops-out", "compiler/op/operators_gen.go", "operators output"),
			cli.NewFlag("views-out", "compiler/format/views_gen.go", "views output"),
		},
	}

	sampleCmd := &cli.Command{
		Name:        "sample",
		Description: "build and print a sample instruction sequence",
		Action:      sampleAct,
		Flags: []*cli.Flag{
			cli.NewFlag("verify", false, "check format conformance in every accessor"),
		},
	}

	app := &cli.Command{
		Name:        "irkit",
		Description: "irkit inspects and generates the instruction tables of the compiler",
		Commands: []*cli.Command{
			opsCmd,
			formatsCmd,
			genCmd,
			sampleCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func opsAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "ops")
	defer tr.Finish("err", &err)

	tab := op.Default()

	sel, err := selectOps(tab, c.String("trait"), c.String("format"), c.Bool("arch"))
	if err != nil {
		return err
	}

	if tr.If("dump_sel") {
		tr.Printw("selected", "opcodes", sel)
	}

	var b []byte

	sel.Range(func(code op.Opcode) bool {
		o := tab.Lookup(code)

		b = hfmt.Appendf(b, "%3d  %-16s %-20v %v", int(code), o.Name(), o.Format(), o.Traits())

		if !o.HasVarDefs() && !o.HasVarUses() {
			b = hfmt.Appendf(b, "  defs %d uses %d", o.NumberOfDefs(), o.NumberOfUses())
		}

		if s := o.ImplicitDefs(); s != regs.None {
			b = hfmt.Appendf(b, "  idefs %v", s)
		}

		if s := o.ImplicitUses(); s != regs.None {
			b = hfmt.Appendf(b, "  iuses %v", s)
		}

		b = append(b, '\n')

		return true
	})

	_, err = os.Stdout.Write(b)

	return err
}

// selectOps picks operators having all of traits, of the named format if set,
// and from the IA32 region if arch is set.
func selectOps(tab *op.Table, traits, fname string, arch bool) (sel set.Bits[op.Opcode], err error) {
	ts, err := op.ParseTraits(traits)
	if err != nil {
		return sel, errors.Wrap(err, "trait flag")
	}

	sel = tab.WithTraits(ts)

	if fname != "" {
		f, ok := format.ByName(fname)
		if !ok {
			return sel, errors.New("unknown format: %v", fname)
		}

		sel.Intersect(tab.WithFormat(f.ID))
	}

	if arch {
		sel.Intersect(tab.Select((*op.Operator).ArchDependent))
	}

	return sel, nil
}

func formatsAct(c *cli.Command) (err error) {
	var b []byte

	for id := op.Format(0); id < op.NumFormats; id++ {
		f := format.Lookup(id)

		b = hfmt.Appendf(b, "%-20s %-8v fixed %d", f.Name, f.Kind(), f.Fixed)

		if f.Group != 0 {
			b = hfmt.Appendf(b, " group %d", f.Group)
		}

		b = append(b, '\n')

		for _, fi := range f.Fields {
			slot := hfmt.Appendf(nil, "%d", fi.Slot)
			if fi.Var {
				slot = hfmt.Appendf(nil, "%d+k*%d", f.Fixed+fi.Slot, f.Group)
			}

			b = hfmt.Appendf(b, "\t%-22s %-8s %-6v %s\n", fi.Name, slot, fi.Role, fi.Type)
		}
	}

	_, err = os.Stdout.Write(b)

	return err
}

func genAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "gen")
	defer tr.Finish("err", &err)

	ops, err := gen.ReadOperators(ctx, c.String("ops"))
	if err != nil {
		return errors.Wrap(err, "read operators")
	}

	fmts, err := gen.ReadFormats(ctx, c.String("formats"))
	if err != nil {
		return errors.Wrap(err, "read formats")
	}

	m, err := gen.Build(ops, fmts)
	if err != nil {
		return errors.Wrap(err, "build model")
	}

	err = gen.WriteFile(ctx, c.String("ops-out"), m, gen.Operators)
	if err != nil {
		return errors.Wrap(err, "operators")
	}

	err = gen.WriteFile(ctx, c.String("views-out"), m, gen.Views)
	if err != nil {
		return errors.Wrap(err, "views")
	}

	tr.Printw("generated", "operators", len(m.Operators), "formats", len(m.Formats))

	return nil
}

func sampleAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	format.Verify = c.Bool("verify")

	code := sample()

	b, err := format.AppendCode(ctx, nil, code)
	if err != nil {
		return errors.Wrap(err, "print")
	}

	_, err = os.Stdout.Write(b)

	return err
}

// sample is a small function: if a < b then return a + b else return a - b.
func sample() []*ir.Instr {
	a := ir.VReg(1, ir.Int)
	b := ir.VReg(2, ir.Int)
	r := ir.VReg(3, ir.Int)
	g := ir.VReg(4, ir.Validation)

	pro := format.Prologue.Create(op.Lookup(op.Prologue), 2)
	format.Prologue.Formals.Set(pro, 0, a)
	format.Prologue.Formals.Set(pro, 1, b)

	return []*ir.Instr{
		pro,
		format.IfCmp.Create(op.Lookup(op.IntIfCmp), g, a, b, ir.NewCond(ir.GE), ir.NewLabel(2), ir.NewProfile(0.5)),
		format.Binary.Create(op.Lookup(op.IntAdd), r, a, b),
		format.Return.Create(op.Lookup(op.Return), r),
		format.Binary.Create(op.Lookup(op.IntSub), r, a, b),
		format.Return.Create(op.Lookup(op.Return), r),
	}
}
