package lower

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"io"
	"path"
	"path/filepath"
	"strconv"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/jslower/internal/config"
	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/report"
	"github.com/sirkon/jslower/internal/rules"
	"github.com/sirkon/jslower/internal/scoping"
	"github.com/sirkon/jslower/internal/srcmap"
)

// Program is the JS rendering of a single Go file.
type Program struct {
	File  string
	Scope *jsast.Scope
	Body  *jsast.Block
}

// Fprint writes program source.
func (p *Program) Fprint(w io.Writer, indent string) error {
	pr := jsast.Printer{Indent: indent}
	if err := pr.Fprint(w, p.Body); err != nil {
		return fmt.Errorf("render %s: %w", p.File, err)
	}

	return nil
}

// SourceMap indexes emitted nodes by Go source positions.
func (p *Program) SourceMap() *srcmap.Index {
	return srcmap.Build(p.Body)
}

// Lowerer translates Go files into JS programs.
type Lowerer struct {
	cfg     *config.Config
	fset    *token.FileSet
	rep     *report.PhaseReporter
	callees *knownCallees
	info    *types.Info

	// Per file.
	global   *jsast.Scope
	imports  map[string]string
	reserved map[string]bool
}

// New creates a lowerer. A nil config stands for [config.Default], reports are dropped when rep is nil.
func New(cfg *config.Config, fset *token.FileSet, rep *report.Reporter) *Lowerer {
	if cfg == nil {
		cfg = config.Default()
	}
	if rep == nil {
		rep = &report.Reporter{}
	}

	return &Lowerer{
		cfg:     cfg,
		fset:    fset,
		rep:     rep.Phase(report.PhaseLower, fset),
		callees: newKnownCallees(cfg.Callees),
	}
}

// WithTypes sets type information of the lowered files. Without it integer
// division cannot be told from the floating point one and is lowered as the latter.
func (l *Lowerer) WithTypes(info *types.Info) *Lowerer {
	l.info = info
	return l
}

// Translate parses a Go source, type checks it as far as possible and lowers it.
// Syntax errors are reported and returned as an error.
func Translate(filename string, src []byte, cfg *config.Config) (*Program, []report.Report, error) {
	var rep report.Reporter

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		reportSyntaxErrors(rep.Phase(report.PhaseParse, fset), err)
		return nil, rep.Reports(), fmt.Errorf("parse %s: %w", filename, err)
	}

	// Type errors are not fatal: lowering only needs types of the expressions
	// the checker managed to resolve.
	info := &types.Info{
		Types: map[ast.Expr]types.TypeAndValue{},
		Defs:  map[*ast.Ident]types.Object{},
		Uses:  map[*ast.Ident]types.Object{},
	}
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(error) {},
	}
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, info)

	prog := New(cfg, fset, &rep).WithTypes(info).LowerFile(file)

	return prog, rep.Reports(), nil
}

func reportSyntaxErrors(rep *report.PhaseReporter, err error) {
	var list scanner.ErrorList
	if !errors.As(err, &list) {
		rep.ReportAt(rules.SyntaxError(), err.Error(), token.Position{})
		return
	}

	for _, e := range list {
		rep.ReportAt(rules.SyntaxError(), e.Msg, e.Pos)
	}
}

// LowerFiles lowers each of the given files.
func (l *Lowerer) LowerFiles(files []*ast.File) []*Program {
	return l.LowerInspected(inspector.New(files))
}

// LowerInspected lowers every file known to the inspector.
func (l *Lowerer) LowerInspected(in *inspector.Inspector) []*Program {
	var progs []*Program
	in.Preorder([]ast.Node{(*ast.File)(nil)}, func(n ast.Node) {
		progs = append(progs, l.LowerFile(n.(*ast.File)))
	})

	return progs
}

// LowerFile lowers declarations of the file: functions and package level variables.
func (l *Lowerer) LowerFile(file *ast.File) *Program {
	filename := file.Name.Name
	if l.fset != nil {
		if f := l.fset.File(file.Pos()); f != nil {
			filename = filepath.Base(f.Name())
		}
	}

	l.global = jsast.NewRootScope(file.Name.Name, l.cfg.TempPrefix)
	l.imports = fileImports(file)
	l.reserved = map[string]bool{}

	// Globals of the JS environment. Go names clashing with them get renamed.
	for _, ident := range l.callees.externals() {
		l.global.DeclareName(ident)
		l.reserved[ident] = true
	}

	prog := &Program{
		File:  filename,
		Scope: l.global,
		Body:  jsast.NewBlock(),
	}
	root := scoping.RootContext(l.global, prog.Body)
	st := &funcState{
		scope: l.global,
		env:   newEnv(nil),
	}

	// Package level names may be referenced before they are declared.
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				l.bindPackageName(st, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, id := range vs.Names {
						if id.Name != "_" {
							l.bindPackageName(st, id.Name)
						}
					}
				}
			}
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			l.funcDecl(root, st, d)
		case *ast.GenDecl:
			l.genDecl(root, st, d)
		}
	}

	return prog
}

// bindPackageName allocates the JS name of a package level Go name. JS globals
// reserved for known callees are never taken over.
func (l *Lowerer) bindPackageName(st *funcState, ident string) {
	if st.env.own(ident) != nil {
		// Several init functions.
		return
	}

	if l.reserved[ident] {
		st.env.bind(ident, l.global.DeclareFreshName(ident))
		return
	}
	st.env.bind(ident, l.global.DeclareName(ident))
}

func (l *Lowerer) funcDecl(ctx *scoping.Context, st *funcState, d *ast.FuncDecl) {
	if d.Recv != nil {
		l.rep.Reportf(rules.UnsupportedDeclaration(), d.Pos(), "method %s is not lowered", d.Name.Name)
		return
	}
	if d.Body == nil {
		l.rep.Reportf(rules.UnsupportedDeclaration(), d.Pos(), "function %s has no body", d.Name.Name)
		return
	}
	if d.Type.TypeParams != nil && d.Type.TypeParams.NumFields() > 0 {
		l.rep.Reportf(rules.UnsupportedDeclaration(), d.Pos(), "generic function %s is not lowered", d.Name.Name)
		return
	}

	fn := l.function(st, d.Type, d.Body, d.Name.Name, d)
	vars := jsast.NewVars(&jsast.Var{
		Meta: meta(d),
		Name: st.env.lookup(d.Name.Name),
		Init: fn,
	})
	vars.Source = src(d)
	ctx.AddStatement(vars)
}

func fileImports(file *ast.File) map[string]string {
	res := map[string]string{}
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		name := path.Base(p)
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		res[name] = p
	}

	return res
}

func src(n ast.Node) jsast.Span {
	return jsast.SpanOf(n)
}

func meta(n ast.Node) jsast.Meta {
	return jsast.Meta{Source: src(n)}
}
