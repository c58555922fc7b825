package lower

import (
	"embed"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/jslower/internal/config"
	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/report"
	"github.com/sirkon/jslower/internal/rules"
)

//go:embed testdata
var loweringCases embed.FS

func TestLowerCases(t *testing.T) {
	files, err := loweringCases.ReadDir("testdata")
	if err != nil {
		t.Fatalf("list lowering cases: %s", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), "case_") || !strings.HasSuffix(file.Name(), ".go") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			src, err := loweringCases.ReadFile("testdata/" + file.Name())
			if err != nil {
				t.Fatalf("read file %s: %s", file.Name(), err)
			}
			want, err := loweringCases.ReadFile("testdata/" + strings.TrimSuffix(file.Name(), ".go") + ".js")
			if err != nil {
				t.Fatalf("read expected output for %s: %s", file.Name(), err)
			}

			got := render(t, file.Name(), string(src), nil)
			if got != string(want) {
				t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestNestedBlockKept(t *testing.T) {
	const src = `package p

func diff(a, b int) int {
	{
		a, b = b, a
	}
	return a - b
}
`
	const want = `var diff = function (a, b) {
  {
    var tmp$0, tmp$1;
    tmp$0 = b;
    tmp$1 = a;
    a = tmp$0;
    b = tmp$1;
  }
  return a - b;
};
`

	cfg := config.Default()
	cfg.FlattenBlocks = false
	if got := render(t, "diff.go", src, cfg); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestCustomConfig(t *testing.T) {
	const src = `package p

import "github.com/acme/metrics"

func track(v int) {
	metrics.Inc("hits", v)
	a, v := v, v+1
	metrics.Fail(a + v)
}
`
	const want = `var track = function (v) {
	stats.increment("hits", v);
	var _t0, _t1;
	_t0 = v;
	_t1 = v + 1;
	var a = _t0;
	v = _t1;
	throw AppError(a + v);
};
`

	cfg, err := config.Parse(strings.NewReader(`
temp_prefix: _t
indent: "\t"
callees:
  '"github.com/acme/metrics".Inc':
    kind: call
    target: stats.increment
  '"github.com/acme/metrics".Fail':
    kind: throw
    target: AppError
`))
	if err != nil {
		t.Fatalf("parse config: %s", err)
	}

	if got := render(t, "track.go", src, cfg); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestReports(t *testing.T) {
	const src = `package p

type T struct{}

func (T) Method() {}

func gen[X any](x X) X { return x }

func work(ch chan int, f func() (int, int)) {
	go work(ch, f)
	for range ch {
	}
	x, y := f()
	_ = <-ch
	switch x {
	case 1:
		break
	}
}
`

	prog, reps, err := Translate("work.go", []byte(src), nil)
	if err != nil {
		t.Fatalf("translate: %s", err)
	}
	if prog == nil {
		t.Fatal("program expected")
	}

	type short struct {
		Rule rules.Rule
		Line int
	}
	var got []short
	for _, r := range reps {
		if r.Phase != report.PhaseLower {
			t.Errorf("unexpected phase %s for %s", r.Phase, r.Message)
		}
		got = append(got, short{Rule: r.RuleCode, Line: r.Position.Line})
	}

	want := []short{
		{Rule: rules.UnsupportedDeclaration(), Line: 5},
		{Rule: rules.UnsupportedDeclaration(), Line: 7},
		{Rule: rules.UnsupportedStatement(), Line: 10},
		{Rule: rules.UnsupportedLoop(), Line: 11},
		{Rule: rules.MultiValueAssignment(), Line: 13},
		{Rule: rules.UnsupportedExpression(), Line: 14},
		{Rule: rules.UnsupportedStatement(), Line: 17},
	}
	deepequal.SideBySide(t, "reports", want, got)
}

func TestSourceMap(t *testing.T) {
	const src = `package p

func inc(x int) int {
	y := x + 1
	return y
}
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "inc.go", src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse: %s", err)
	}

	prog := New(nil, fset, nil).LowerFile(file)
	idx := prog.SourceMap()

	var ret *ast.ReturnStmt
	ast.Inspect(file, func(n ast.Node) bool {
		if r, ok := n.(*ast.ReturnStmt); ok {
			ret = r
		}
		return true
	})

	switch n := idx.GetByPos(ret.Results[0].Pos()).(type) {
	case *jsast.NameRef:
		if n.Name.Ident != "y" {
			t.Errorf("reference to y expected, got %s", n.Name)
		}
	default:
		t.Errorf("name reference expected, got %T", n)
	}

	if _, ok := idx.GetByPos(ret.Pos()).(*jsast.Return); !ok {
		t.Errorf("return statement expected at %s", fset.Position(ret.Pos()))
	}
}

func TestLowerFilesShareNothing(t *testing.T) {
	const a = `package p

func a(x int) {
	x, y := 1, x
	_ = y
}
`
	const b = `package p

func b(x int) {
	x, y := 2, x
	_ = y
}
`

	fset := token.NewFileSet()
	var files []*ast.File
	for name, src := range map[string]string{"a.go": a, "b.go": b} {
		f, err := parser.ParseFile(fset, name, src, parser.SkipObjectResolution)
		if err != nil {
			t.Fatalf("parse %s: %s", name, err)
		}
		files = append(files, f)
	}

	var rep report.Reporter
	progs := New(nil, fset, &rep).LowerFiles(files)
	if len(progs) != 2 {
		t.Fatalf("two programs expected, got %d", len(progs))
	}
	for _, p := range progs {
		var b strings.Builder
		if err := p.Fprint(&b, ""); err != nil {
			t.Fatalf("render %s: %s", p.File, err)
		}
		if !strings.Contains(b.String(), "var tmp$0, tmp$1;") {
			t.Errorf("temporaries numbered per file expected in %s:\n%s", p.File, b.String())
		}
	}
	if rep.Len() != 0 {
		t.Errorf("no reports expected, got %v", rep.Reports())
	}
}

func render(t *testing.T, name, src string, cfg *config.Config) string {
	t.Helper()

	prog, reps, err := Translate(name, []byte(src), cfg)
	if err != nil {
		t.Fatalf("translate %s: %s", name, err)
	}
	for _, r := range reps {
		t.Errorf("unexpected report: %s %s", r.RuleCode, r.Message)
	}

	indent := "  "
	if cfg != nil {
		indent = cfg.Indent
	}

	var b strings.Builder
	if err := prog.Fprint(&b, indent); err != nil {
		t.Fatalf("render %s: %s", name, err)
	}

	return b.String()
}

func TestSyntaxErrorsReported(t *testing.T) {
	const src = `package p

func broken() {
	x := 
}
`

	prog, reps, err := Translate("broken.go", []byte(src), nil)
	if err == nil {
		t.Fatal("parse error was expected")
	}
	if prog != nil {
		t.Fatal("no program was expected for a broken source")
	}
	if len(reps) == 0 {
		t.Fatal("syntax errors were expected to be reported")
	}
	for _, r := range reps {
		if r.Phase != report.PhaseParse || r.RuleCode != rules.SyntaxError() {
			t.Errorf("unexpected report %s %s: %s", r.Phase, r.RuleCode, r.Message)
		}
		if r.Position.Filename != "broken.go" || r.Position.Line == 0 {
			t.Errorf("position of the syntax error expected, got %s", r.Position)
		}
	}
}

func TestSourceMapMergedDeclarations(t *testing.T) {
	const src = `package p

func pick(a, b, c, d int) int {
	x, y := a, b
	x, z := c, d
	return x + y + z
}
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "pick.go", src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse: %s", err)
	}

	prog := New(nil, fset, nil).LowerFile(file)
	idx := prog.SourceMap()

	var second *ast.AssignStmt
	ast.Inspect(file, func(n ast.Node) bool {
		if s, ok := n.(*ast.AssignStmt); ok {
			second = s
		}
		return true
	})

	for _, rhs := range second.Rhs {
		got := idx.GetByPos(rhs.Pos())
		if _, ok := got.(*jsast.NameRef); !ok {
			t.Fatalf("name reference expected at %s, got %T", fset.Position(rhs.Pos()), got)
		}
		if span := jsast.SourceOf(got); span != jsast.SpanOf(rhs) {
			t.Errorf("node tagged with %v expected at %s, got %v", jsast.SpanOf(rhs), fset.Position(rhs.Pos()), span)
		}
	}
}
