package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/jslower/internal/config"
	"github.com/sirkon/jslower/internal/lower"
	"github.com/sirkon/jslower/internal/report"
)

const doc = `jslower lowers Go functions into JS and reports constructs having no JS rendering`

var (
	configPath string
	emitDir    string
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to the YAML lowering configuration")
	Analyzer.Flags.StringVar(&emitDir, "emit", "", "directory to write lowered JS files into")
}

// Analyzer is the main entry point for the lowering.
var Analyzer = &analysis.Analyzer{
	Name:       "jslower",
	Doc:        doc,
	Requires:   []*analysis.Analyzer{inspect.Analyzer},
	Run:        run,
	ResultType: reflect.TypeOf([]*lower.Program(nil)),
}

var errNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	pector, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, errNoInspector
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load lowering config: %w", err)
		}
	}

	var rep report.Reporter
	progs := lower.New(cfg, pass.Fset, &rep).WithTypes(pass.TypesInfo).LowerInspected(pector)

	for _, r := range rep.Reports() {
		pass.Reportf(r.Pos, "%s: %s", r.RuleCode, r.Message)
	}

	if emitDir != "" {
		if err := emit(progs, cfg.Indent); err != nil {
			return nil, fmt.Errorf("emit lowered programs: %w", err)
		}
	}

	return progs, nil
}

// emit writes each program into a .js file named after its Go source.
func emit(progs []*lower.Program, indent string) error {
	if err := os.MkdirAll(emitDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, p := range progs {
		var b strings.Builder
		if err := p.Fprint(&b, indent); err != nil {
			return err
		}

		name := filepath.Join(emitDir, strings.TrimSuffix(p.File, ".go")+".js")
		if err := os.WriteFile(name, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return nil
}

func main() {
	singlechecker.Main(Analyzer)
}
