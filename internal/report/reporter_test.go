package report

import (
	"go/token"
	"sync"
	"testing"

	"github.com/sirkon/jslower/internal/rules"
)

func TestReporterPhases(t *testing.T) {
	fset := token.NewFileSet()
	file := fset.AddFile("main.go", -1, 100)
	file.SetLines([]int{0, 10, 20, 30, 40})

	tests := []struct {
		name    string
		phase   Phase
		rule    rules.Rule
		message string
		offset  int
		line    int
	}{
		{
			name:    "lower-phase statement",
			phase:   PhaseLower,
			rule:    rules.UnsupportedStatement(),
			message: "defer statements are not lowered",
			offset:  12,
			line:    2,
		},
		{
			name:    "lower-phase loop with default message",
			phase:   PhaseLower,
			rule:    rules.UnsupportedLoop(),
			message: "",
			offset:  41,
			line:    5,
		},
		{
			name:    "parse-phase",
			phase:   PhaseParse,
			rule:    rules.UnsupportedDeclaration(),
			message: "type declaration",
			offset:  0,
			line:    1,
		},
	}

	var r Reporter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Phase(tt.phase, fset).Report(tt.rule, tt.message, file.Pos(tt.offset))
		})
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}

	for i, rep := range reps {
		want := tests[i]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.RuleCode != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.RuleCode, want.rule)
		}
		wantMsg := want.message
		if wantMsg == "" {
			wantMsg = want.rule.Description()
		}
		if rep.Message != wantMsg {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, wantMsg)
		}
		if rep.Position.Filename != "main.go" || rep.Position.Line != want.line {
			t.Errorf("[%s] position mismatch: got %s:%d, want main.go:%d",
				want.name, rep.Position.Filename, rep.Position.Line, want.line)
		}
	}
}

func TestReporterResolvedPosition(t *testing.T) {
	var r Reporter
	pos := token.Position{Filename: "broken.go", Line: 3, Column: 7}
	r.Phase(PhaseParse, nil).ReportAt(rules.SyntaxError(), "expected ';', found x", pos)
	r.Phase(PhaseParse, nil).ReportAt(rules.SyntaxError(), "", token.Position{})

	reps := r.Reports()
	if len(reps) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reps))
	}
	if reps[0].Phase != PhaseParse || reps[0].Position != pos || reps[0].Pos.IsValid() {
		t.Errorf("unexpected report %+v", reps[0])
	}
	if reps[1].Message != rules.SyntaxError().Description() {
		t.Errorf("rule description expected as the message, got %q", reps[1].Message)
	}
	if got := reps[0].Phase.String() + " " + reps[0].RuleCode.String(); got != "parse JSL001: SyntaxError" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestReporterConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Phase(PhaseLower, nil).Reportf(rules.UnsupportedExpression(), token.Pos(i), "parallel add %d", i)
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n || r.Len() != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	if r.Reports()[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
