// Package report collects diagnostics produced while lowering.
package report

import (
	"fmt"
	"go/token"
	"sync"

	"github.com/sirkon/jslower/internal/rules"
)

// Reporter collects lowering diagnostics. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	RuleCode rules.Rule
	Pos      token.Pos
	Position token.Position
	Message  string
}

// Phase marks the stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseParse         // Go source parsing
	PhaseLower         // Go to JS lowering
)

func (p Phase) String() string {
	switch p {
	case PhaseParse:
		return "parse"
	case PhaseLower:
		return "lower"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase.
type PhaseReporter struct {
	parent *Reporter
	fset   *token.FileSet
	phase  Phase
}

// Phase returns a reporter that sets the given phase for all reports produced through it.
// Positions are resolved with fset when it is not nil.
func (r *Reporter) Phase(p Phase, fset *token.FileSet) *PhaseReporter {
	return &PhaseReporter{parent: r, fset: fset, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a rule violation under the bound phase.
// An empty message is replaced with the rule description.
func (rp *PhaseReporter) Report(rule rules.Rule, message string, pos token.Pos) {
	if message == "" {
		message = rule.Description()
	}

	rep := Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Pos:      pos,
		Message:  message,
	}
	if rp.fset != nil && pos.IsValid() {
		rep.Position = rp.fset.Position(pos)
	}

	rp.parent.Report(rep)
}

// ReportAt records a rule violation at a resolved position. It serves
// diagnostics coming with a position only, like syntax errors.
func (rp *PhaseReporter) ReportAt(rule rules.Rule, message string, position token.Position) {
	if message == "" {
		message = rule.Description()
	}

	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Position: position,
		Message:  message,
	})
}

// Reportf is Report with a formatted message.
func (rp *PhaseReporter) Reportf(rule rules.Rule, pos token.Pos, format string, a ...any) {
	rp.Report(rule, fmt.Sprintf(format, a...), pos)
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.reports)
}
