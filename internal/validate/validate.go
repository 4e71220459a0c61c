package validate

import (
	"github.com/tiantiangg/dagger/internal/graph"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

// Diagnostic is one finding: which pass produced it, how severe it is, the
// dependency edge it is attached to, and the message shown to the user.
type Diagnostic struct {
	Pass     string
	Severity Severity
	Edge     *graph.DependencyEdge
	Message  string
}

type Report struct {
	Diagnostics []Diagnostic
}

func (r *Report) Count(severity Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// Run executes each pass over the graph and collects everything they report.
// Passes are independent; one pass's findings never suppress another's.
func Run(g *graph.BindingGraph, passes []Pass) *Report {
	rec := &recorder{}
	for _, pass := range passes {
		rec.pass = pass.Name()
		pass.VisitGraph(g, rec)
	}
	return &Report{Diagnostics: rec.diagnostics}
}

// Enabled filters the registered passes against a disabled-name list.
func Enabled(passes []Pass, disabled []string) []Pass {
	if len(disabled) == 0 {
		return passes
	}
	skip := make(map[string]struct{}, len(disabled))
	for _, name := range disabled {
		skip[name] = struct{}{}
	}
	enabled := make([]Pass, 0, len(passes))
	for _, pass := range passes {
		if _, ok := skip[pass.Name()]; ok {
			continue
		}
		enabled = append(enabled, pass)
	}
	return enabled
}

type recorder struct {
	pass        string
	diagnostics []Diagnostic
}

func (r *recorder) ReportDependency(severity Severity, edge *graph.DependencyEdge, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Pass:     r.pass,
		Severity: severity,
		Edge:     edge,
		Message:  message,
	})
}
