package validate

import (
	"github.com/tiantiangg/dagger/internal/graph"
)

// Reporter is the sink validation passes emit diagnostics into. Each
// diagnostic is tied to the dependency edge that triggered it.
type Reporter interface {
	ReportDependency(severity Severity, edge *graph.DependencyEdge, message string)
}

// Pass is one validation rule over a built binding graph. Passes own no
// state, never mutate the graph, and report every violation they find.
type Pass interface {
	Name() string
	VisitGraph(g *graph.BindingGraph, r Reporter)
}

// Passes returns every registered pass in a stable order.
func Passes() []Pass {
	return []Pass{
		ProvisionDependencyPass{},
		MissingBindingPass{},
		DependencyCyclePass{},
	}
}
