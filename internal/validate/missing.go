package validate

import (
	"fmt"

	"github.com/tiantiangg/dagger/internal/graph"
)

// MissingBindingPass reports an error for each dependency request whose key
// has no declared binding.
type MissingBindingPass struct{}

func (MissingBindingPass) Name() string { return "Dagger/MissingBinding" }

func (p MissingBindingPass) VisitGraph(g *graph.BindingGraph, r Reporter) {
	for _, node := range g.Nodes() {
		missing, ok := node.(*graph.MissingBinding)
		if !ok {
			continue
		}
		for _, edge := range g.InEdges(missing) {
			dep, ok := edge.(*graph.DependencyEdge)
			if !ok {
				continue
			}
			r.ReportDependency(SeverityError, dep,
				fmt.Sprintf("%s is requested, but no binding for it was declared.", missing.Key))
		}
	}
}
