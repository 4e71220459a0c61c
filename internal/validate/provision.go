package validate

import (
	"fmt"

	"github.com/tiantiangg/dagger/internal/graph"
)

// ProvisionDependencyPass reports an error for each provision-only dependency
// request that is satisfied by a production binding. Production values are
// computed asynchronously, so a synchronous requester can never consume one.
type ProvisionDependencyPass struct{}

func (ProvisionDependencyPass) Name() string { return "Dagger/ProviderDependsOnProducer" }

func (p ProvisionDependencyPass) VisitGraph(g *graph.BindingGraph, r Reporter) {
	for _, binding := range g.Bindings() {
		if !binding.IsProduction() {
			continue
		}
		for _, edge := range g.InEdges(binding) {
			dep, ok := edge.(*graph.DependencyEdge)
			if !ok {
				continue
			}
			if dependencyCanUseProduction(dep, g) {
				continue
			}
			if dep.EntryPoint {
				r.ReportDependency(SeverityError, dep, entryPointErrorMessage(dep))
			} else {
				r.ReportDependency(SeverityError, dep, dependencyErrorMessage(dep, g))
			}
		}
	}
}

func dependencyCanUseProduction(dep *graph.DependencyEdge, g *graph.BindingGraph) bool {
	if dep.EntryPoint {
		return graph.EntryPointCanUseProduction(dep.Request.Kind)
	}
	return requestingBinding(dep, g).IsProduction()
}

// requestingBinding resolves the binding that made a dependency request. The
// graph builder guarantees that every non-entry-point dependency edge
// originates at a binding; any other source node means the builder broke its
// contract, so fail hard instead of skipping.
func requestingBinding(dep *graph.DependencyEdge, g *graph.BindingGraph) *graph.Binding {
	if dep.EntryPoint {
		panic("requestingBinding called on an entry-point edge")
	}
	source, _ := g.IncidentNodes(dep)
	binding, ok := source.(*graph.Binding)
	if !ok {
		panic(fmt.Sprintf("expected source of the request for %s to be a binding, but was: %T", dep.Request.Key, source))
	}
	return binding
}

// TODO: clarify the entry-point error message.
func entryPointErrorMessage(entryPoint *graph.DependencyEdge) string {
	return fmt.Sprintf("%s is a provision entry-point, which cannot depend on a production.",
		entryPoint.Request.Key)
}

func dependencyErrorMessage(dep *graph.DependencyEdge, g *graph.BindingGraph) string {
	return fmt.Sprintf("%s is a provision, which cannot depend on a production.",
		requestingBinding(dep, g).Key)
}
