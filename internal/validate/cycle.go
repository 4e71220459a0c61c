package validate

import (
	"fmt"
	"strings"

	"github.com/tiantiangg/dagger/internal/graph"
)

// DependencyCyclePass reports an error for each dependency cycle among
// bindings. One diagnostic is emitted per cycle, attached to the edge that
// closes it.
type DependencyCyclePass struct{}

func (DependencyCyclePass) Name() string { return "Dagger/DependencyCycle" }

func (p DependencyCyclePass) VisitGraph(g *graph.BindingGraph, r Reporter) {
	walker := &cycleWalker{
		g:       g,
		state:   make(map[*graph.Binding]visitState),
		onStack: make(map[*graph.Binding]int),
		report:  r,
	}
	for _, binding := range g.Bindings() {
		if walker.state[binding] == unvisited {
			walker.visit(binding)
		}
	}
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

type cycleWalker struct {
	g       *graph.BindingGraph
	state   map[*graph.Binding]visitState
	onStack map[*graph.Binding]int
	stack   []*graph.Binding
	report  Reporter
}

func (w *cycleWalker) visit(binding *graph.Binding) {
	w.state[binding] = visiting
	w.onStack[binding] = len(w.stack)
	w.stack = append(w.stack, binding)

	for _, edge := range w.g.OutEdges(binding) {
		dep, ok := edge.(*graph.DependencyEdge)
		if !ok {
			continue
		}
		_, target := w.g.IncidentNodes(dep)
		next, ok := target.(*graph.Binding)
		if !ok {
			continue
		}
		switch w.state[next] {
		case visiting:
			w.report.ReportDependency(SeverityError, dep, w.cycleMessage(next))
		case unvisited:
			w.visit(next)
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
	delete(w.onStack, binding)
	w.state[binding] = done
}

func (w *cycleWalker) cycleMessage(entry *graph.Binding) string {
	start := w.onStack[entry]
	keys := make([]string, 0, len(w.stack)-start+1)
	for _, binding := range w.stack[start:] {
		keys = append(keys, binding.Key.String())
	}
	keys = append(keys, entry.Key.String())
	return fmt.Sprintf("dependency cycle: %s", strings.Join(keys, " -> "))
}
