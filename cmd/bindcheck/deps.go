package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiantiangg/dagger/internal/graph"
)

func depsCmd() *cobra.Command {
	var qualifier string
	cmd := &cobra.Command{
		Use:   "deps <key>",
		Short: "Show the dependency edges touching a binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(args[0], qualifier)
		},
	}
	cmd.Flags().StringVar(&qualifier, "qualifier", "", "Binding qualifier")
	return cmd
}

func runDeps(key, qualifier string) error {
	_, g, err := loadProject()
	if err != nil {
		return err
	}

	binding, ok := g.BindingFor(graph.Key{Type: key, Qualifier: qualifier})
	if !ok {
		return fmt.Errorf("no binding for %s", graph.Key{Type: key, Qualifier: qualifier})
	}

	fmt.Fprintf(os.Stdout, "%s (%s, module %s)\n", binding.Key, binding.Kind, binding.Module)

	outgoing := dependencyEdges(g.OutEdges(binding))
	if len(outgoing) > 0 {
		fmt.Fprintln(os.Stdout, "Depends on:")
		for _, dep := range outgoing {
			fmt.Fprintf(os.Stdout, "  - %s (%s)\n", dep.Request.Key, dep.Request.Kind)
		}
	}

	incoming := dependencyEdges(g.InEdges(binding))
	if len(incoming) > 0 {
		fmt.Fprintln(os.Stdout, "Requested by:")
		for _, dep := range incoming {
			source, _ := g.IncidentNodes(dep)
			if dep.EntryPoint {
				fmt.Fprintf(os.Stdout, "  - %s [entry point, %s]\n", source, dep.Request.Kind)
			} else {
				fmt.Fprintf(os.Stdout, "  - %s (%s)\n", source, dep.Request.Kind)
			}
		}
	}

	if len(outgoing) == 0 && len(incoming) == 0 {
		fmt.Fprintln(os.Stdout, "No dependency edges.")
	}
	return nil
}

func dependencyEdges(edges []graph.Edge) []*graph.DependencyEdge {
	deps := make([]*graph.DependencyEdge, 0, len(edges))
	for _, edge := range edges {
		if dep, ok := edge.(*graph.DependencyEdge); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}
