package graph

import (
	"fmt"

	"github.com/tiantiangg/dagger/internal/manifest"
)

// Build assembles the binding graph from parsed manifests. Requests for keys
// no manifest declares become MissingBinding nodes rather than build errors;
// the missing-binding pass reports them.
func Build(manifests []*manifest.Manifest) (*BindingGraph, error) {
	b := NewBuilder()

	bindings := make(map[Key]*Binding)
	for _, m := range manifests {
		for _, decl := range m.Bindings {
			kind, err := ParseBindingKind(decl.Kind)
			if err != nil {
				return nil, fmt.Errorf("binding %s in %s: %w", decl.Key, m.SourceFile, err)
			}
			key := Key{Type: decl.Key, Qualifier: decl.Qualifier}
			if existing, ok := bindings[key]; ok {
				return nil, fmt.Errorf("duplicate binding for %s: declared in %s and %s",
					key, existing.SourceFile, m.SourceFile)
			}
			binding := &Binding{
				Key:        key,
				Kind:       kind,
				Module:     m.Module,
				SourceFile: m.SourceFile,
			}
			bindings[key] = binding
			b.AddNode(binding)
		}
	}

	components := make(map[string]*ComponentNode)
	for _, m := range manifests {
		for _, decl := range m.Components {
			if _, ok := components[decl.Name]; ok {
				return nil, fmt.Errorf("duplicate component: %s", decl.Name)
			}
			node := &ComponentNode{Name: decl.Name}
			components[decl.Name] = node
			b.AddNode(node)
		}
	}

	missing := make(map[Key]*MissingBinding)
	target := func(key Key) Node {
		if binding, ok := bindings[key]; ok {
			return binding
		}
		if node, ok := missing[key]; ok {
			return node
		}
		node := &MissingBinding{Key: key}
		missing[key] = node
		b.AddNode(node)
		return node
	}

	for _, m := range manifests {
		for _, decl := range m.Bindings {
			source := bindings[Key{Type: decl.Key, Qualifier: decl.Qualifier}]
			for _, dep := range decl.Dependencies {
				kind, err := ParseRequestKind(dep.Request)
				if err != nil {
					return nil, fmt.Errorf("binding %s in %s: %w", decl.Key, m.SourceFile, err)
				}
				key := Key{Type: dep.Key, Qualifier: dep.Qualifier}
				b.AddEdge(source, target(key), &DependencyEdge{
					Request: Request{Kind: kind, Key: key},
				})
			}
		}
	}

	for _, m := range manifests {
		for _, decl := range m.Components {
			source := components[decl.Name]
			for _, entry := range decl.EntryPoints {
				kind, err := ParseRequestKind(entry.Request)
				if err != nil {
					return nil, fmt.Errorf("component %s in %s: %w", decl.Name, m.SourceFile, err)
				}
				key := Key{Type: entry.Key, Qualifier: entry.Qualifier}
				b.AddEdge(source, target(key), &DependencyEdge{
					Request:    Request{Kind: kind, Key: key},
					EntryPoint: true,
				})
			}
			for _, child := range decl.Subcomponents {
				childNode, ok := components[child]
				if !ok {
					return nil, fmt.Errorf("component %s references unknown subcomponent: %s", decl.Name, child)
				}
				b.AddEdge(source, childNode, &SubcomponentEdge{Parent: decl.Name, Child: child})
			}
		}
	}

	return b.Graph(), nil
}
