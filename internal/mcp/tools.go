package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tiantiangg/dagger/internal/graph"
	"github.com/tiantiangg/dagger/internal/validate"
)

type ValidateGraphInput struct {
	Disable []string `json:"disable,omitempty" jsonschema:"pass names to skip"`
}

type ListBindingsInput struct {
	Module string `json:"module,omitempty" jsonschema:"module name filter"`
	Kind   string `json:"kind,omitempty" jsonschema:"provision or production"`
}

type GetBindingInput struct {
	Key       string `json:"key" jsonschema:"binding type name"`
	Qualifier string `json:"qualifier,omitempty" jsonschema:"optional qualifier"`
}

type ListPassesInput struct{}

type DiagnosticOutput struct {
	Pass       string `json:"pass"`
	Severity   string `json:"severity"`
	Key        string `json:"key"`
	EntryPoint bool   `json:"entry_point"`
	Message    string `json:"message"`
}

type ValidateGraphOutput struct {
	Diagnostics []DiagnosticOutput `json:"diagnostics"`
	Errors      int                `json:"errors"`
	Warnings    int                `json:"warnings"`
}

type BindingOutput struct {
	Key        string `json:"key"`
	Kind       string `json:"kind"`
	Module     string `json:"module"`
	SourceFile string `json:"source_file"`
}

type ListBindingsOutput struct {
	Bindings []BindingOutput `json:"bindings"`
}

type DependencyOutput struct {
	Key        string `json:"key"`
	Request    string `json:"request"`
	EntryPoint bool   `json:"entry_point"`
}

type GetBindingOutput struct {
	Binding      BindingOutput      `json:"binding"`
	Dependencies []DependencyOutput `json:"dependencies"`
	Dependents   []DependencyOutput `json:"dependents"`
}

type ListPassesOutput struct {
	Passes []string `json:"passes"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_graph",
		Description: "Run validation passes over the binding graph",
	}, s.handleValidateGraph)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_bindings",
		Description: "List declared bindings with optional filters",
	}, s.handleListBindings)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_binding",
		Description: "Retrieve a binding and the dependency edges touching it",
	}, s.handleGetBinding)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_passes",
		Description: "List the registered validation passes",
	}, s.handleListPasses)
}

func (s *Server) handleValidateGraph(ctx context.Context, req *sdk.CallToolRequest, input ValidateGraphInput) (*sdk.CallToolResult, ValidateGraphOutput, error) {
	g, err := s.loader.Load(ctx)
	if err != nil {
		return nil, ValidateGraphOutput{}, err
	}

	passes := validate.Enabled(validate.Passes(), input.Disable)
	report := validate.Run(g, passes)

	output := make([]DiagnosticOutput, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		output = append(output, DiagnosticOutput{
			Pass:       d.Pass,
			Severity:   string(d.Severity),
			Key:        d.Edge.Request.Key.String(),
			EntryPoint: d.Edge.EntryPoint,
			Message:    d.Message,
		})
	}
	return nil, ValidateGraphOutput{
		Diagnostics: output,
		Errors:      report.Count(validate.SeverityError),
		Warnings:    report.Count(validate.SeverityWarn),
	}, nil
}

func (s *Server) handleListBindings(ctx context.Context, req *sdk.CallToolRequest, input ListBindingsInput) (*sdk.CallToolResult, ListBindingsOutput, error) {
	g, err := s.loader.Load(ctx)
	if err != nil {
		return nil, ListBindingsOutput{}, err
	}

	output := make([]BindingOutput, 0, len(g.Bindings()))
	for _, binding := range g.Bindings() {
		if input.Module != "" && binding.Module != input.Module {
			continue
		}
		if input.Kind != "" && string(binding.Kind) != input.Kind {
			continue
		}
		output = append(output, bindingOutput(binding))
	}
	return nil, ListBindingsOutput{Bindings: output}, nil
}

func (s *Server) handleGetBinding(ctx context.Context, req *sdk.CallToolRequest, input GetBindingInput) (*sdk.CallToolResult, GetBindingOutput, error) {
	if input.Key == "" {
		return nil, GetBindingOutput{}, fmt.Errorf("key is required")
	}
	g, err := s.loader.Load(ctx)
	if err != nil {
		return nil, GetBindingOutput{}, err
	}

	binding, ok := g.BindingFor(graph.Key{Type: input.Key, Qualifier: input.Qualifier})
	if !ok {
		return nil, GetBindingOutput{}, fmt.Errorf("binding not found")
	}

	output := GetBindingOutput{Binding: bindingOutput(binding)}
	for _, edge := range g.OutEdges(binding) {
		if dep, ok := edge.(*graph.DependencyEdge); ok {
			output.Dependencies = append(output.Dependencies, dependencyOutput(dep))
		}
	}
	for _, edge := range g.InEdges(binding) {
		if dep, ok := edge.(*graph.DependencyEdge); ok {
			output.Dependents = append(output.Dependents, dependencyOutput(dep))
		}
	}
	return nil, output, nil
}

func (s *Server) handleListPasses(ctx context.Context, req *sdk.CallToolRequest, input ListPassesInput) (*sdk.CallToolResult, ListPassesOutput, error) {
	passes := validate.Passes()
	names := make([]string, 0, len(passes))
	for _, pass := range passes {
		names = append(names, pass.Name())
	}
	return nil, ListPassesOutput{Passes: names}, nil
}

func bindingOutput(binding *graph.Binding) BindingOutput {
	return BindingOutput{
		Key:        binding.Key.String(),
		Kind:       string(binding.Kind),
		Module:     binding.Module,
		SourceFile: binding.SourceFile,
	}
}

func dependencyOutput(dep *graph.DependencyEdge) DependencyOutput {
	return DependencyOutput{
		Key:        dep.Request.Key.String(),
		Request:    string(dep.Request.Kind),
		EntryPoint: dep.EntryPoint,
	}
}
