package validate

import (
	"strings"
	"testing"

	"github.com/tiantiangg/dagger/internal/graph"
)

func TestMissingBindingReported(t *testing.T) {
	b := graph.NewBuilder()
	a := provisionBinding("A")
	missing := &graph.MissingBinding{Key: graph.Key{Type: "Absent"}}
	b.AddNode(a)
	b.AddNode(missing)
	b.AddEdge(a, missing, dependencyEdge(graph.RequestInstance, missing.Key, false))

	diags := Run(b.Graph(), []Pass{MissingBindingPass{}}).Diagnostics
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	want := "Absent is requested, but no binding for it was declared."
	if diags[0].Message != want {
		t.Fatalf("expected %q, got %q", want, diags[0].Message)
	}
}

func TestDependencyCycleReported(t *testing.T) {
	b := graph.NewBuilder()
	a := provisionBinding("A")
	c := provisionBinding("B")
	b.AddNode(a)
	b.AddNode(c)
	b.AddEdge(a, c, dependencyEdge(graph.RequestInstance, c.Key, false))
	b.AddEdge(c, a, dependencyEdge(graph.RequestInstance, a.Key, false))

	diags := Run(b.Graph(), []Pass{DependencyCyclePass{}}).Diagnostics
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if !strings.Contains(diags[0].Message, "dependency cycle") {
		t.Fatalf("expected cycle message, got %q", diags[0].Message)
	}
	if !strings.Contains(diags[0].Message, "A -> B -> A") {
		t.Fatalf("expected cycle path, got %q", diags[0].Message)
	}
}

func TestAcyclicGraphHasNoCycleDiagnostics(t *testing.T) {
	b := graph.NewBuilder()
	a := provisionBinding("A")
	c := provisionBinding("B")
	d := provisionBinding("C")
	b.AddNode(a)
	b.AddNode(c)
	b.AddNode(d)
	b.AddEdge(a, c, dependencyEdge(graph.RequestInstance, c.Key, false))
	b.AddEdge(a, d, dependencyEdge(graph.RequestInstance, d.Key, false))
	b.AddEdge(c, d, dependencyEdge(graph.RequestInstance, d.Key, false))

	if diags := Run(b.Graph(), []Pass{DependencyCyclePass{}}).Diagnostics; len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %d", len(diags))
	}
}

func TestSelfCycleReported(t *testing.T) {
	b := graph.NewBuilder()
	a := provisionBinding("A")
	b.AddNode(a)
	b.AddEdge(a, a, dependencyEdge(graph.RequestInstance, a.Key, false))

	diags := Run(b.Graph(), []Pass{DependencyCyclePass{}}).Diagnostics
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if !strings.Contains(diags[0].Message, "A -> A") {
		t.Fatalf("expected self cycle path, got %q", diags[0].Message)
	}
}

func TestRunStampsPassNames(t *testing.T) {
	b := graph.NewBuilder()
	a := provisionBinding("A")
	prod := productionBinding("B")
	b.AddNode(a)
	b.AddNode(prod)
	b.AddEdge(a, prod, dependencyEdge(graph.RequestInstance, prod.Key, false))

	report := Run(b.Graph(), Passes())
	if len(report.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(report.Diagnostics))
	}
	if report.Diagnostics[0].Pass != "Dagger/ProviderDependsOnProducer" {
		t.Fatalf("expected provider-depends-on-producer pass, got %q", report.Diagnostics[0].Pass)
	}
}

func TestEnabledFiltersDisabledPasses(t *testing.T) {
	passes := Enabled(Passes(), []string{"Dagger/DependencyCycle"})
	for _, pass := range passes {
		if pass.Name() == "Dagger/DependencyCycle" {
			t.Fatalf("disabled pass still present")
		}
	}
	if len(passes) != len(Passes())-1 {
		t.Fatalf("expected one pass removed, got %d of %d", len(passes), len(Passes()))
	}
}

func TestReportCount(t *testing.T) {
	report := &Report{Diagnostics: []Diagnostic{
		{Severity: SeverityError},
		{Severity: SeverityError},
		{Severity: SeverityWarn},
	}}
	if report.Count(SeverityError) != 2 {
		t.Fatalf("expected 2 errors, got %d", report.Count(SeverityError))
	}
	if report.Count(SeverityWarn) != 1 {
		t.Fatalf("expected 1 warning, got %d", report.Count(SeverityWarn))
	}
}
