package graph

// Edge is a directed edge in the binding graph.
type Edge interface {
	isEdge()
}

// Request is one dependency request: a key asked for in a particular shape.
type Request struct {
	Kind RequestKind
	Key  Key
}

// DependencyEdge records one dependency request: from a binding to the
// binding that satisfies it, or from a component to an entry point's target.
type DependencyEdge struct {
	Request    Request
	EntryPoint bool
}

func (*DependencyEdge) isEdge() {}

// SubcomponentEdge links a parent component node to a child component node.
// The names are carried on the edge so each allocation is distinct; pointers
// to empty structs may share an address, which would collide in the graph's
// edge-keyed incidence map.
type SubcomponentEdge struct {
	Parent string
	Child  string
}

func (*SubcomponentEdge) isEdge() {}
