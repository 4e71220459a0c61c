package graph

// BindingGraph is an immutable snapshot of all bindings, components, and
// dependency requests. It is built once and never mutated afterward;
// validation passes share read-only access.
type BindingGraph struct {
	nodes    []Node
	edges    []Edge
	bindings []*Binding
	byKey    map[Key]*Binding

	in        map[Node][]Edge
	out       map[Node][]Edge
	endpoints map[Edge]incidence
}

type incidence struct {
	source Node
	target Node
}

// Builder assembles a BindingGraph. It is used by the manifest builder and by
// tests that need graphs the builder would refuse to produce.
type Builder struct {
	g *BindingGraph
}

func NewBuilder() *Builder {
	return &Builder{g: &BindingGraph{
		byKey:     make(map[Key]*Binding),
		in:        make(map[Node][]Edge),
		out:       make(map[Node][]Edge),
		endpoints: make(map[Edge]incidence),
	}}
}

func (b *Builder) AddNode(n Node) {
	b.g.nodes = append(b.g.nodes, n)
	if binding, ok := n.(*Binding); ok {
		b.g.bindings = append(b.g.bindings, binding)
		b.g.byKey[binding.Key] = binding
	}
}

func (b *Builder) AddEdge(source, target Node, e Edge) {
	b.g.edges = append(b.g.edges, e)
	b.g.endpoints[e] = incidence{source: source, target: target}
	b.g.out[source] = append(b.g.out[source], e)
	b.g.in[target] = append(b.g.in[target], e)
}

func (b *Builder) Graph() *BindingGraph { return b.g }

func (g *BindingGraph) Nodes() []Node { return g.nodes }

func (g *BindingGraph) Edges() []Edge { return g.edges }

// Bindings returns the binding nodes in declaration order.
func (g *BindingGraph) Bindings() []*Binding { return g.bindings }

func (g *BindingGraph) BindingFor(k Key) (*Binding, bool) {
	binding, ok := g.byKey[k]
	return binding, ok
}

func (g *BindingGraph) InEdges(n Node) []Edge { return g.in[n] }

func (g *BindingGraph) OutEdges(n Node) []Edge { return g.out[n] }

// IncidentNodes returns the source and target of an edge.
func (g *BindingGraph) IncidentNodes(e Edge) (source, target Node) {
	inc := g.endpoints[e]
	return inc.source, inc.target
}
