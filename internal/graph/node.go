package graph

import "fmt"

// BindingKind separates synchronous provision bindings from asynchronous
// production bindings.
type BindingKind string

const (
	KindProvision  BindingKind = "provision"
	KindProduction BindingKind = "production"
)

func ParseBindingKind(s string) (BindingKind, error) {
	switch s {
	case "", string(KindProvision):
		return KindProvision, nil
	case string(KindProduction):
		return KindProduction, nil
	default:
		return "", fmt.Errorf("unknown binding kind: %s", s)
	}
}

// Node is a vertex in the binding graph. Bindings are one variant among
// others; code that needs a specific variant must type-switch rather than
// assume.
type Node interface {
	isNode()
	fmt.Stringer
}

// Binding is a declared provider of a key.
type Binding struct {
	Key        Key
	Kind       BindingKind
	Module     string
	SourceFile string
}

func (*Binding) isNode() {}

func (b *Binding) String() string { return b.Key.String() }

func (b *Binding) IsProduction() bool { return b.Kind == KindProduction }

// ComponentNode is the root of a component: the owner of entry points. It is
// not itself a binding.
type ComponentNode struct {
	Name string
}

func (*ComponentNode) isNode() {}

func (c *ComponentNode) String() string { return c.Name }

// MissingBinding stands in for a requested key that no manifest declares a
// binding for.
type MissingBinding struct {
	Key Key
}

func (*MissingBinding) isNode() {}

func (m *MissingBinding) String() string { return m.Key.String() }
