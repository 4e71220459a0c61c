package graph

// Key identifies what a binding provides: a type name plus an optional
// qualifier that distinguishes multiple bindings of the same type.
type Key struct {
	Type      string
	Qualifier string
}

func (k Key) String() string {
	if k.Qualifier != "" {
		return k.Qualifier + " " + k.Type
	}
	return k.Type
}
