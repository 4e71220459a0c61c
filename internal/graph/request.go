package graph

import "fmt"

// RequestKind describes the shape of a dependency request: a direct instance,
// a wrapped provider, or one of the asynchronous production forms.
type RequestKind string

const (
	RequestInstance         RequestKind = "instance"
	RequestProvider         RequestKind = "provider"
	RequestLazy             RequestKind = "lazy"
	RequestProviderOfLazy   RequestKind = "provider_of_lazy"
	RequestMembersInjection RequestKind = "members_injection"
	RequestProducer         RequestKind = "producer"
	RequestProduced         RequestKind = "produced"
	RequestFuture           RequestKind = "future"
)

var requestKinds = map[RequestKind]struct{}{
	RequestInstance:         {},
	RequestProvider:         {},
	RequestLazy:             {},
	RequestProviderOfLazy:   {},
	RequestMembersInjection: {},
	RequestProducer:         {},
	RequestProduced:         {},
	RequestFuture:           {},
}

func ParseRequestKind(s string) (RequestKind, error) {
	if s == "" {
		return RequestInstance, nil
	}
	kind := RequestKind(s)
	if _, ok := requestKinds[kind]; !ok {
		return "", fmt.Errorf("unknown request kind: %s", s)
	}
	return kind, nil
}

// EntryPointCanUseProduction reports whether an entry point with the given
// request kind may be satisfied by a production binding. Only the
// asynchronous request forms qualify.
func EntryPointCanUseProduction(kind RequestKind) bool {
	switch kind {
	case RequestProducer, RequestFuture:
		return true
	default:
		return false
	}
}
