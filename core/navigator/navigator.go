package navigator

import (
	"github.com/navkit/navkit/core/navstate"
)

// Kind identifies a navigator policy.
type Kind int

const (
	// KindNone is the zero value: the route declares no navigator and is
	// skipped during focus-chain consultation.
	KindNone Kind = iota
	// KindStack is the exclusive push/pop policy.
	KindStack
	// KindTabs is the index-switch policy.
	KindTabs
	// KindCustom wraps a caller-supplied handler.
	KindCustom
)

// String returns the kind's declaration name.
func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindTabs:
		return "tabs"
	case KindCustom:
		return "custom"
	}
	return "none"
}

// Request carries one consultation from the engine to a navigator.
type Request struct {
	// Proposed is the candidate state to absorb, or nil for a back request.
	Proposed *navstate.Node
	// Node is the focus-chain node being consulted.
	Node *navstate.Node
	// Ancestors are Node's ancestors, innermost first, up to the root.
	Ancestors []*navstate.Node
	// Identity returns the encoded-path identity used to de-duplicate
	// sibling states. Two nodes with equal identity are the same logical
	// entry.
	Identity func(*navstate.Node) string
}

// HandleFunc is a custom navigator policy. It returns a replacement for
// req.Node when it absorbs the request, or nil to refuse.
type HandleFunc func(req Request) *navstate.Node

// Navigator is a per-route transition policy expressed as a tagged variant,
// so callers and tooling can see which policy a route uses. The zero value
// declares no policy.
type Navigator struct {
	kind   Kind
	routes []string
	handle HandleFunc
}

// Stack returns the exclusive push/pop policy accepting the given route
// names.
func Stack(routes ...string) Navigator {
	return Navigator{kind: KindStack, routes: routes}
}

// Tabs returns the index-switch policy accepting the given route names.
func Tabs(routes ...string) Navigator {
	return Navigator{kind: KindTabs, routes: routes}
}

// Custom wraps fn as a navigator policy.
func Custom(fn HandleFunc) Navigator {
	return Navigator{kind: KindCustom, handle: fn}
}

// Kind returns the policy variant.
func (n Navigator) Kind() Kind { return n.kind }

// Routes returns the allow-list of route names the policy accepts. Custom
// policies have no allow-list.
func (n Navigator) Routes() []string { return n.routes }

// IsZero reports whether the navigator declares no policy.
func (n Navigator) IsZero() bool { return n.kind == KindNone }

// Handle consults the policy. It returns a replacement for req.Node when the
// request is absorbed, or nil when the policy refuses and the request should
// bubble to an ancestor.
func (n Navigator) Handle(req Request) *navstate.Node {
	switch n.kind {
	case KindStack:
		return handleStack(n, req)
	case KindTabs:
		return handleTabs(n, req)
	case KindCustom:
		if n.handle != nil {
			return n.handle(req)
		}
	}
	return nil
}

func (n Navigator) allows(name string) bool {
	for _, r := range n.routes {
		if r == name {
			return true
		}
	}
	return false
}

// findMatch returns the index of the existing child sharing the proposal's
// identity, preferring the most recently focused match and the highest index
// on a marker tie. It returns -1 when no child matches.
func findMatch(req Request, stack []*navstate.Node) int {
	id := req.Identity(req.Proposed)
	best := -1
	var bestSeen uint64
	for i, c := range stack {
		if req.Identity(c) != id {
			continue
		}
		if best < 0 || c.FocusKey() >= bestSeen {
			best = i
			bestSeen = c.FocusKey()
		}
	}
	return best
}

// merge folds the proposal into an existing child with the same identity,
// keeping the child's key and recency marker. A proposal carrying an initial
// stack replaces the child's stack; otherwise the child's stack is kept.
// Callers invoke it after the child has been adopted by the replacement
// node, so the scheduling it triggers stays off the replaced branch.
func merge(existing, proposed *navstate.Node) {
	existing.MergeParams(proposed.Params())
	if proposed.Len() > 0 {
		existing.SetStack(proposed.Stack())
	}
}
