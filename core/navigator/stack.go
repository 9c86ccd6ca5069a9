package navigator

import (
	"github.com/navkit/navkit/core/navstate"
)

// handleStack implements exclusive push/pop semantics.
//
// A proposal whose identity matches an existing entry is merged into that
// entry and promoted to the top, truncating everything above it; otherwise
// the proposal is appended. A back request pops the top entry and refuses
// when one or zero entries remain, so the request bubbles outward.
func handleStack(n Navigator, req Request) *navstate.Node {
	node := req.Node
	stack := node.Stack()

	if req.Proposed == nil {
		if len(stack) <= 1 {
			return nil
		}
		return rebuildWith(node, stack[:len(stack)-1])
	}

	if !n.allows(req.Proposed.Name()) {
		return nil
	}

	match := findMatch(req, stack)
	var next []*navstate.Node
	if match >= 0 {
		next = append(stack[:match:match], stack[match])
	} else {
		next = append(stack, req.Proposed)
	}
	replacement := rebuildWith(node, next)
	// Merge only after the matched child is adopted by the replacement, so
	// the change notifications climb the new branch, not the discarded one.
	if match >= 0 {
		merge(stack[match], req.Proposed)
	}
	return replacement
}

// rebuildWith returns a functional replacement for node carrying the new
// child stack. The replacement keeps node's recency marker (via NewNodeFrom)
// so it competes for focus like the original when its parent is recomputed,
// and its last child is focused; stack semantics put the active entry on
// top.
func rebuildWith(node *navstate.Node, children []*navstate.Node) *navstate.Node {
	next := node.Runtime().NewNodeFrom(node)
	next.SetStack(children)
	if len(children) > 0 {
		children[len(children)-1].Focus()
	}
	return next
}
