package navigator

import (
	"github.com/navkit/navkit/core/navstate"
)

// handleTabs implements index-switch semantics.
//
// A proposal matching an existing entry focuses that entry without removing
// anything; an unmatched proposal in the allow-list is appended and focused.
// A back request cycles the focused index forward by one, refusing once the
// end of the tab row is reached.
func handleTabs(n Navigator, req Request) *navstate.Node {
	node := req.Node
	stack := node.Stack()

	if req.Proposed == nil {
		idx := node.FocusedIndex()
		if idx < 0 || idx+1 >= len(stack) {
			return nil
		}
		next := node.Runtime().NewNodeFrom(node)
		next.SetStack(stack)
		stack[idx+1].Focus()
		return next
	}

	if !n.allows(req.Proposed.Name()) {
		return nil
	}

	target := req.Proposed
	match := findMatch(req, stack)
	if match >= 0 {
		target = stack[match]
	} else {
		stack = append(stack, req.Proposed)
	}

	next := node.Runtime().NewNodeFrom(node)
	next.SetStack(stack)
	// Merge only after the matched tab is adopted by the replacement, so
	// the change notifications climb the new branch, not the discarded one.
	if match >= 0 {
		merge(stack[match], req.Proposed)
	}
	target.Focus()
	return next
}
