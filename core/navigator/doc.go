// Package navigator defines the pluggable per-branch transition policy
// consulted by the navigation engine, plus the two reference policies:
// exclusive stack semantics and tabs semantics.
//
// A Navigator is bound to a route name. When the engine walks the focus
// chain from the innermost state outward, each node whose route declares a
// navigator is asked whether it can absorb the proposed state (or the back
// request, represented by a nil proposal). A navigator answers by returning
// a replacement for the consulted node (a fresh node with a rewritten child
// stack) or nil to refuse, in which case the engine keeps walking outward.
//
// Navigators are pure tree policies: they compute an updated child list and
// focus, and never touch listeners or scheduling.
//
// # Reference Policies
//
// Stack gives exclusive push/pop semantics with de-duplication by encoded
// path identity:
//
//	nav := navigator.Stack("Login", "LoginModal")
//
// Pushing a state whose identity matches an existing entry merges the
// incoming params into that entry and promotes it to the top, truncating
// anything above it. A back request pops the top entry, refusing when one or
// zero entries remain so the request bubbles to an ancestor.
//
// Tabs gives index-switch semantics:
//
//	nav := navigator.Tabs("Home", "Post", "Profile")
//
// Existing entries are never removed; navigating to a matching entry just
// focuses it. A back request cycles the focused index forward by one,
// refusing at the last tab.
//
// # Custom Policies
//
// Custom wraps an arbitrary handler:
//
//	nav := navigator.Custom(func(req navigator.Request) *navstate.Node {
//		// inspect req.Proposed, req.Node, req.Ancestors ...
//		return nil // refuse
//	})
//
// The Kind accessor lets tooling report which policy a route uses without
// peeking into closures.
package navigator
