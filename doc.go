// Package navkit maintains an application's navigation state as a tree of
// named, parameterized states and mediates transitions between them through
// pluggable per-branch navigator policies. It is the state backbone for a
// rendering layer (web, TUI, native) that subscribes to tree changes and
// renders whatever the tree says is on screen.
//
// The building blocks live in subpackages: core/navstate (the state tree
// and change batching), core/route (route declarations and the URL codec),
// and core/navigator (transition policies). This package ties them together
// as the Engine.
//
// # Basic Usage
//
//	routes := route.MustNewSet(
//		route.MustNew("App", "/",
//			route.WithNavigator(navigator.Stack("Login", "LoginModal"))),
//		route.MustNew("Login", "/login"),
//		route.MustNew("LoginModal", "/login/modal"),
//	)
//
//	eng := navkit.New(routes)
//	rt := eng.Runtime()
//	eng.SetRoot(rt.NewNode("App", nil, rt.NewNode("Login", nil)))
//
//	stop := eng.Subscribe(func(root *navstate.Node) {
//		render(root)
//	})
//	defer stop()
//
//	eng.GoTo("LoginModal", nil) // pushes onto the App stack
//	eng.GoBack()                // pops back to Login
//
// # Transition Algorithm
//
// GoTo builds a detached candidate node and GoBack proposes nil; both walk
// the current focus chain from the innermost state outward, consulting each
// node's navigator. The first navigator to accept returns a replacement for
// its node; the engine then rebuilds the ancestor chain by path copying
// (each ancestor is shallow-copied with the one on-path child swapped, so
// unaffected subtrees keep their object identity) and swaps the root
// atomically. If every navigator refuses, the tree is untouched and no
// listener fires: an unrecognized target is a silent no-op, not an error.
//
// After a successful transition the engine flushes the runtime's
// notification queue and invokes its own subscribers with the new root.
//
// # Deep Linking
//
// EncodeURL and DecodeURL bridge to a location-source collaborator (browser
// history, a custom URL bar, ...). DecodeURL returns nil for an unmatched
// URL; substituting a not-found state is the caller's decision.
package navkit
