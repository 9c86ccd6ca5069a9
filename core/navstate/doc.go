// Package navstate implements the navigation state tree: a mutable tree of
// named, parameterized nodes with focus tracking and batched change
// notification.
//
// # Core Components
//
// Node is one entry in the navigation tree. It holds a route name, a Params
// map, an ordered child stack, the index of the currently focused child, a
// back-reference to its parent, and a process-unique key suitable for stable
// list identity in a rendering layer.
//
// Runtime owns everything that would otherwise be global state: the key
// counter, the focus-recency counter, and the pending-notification queue.
// Multiple independent trees can coexist by giving each its own Runtime.
//
// # Basic Usage
//
// Build a tree and subscribe to changes:
//
//	rt := navstate.NewRuntime()
//
//	login := rt.NewNode("Login", nil)
//	root := rt.NewNode("App", nil, login)
//
//	stop := login.Listen(func(n *navstate.Node) {
//		fmt.Println("login params changed:", n.Params())
//	})
//	defer stop()
//
//	login.SetParams(navstate.Params{"next": "/settings"})
//	rt.Flush()
//
// # Change Batching
//
// Mutations do not invoke listeners directly. Each mutation marks the node
// (and its ancestors) dirty on the owning Runtime; Flush drains the dirty
// queue and invokes every listener of every dirty node exactly once per
// batch, in the order nodes first became dirty. Mutations performed by a
// listener land in the next batch, so a Flush call runs batch after batch
// until the tree is quiescent.
//
// The navigation engine flushes automatically at the end of every
// transition. Hosts that mutate nodes directly must either call Flush
// themselves or install an OnDirty hook to defer it:
//
//	rt := navstate.NewRuntime(navstate.OnDirty(func() {
//		go rt.Flush() // or hand off to the host's event loop
//	}))
//
// # Focus Tracking
//
// Every call to Focus stamps the node with a fresh, strictly increasing
// recency marker. When a stack is replaced wholesale via SetStack, the child
// with the highest marker becomes the focused child (the highest index wins
// on a tie), so focus survives tree rebuilds without the caller restating it.
//
// # Concurrency
//
// A tree must be mutated from a single goroutine at a time; the Runtime only
// synchronizes its own counters and the dirty queue. This mirrors the
// single-threaded event-loop model the tree is designed for.
//
// Creating a cycle (making a node its own ancestor) is a programming error
// with undefined behavior; the package does not detect it.
package navstate
