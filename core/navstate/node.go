package navstate

// Listener receives a node whenever a batch containing it flushes.
type Listener func(*Node)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Node is one entry in the navigation tree. Nodes are created through a
// Runtime and mutated in place; the navigation engine layers functional
// rebuild-by-copy on top for whole-transition atomicity.
type Node struct {
	rt           *Runtime
	key          uint64
	name         string
	params       Params
	stack        []*Node
	focusedIndex int
	parent       *Node
	seen         uint64 // focus-recency marker, stamped by Focus
	listeners    []listenerEntry
	lastListener uint64
	initialized  bool // stack has been set at least once
}

// Key returns the node's process-unique identifier. Keys are strictly
// increasing in creation order and never reused, which makes them suitable
// as stable list keys in a rendering layer.
func (n *Node) Key() uint64 { return n.key }

// Name returns the route name the node was created with. It changes only
// through Replace.
func (n *Node) Name() string { return n.name }

// Params returns the node's current parameter map. Callers must not mutate
// it; use SetParams or MergeParams.
func (n *Node) Params() Params { return n.params }

// Parent returns the node currently holding this node in its stack, or nil
// for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Runtime returns the runtime the node is bound to.
func (n *Node) Runtime() *Runtime { return n.rt }

// FocusKey returns the node's focus-recency marker. Higher values mean more
// recently focused; parents use it to pick a focused child when their stack
// is replaced wholesale.
func (n *Node) FocusKey() uint64 { return n.seen }

// Stack returns a copy of the node's child stack. An empty stack means the
// node is a leaf.
func (n *Node) Stack() []*Node {
	out := make([]*Node, len(n.stack))
	copy(out, n.stack)
	return out
}

// Len returns the number of children without copying the stack.
func (n *Node) Len() int { return len(n.stack) }

// FocusedIndex returns the index of the focused child, or -1 if the stack is
// empty.
func (n *Node) FocusedIndex() int { return n.focusedIndex }

// FocusedChild returns the focused child, or nil if the stack is empty.
func (n *Node) FocusedChild() *Node {
	if n.focusedIndex < 0 || n.focusedIndex >= len(n.stack) {
		return nil
	}
	return n.stack[n.focusedIndex]
}

// IsFocused reports whether the node lies on the focus chain, i.e. every
// ancestor's focused child points toward it. A detached or root node is
// focused by definition.
func (n *Node) IsFocused() bool {
	for c := n; c.parent != nil; c = c.parent {
		if c.parent.FocusedChild() != c {
			return false
		}
	}
	return true
}

// SetParams replaces the node's params wholesale and schedules the node and
// its ancestors for notification. Scheduling is skipped when the new params
// are field-wise equal to the current ones.
func (n *Node) SetParams(params Params) {
	if n.params.Equal(params) {
		n.params = params
		return
	}
	n.params = params
	n.scheduleBranch()
}

// MergeParams shallow-merges partial over the current params, with the same
// scheduling behavior as SetParams.
func (n *Node) MergeParams(partial Params) {
	if len(partial) == 0 {
		return
	}
	n.SetParams(n.params.Merge(partial))
}

// SetStack replaces the node's child stack wholesale. Old children are
// detached, new children are adopted (a node belongs to at most one parent;
// adopting re-points its parent reference), and the focused child is
// recomputed from the children's recency markers, the highest index winning
// on a tie. If the focused child changed, it is stamped with a fresh marker
// so the choice is sticky across further rebuilds. The node and its
// ancestors are scheduled for notification unless this is the node's first
// stack assignment.
func (n *Node) SetStack(children []*Node) {
	prevFocused := n.FocusedChild()

	for _, c := range n.stack {
		c.parent = nil
	}
	n.stack = make([]*Node, len(children))
	copy(n.stack, children)
	for _, c := range n.stack {
		c.parent = n
	}

	n.focusedIndex = -1
	var best uint64
	for i, c := range n.stack {
		if n.focusedIndex < 0 || c.seen >= best {
			n.focusedIndex = i
			best = c.seen
		}
	}

	if f := n.FocusedChild(); f != nil && f != prevFocused {
		f.seen = n.rt.nextSeen()
	}

	wasInitialized := n.initialized
	n.initialized = true
	if wasInitialized {
		n.scheduleBranch()
	}
}

// Focus marks the node as the most recently focused and re-points every
// ancestor's focused index down toward it. Ancestors whose focused index
// actually changed are scheduled for notification.
func (n *Node) Focus() {
	n.seen = n.rt.nextSeen()
	child := n
	for p := child.parent; p != nil; p = p.parent {
		idx := -1
		for i, c := range p.stack {
			if c == child {
				idx = i
				break
			}
		}
		if idx >= 0 && p.focusedIndex != idx {
			p.focusedIndex = idx
			p.scheduleBranch()
		}
		child = p
	}
}

// Replace copies other's name, params, stack, and focused index into this
// node in place, preserving the node's key and recency marker so existing
// holders of the reference (and subscribers) observe the change without
// re-pointing.
func (n *Node) Replace(other *Node) {
	n.name = other.name
	n.params = other.params
	n.SetStack(other.stack)
	if other.focusedIndex >= 0 && other.focusedIndex < len(n.stack) {
		n.focusedIndex = other.focusedIndex
	}
	n.scheduleBranch()
}

// Remove excises the node from its parent's stack. Removing a node with no
// parent is a no-op.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	next := make([]*Node, 0, len(p.stack)-1)
	for _, c := range p.stack {
		if c != n {
			next = append(next, c)
		}
	}
	p.SetStack(next)
}

// Listen registers a callback invoked with the node whenever a flush drains
// a batch containing it. The returned function removes the registration;
// calling it more than once is safe.
func (n *Node) Listen(fn Listener) func() {
	n.lastListener++
	id := n.lastListener
	n.listeners = append(n.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range n.listeners {
			if e.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Walk visits the node and its descendants depth-first in stack order,
// stopping early when fn returns true. It reports whether the walk stopped.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if fn(n) {
		return true
	}
	for _, c := range n.stack {
		if c.Walk(fn) {
			return true
		}
	}
	return false
}

// notify invokes a snapshot of the node's listeners. Registrations made or
// removed by a listener apply from the next notification on.
func (n *Node) notify() {
	if len(n.listeners) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, e := range snapshot {
		e.fn(n)
	}
}

// scheduleBranch schedules this node and every ancestor.
func (n *Node) scheduleBranch() {
	for p := n; p != nil; p = p.parent {
		n.rt.schedule(p)
	}
}
