package navkit

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/navkit/navkit/core/navigator"
	"github.com/navkit/navkit/core/navstate"
	"github.com/navkit/navkit/core/route"
)

// Subscriber receives the engine's root node after every applied transition.
type Subscriber func(root *navstate.Node)

// Engine is the navigation state machine: it owns the current root node and
// applies GoTo/GoBack/Replace transitions by consulting navigator policies
// along the focus chain.
//
// Transitions are serialized by an internal mutex; subscribers and node
// listeners run outside of it, after the root swap, so they may observe the
// tree and start follow-up transitions.
type Engine struct {
	rt     *navstate.Runtime
	routes *route.Set
	logger *slog.Logger
	navs   map[string]navigator.Navigator

	mu       sync.Mutex
	root     *navstate.Node
	subs     map[uuid.UUID]Subscriber
	subOrder []uuid.UUID
}

// New creates an engine over the given route set. The engine starts without
// a root; install one with SetRoot (often built from DecodeURL).
func New(routes *route.Set, opts ...Option) *Engine {
	e := &Engine{
		rt:     navstate.NewRuntime(),
		routes: routes,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		navs:   make(map[string]navigator.Navigator),
		subs:   make(map[uuid.UUID]Subscriber),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Runtime returns the tree runtime nodes must be created with.
func (e *Engine) Runtime() *navstate.Runtime { return e.rt }

// Routes returns the engine's route set.
func (e *Engine) Routes() *route.Set { return e.routes }

// Root returns the current root node, or nil before SetRoot.
func (e *Engine) Root() *navstate.Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root
}

// SetRoot swaps in a new root wholesale and notifies subscribers. Used for
// initial mounting and deep-link restoration.
func (e *Engine) SetRoot(root *navstate.Node) {
	e.mu.Lock()
	e.root = root
	subs := e.snapshotSubs()
	e.mu.Unlock()

	e.rt.Flush()
	for _, fn := range subs {
		fn(root)
	}
}

// Subscribe registers a callback invoked with the root node after every
// applied transition. The returned function removes the registration.
func (e *Engine) Subscribe(fn Subscriber) func() {
	id := uuid.New()
	e.mu.Lock()
	e.subs[id] = fn
	e.subOrder = append(e.subOrder, id)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, ok := e.subs[id]; !ok {
			return
		}
		delete(e.subs, id)
		for i, sid := range e.subOrder {
			if sid == id {
				e.subOrder = append(e.subOrder[:i], e.subOrder[i+1:]...)
				break
			}
		}
	}
}

// GoTo proposes a transition to the named state. The candidate node is built
// detached and offered to the focus chain's navigators from the innermost
// state outward; an optional initial child stack seeds the candidate. It
// reports whether any navigator absorbed the transition; false means the
// tree is untouched.
func (e *Engine) GoTo(name string, params navstate.Params, stack ...*navstate.Node) bool {
	candidate := e.rt.NewNode(name, params, stack...)
	return e.transition(candidate)
}

// GoBack proposes a back-navigation. The innermost navigator able to go back
// (a stack with more than one entry, a tab row not on its last tab) absorbs
// it; with nowhere to go the call is a no-op and returns false.
func (e *Engine) GoBack() bool {
	return e.transition(nil)
}

func (e *Engine) transition(candidate *navstate.Node) bool {
	e.mu.Lock()
	if e.root == nil {
		e.mu.Unlock()
		return false
	}

	chain := focusChain(e.root)
	var newRoot *navstate.Node
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]
		nav := e.navigatorFor(node.Name())
		if nav.IsZero() {
			continue
		}
		next := nav.Handle(navigator.Request{
			Proposed:  candidate,
			Node:      node,
			Ancestors: ancestorsOf(chain, i),
			Identity:  e.identity,
		})
		if next == nil {
			continue
		}
		e.logger.Debug("transition absorbed",
			slog.String("at", node.Name()),
			slog.String("navigator", nav.Kind().String()),
			slog.Bool("back", candidate == nil),
		)
		newRoot = e.rebuild(chain, i, next)
		break
	}

	if newRoot == nil {
		e.mu.Unlock()
		if candidate != nil {
			e.logger.Debug("transition refused by every navigator", slog.String("name", candidate.Name()))
		}
		return false
	}

	e.root = newRoot
	subs := e.snapshotSubs()
	e.mu.Unlock()

	e.rt.Flush()
	for _, fn := range subs {
		fn(newRoot)
	}
	return true
}

// rebuild splices the accepted replacement back toward the root with
// functional path copying: each ancestor is copied with the one on-path
// child swapped, leaving sibling subtrees untouched. The deepest focused
// descendant of the replacement is then focused so its recency marker (and
// every ancestor's focused index) reflects the transition.
func (e *Engine) rebuild(chain []*navstate.Node, at int, replacement *navstate.Node) *navstate.Node {
	next := replacement
	for j := at - 1; j >= 0; j-- {
		anc := chain[j]
		kids := anc.Stack()
		for k := range kids {
			if kids[k] == chain[j+1] {
				kids[k] = next
			}
		}
		cp := e.rt.NewNodeFrom(anc)
		cp.SetStack(kids)
		next = cp
	}

	leaf := replacement
	for c := leaf.FocusedChild(); c != nil; c = c.FocusedChild() {
		leaf = c
	}
	leaf.Focus()
	return next
}

// Replace swaps target for replacement within the current tree. The target
// is located by object identity with a depth-first search from the root and
// mutated in place via Node.Replace, preserving its key for subscribers;
// replacing the root swaps the whole root. It reports whether the target was
// found.
func (e *Engine) Replace(target, replacement *navstate.Node) bool {
	e.mu.Lock()
	if e.root == nil || target == nil || replacement == nil {
		e.mu.Unlock()
		return false
	}

	if target == e.root {
		e.root = replacement
		subs := e.snapshotSubs()
		root := e.root
		e.mu.Unlock()

		e.rt.Flush()
		for _, fn := range subs {
			fn(root)
		}
		return true
	}

	found := e.root.Walk(func(n *navstate.Node) bool { return n == target })
	if !found {
		e.mu.Unlock()
		return false
	}
	target.Replace(replacement)
	subs := e.snapshotSubs()
	root := e.root
	e.mu.Unlock()

	e.rt.Flush()
	for _, fn := range subs {
		fn(root)
	}
	return true
}

// ReplaceFocused swaps the innermost focused state for replacement.
func (e *Engine) ReplaceFocused(replacement *navstate.Node) bool {
	e.mu.Lock()
	root := e.root
	e.mu.Unlock()
	if root == nil {
		return false
	}
	chain := focusChain(root)
	return e.Replace(chain[len(chain)-1], replacement)
}

// EncodeURL encodes a node's (name, params) into a URL. The second return is
// false for a name with no registered route.
func (e *Engine) EncodeURL(n *navstate.Node) (string, bool) {
	return e.routes.EncodeURL(n.Name(), n.Params())
}

// DecodeURL resolves a URL to a detached node ready to be navigated to or
// installed as a root. It returns nil when no route matches; substituting an
// application not-found state is the caller's job.
func (e *Engine) DecodeURL(u string) *navstate.Node {
	r, params, ok := e.routes.DecodeURL(u)
	if !ok {
		return nil
	}
	return e.rt.NewNode(r.Name(), params)
}

// navigatorFor resolves the policy for a route name: engine-level overrides
// first, then the route declaration.
func (e *Engine) navigatorFor(name string) navigator.Navigator {
	if nav, ok := e.navs[name]; ok {
		return nav
	}
	if r, ok := e.routes.Get(name); ok {
		return r.Navigator()
	}
	return navigator.Navigator{}
}

// identity is the sibling de-duplication key: the node's encoded path.
// Nodes whose names have no registered route fall back to the bare name.
func (e *Engine) identity(n *navstate.Node) string {
	if p, ok := e.routes.EncodePath(n.Name(), n.Params()); ok {
		return p
	}
	return "\x00" + n.Name()
}

// snapshotSubs must be called with e.mu held.
func (e *Engine) snapshotSubs() []Subscriber {
	out := make([]Subscriber, 0, len(e.subOrder))
	for _, id := range e.subOrder {
		out = append(out, e.subs[id])
	}
	return out
}

// focusChain returns the path from root to the innermost focused leaf,
// root first.
func focusChain(root *navstate.Node) []*navstate.Node {
	chain := []*navstate.Node{root}
	for c := root.FocusedChild(); c != nil; c = c.FocusedChild() {
		chain = append(chain, c)
	}
	return chain
}

// ancestorsOf returns chain[i]'s ancestors innermost first.
func ancestorsOf(chain []*navstate.Node, i int) []*navstate.Node {
	out := make([]*navstate.Node, 0, i)
	for j := i - 1; j >= 0; j-- {
		out = append(out, chain[j])
	}
	return out
}
