package navstate

import (
	"io"
	"log/slog"
	"sync"
)

// Runtime owns the per-tree bookkeeping: the node key counter, the
// focus-recency counter, and the pending-notification queue. Every Node is
// created through a Runtime and stays bound to it for life.
type Runtime struct {
	logger  *slog.Logger
	onDirty func()

	mu       sync.Mutex
	lastKey  uint64
	lastSeen uint64 // focus-recency counter
	dirty    []*Node
	dirtySet map[*Node]struct{}
	flushing bool
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithRuntimeLogger configures structured logging for the runtime.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithRuntimeLogger(logger *slog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// OnDirty installs a hook invoked whenever the dirty queue transitions from
// empty to non-empty outside of a flush. Hosts use it to arrange a deferred
// Flush on their own event loop. The hook runs without the runtime lock held
// and must not call Flush synchronously from a mutation it did not start.
func OnDirty(fn func()) RuntimeOption {
	return func(rt *Runtime) {
		rt.onDirty = fn
	}
}

// NewRuntime creates an empty tree runtime.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		dirtySet: make(map[*Node]struct{}),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// NewNode creates a node bound to this runtime. The key is unique within the
// runtime and strictly increasing in creation order. An optional initial
// stack is adopted without scheduling notifications, since the node has no
// subscribers yet.
func (rt *Runtime) NewNode(name string, params Params, stack ...*Node) *Node {
	n := &Node{
		rt:           rt,
		key:          rt.nextKey(),
		name:         name,
		params:       params,
		focusedIndex: -1,
	}
	if len(stack) > 0 {
		n.SetStack(stack)
	}
	return n
}

// NewNodeFrom creates a node carrying src's name, params, and focus-recency
// marker, but a fresh key and an empty stack. It is the building block for
// functional path copying: the copy competes for focus exactly like the
// original when a parent stack is recomputed.
func (rt *Runtime) NewNodeFrom(src *Node) *Node {
	n := &Node{
		rt:           rt,
		key:          rt.nextKey(),
		name:         src.name,
		params:       src.params,
		focusedIndex: -1,
		seen:         src.seen,
	}
	return n
}

func (rt *Runtime) nextKey() uint64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.lastKey++
	return rt.lastKey
}

func (rt *Runtime) nextSeen() uint64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.lastSeen++
	return rt.lastSeen
}

// schedule marks n dirty, preserving first-insertion order and deduplicating
// repeat mutations within a batch.
func (rt *Runtime) schedule(n *Node) {
	rt.mu.Lock()
	if _, ok := rt.dirtySet[n]; ok {
		rt.mu.Unlock()
		return
	}
	rt.dirtySet[n] = struct{}{}
	rt.dirty = append(rt.dirty, n)
	first := len(rt.dirty) == 1 && !rt.flushing
	hook := rt.onDirty
	rt.mu.Unlock()

	if first && hook != nil {
		hook()
	}
}

// Pending reports the number of nodes currently awaiting notification.
func (rt *Runtime) Pending() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.dirty)
}

// Flush drains the dirty queue and invokes every listener of every dirty
// node exactly once, in the order nodes first became dirty. Mutations made
// by listeners are collected into a fresh batch and processed by a follow-up
// pass, so Flush returns only when the tree is quiescent. Listener
// registrations and removals during a flush take effect for later batches.
func (rt *Runtime) Flush() {
	for {
		rt.mu.Lock()
		if len(rt.dirty) == 0 {
			rt.flushing = false
			rt.mu.Unlock()
			return
		}
		batch := rt.dirty
		rt.dirty = nil
		rt.dirtySet = make(map[*Node]struct{})
		rt.flushing = true
		rt.mu.Unlock()

		rt.logger.Debug("flushing navigation state batch", slog.Int("nodes", len(batch)))
		for _, n := range batch {
			n.notify()
		}
	}
}
