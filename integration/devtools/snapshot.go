package devtools

import (
	"github.com/navkit/navkit/core/navstate"
)

// Snapshot is the JSON shape of one node and its subtree. Keys are stable
// across snapshots of the same tree, so inspectors can diff consecutive
// frames and highlight what moved.
type Snapshot struct {
	Key          uint64          `json:"key"`
	Name         string          `json:"name"`
	Params       navstate.Params `json:"params,omitempty"`
	FocusedIndex int             `json:"focusedIndex"`
	Stack        []Snapshot      `json:"stack,omitempty"`
}

// Capture serializes a node and its descendants. The node's params are
// referenced, not copied; callers must not mutate the result's maps.
func Capture(n *navstate.Node) Snapshot {
	s := Snapshot{
		Key:          n.Key(),
		Name:         n.Name(),
		Params:       n.Params(),
		FocusedIndex: n.FocusedIndex(),
	}
	if n.Len() > 0 {
		s.Stack = make([]Snapshot, 0, n.Len())
		for _, c := range n.Stack() {
			s.Stack = append(s.Stack, Capture(c))
		}
	}
	return s
}
