package session

import (
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
)

// HasStarredDescendant reports whether n or any node in its subtree is
// starred. The starred-only view keeps a node visible when anything below
// it is starred, so this is a reachability check over the tree, not a flat
// filter of the state map.
func HasStarredDescendant(n *outline.Node, states recall.StateMap) bool {
	if states.Get(n.ID).Starred {
		return true
	}
	for _, c := range n.Children {
		if HasStarredDescendant(c, states) {
			return true
		}
	}
	return false
}
