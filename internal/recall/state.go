// Package recall holds the mutable side of a study session: a sparse
// per-node state overlay and the answer/hint rules. The parsed tree itself
// is immutable; everything that churns during practice lives here, keyed by
// node ID.
package recall

// NodeState is the recall state for one node. The zero value is the
// default: a node with no entry in the map behaves exactly like one with a
// zero entry.
type NodeState struct {
	// Solved means the label was recalled correctly. Solving is sticky
	// within a session; only a full reset clears it.
	Solved bool `json:"isSolved"`

	// Starred flags the node for review.
	Starred bool `json:"isStarred"`

	// Collapsed is a presentation flag: the node's children are folded
	// away. It never affects masking or progress.
	Collapsed bool `json:"isCollapsed"`

	// Hints counts revealed hints for the node. Non-decreasing except on
	// full reset; what each count reveals is the caller's policy.
	Hints int `json:"hintCount"`
}

// Patch holds optional field updates for one node's state. Nil fields are
// left untouched by Apply.
type Patch struct {
	Solved    *bool
	Starred   *bool
	Collapsed *bool
	Hints     *int
}

// StateMap is a sparse overlay of node ID to recall state.
type StateMap map[string]NodeState

// Get returns the state for id, or the zero state when no entry exists.
func (m StateMap) Get(id string) NodeState {
	return m[id]
}

// Apply merges the patch into id's entry and returns the resulting map.
// The receiver is never modified; callers replace their reference with the
// returned map. Entries are created lazily on first update.
func (m StateMap) Apply(id string, p Patch) StateMap {
	next := make(StateMap, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	st := next[id]
	if p.Solved != nil {
		st.Solved = *p.Solved
	}
	if p.Starred != nil {
		st.Starred = *p.Starred
	}
	if p.Collapsed != nil {
		st.Collapsed = *p.Collapsed
	}
	if p.Hints != nil {
		st.Hints = *p.Hints
	}
	next[id] = st
	return next
}

// MarkSolved returns a map with id's node marked solved.
func (m StateMap) MarkSolved(id string) StateMap {
	solved := true
	return m.Apply(id, Patch{Solved: &solved})
}

// ToggleStarred returns a map with id's star flag flipped.
func (m StateMap) ToggleStarred(id string) StateMap {
	starred := !m.Get(id).Starred
	return m.Apply(id, Patch{Starred: &starred})
}

// ToggleCollapsed returns a map with id's collapse flag flipped.
func (m StateMap) ToggleCollapsed(id string) StateMap {
	collapsed := !m.Get(id).Collapsed
	return m.Apply(id, Patch{Collapsed: &collapsed})
}

// AddHint returns a map with id's hint count incremented by one.
func (m StateMap) AddHint(id string) StateMap {
	hints := m.Get(id).Hints + 1
	return m.Apply(id, Patch{Hints: &hints})
}

// SolvedCount returns the number of entries marked solved.
func (m StateMap) SolvedCount() int {
	n := 0
	for _, st := range m {
		if st.Solved {
			n++
		}
	}
	return n
}

// Reset returns an empty map, forgetting every node's state at once. This
// is a deliberate, named operation: it is not reachable through Apply.
func Reset() StateMap {
	return StateMap{}
}
