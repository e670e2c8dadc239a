// Package mask decides which outline nodes hide their labels during recall
// practice. The policy is a pure function of tree position and difficulty;
// solved status is layered on top by Hidden.
package mask

import "github.com/sidmehta/remap/internal/outline"

// Difficulty is one of three ordered tiers controlling how much of the tree
// is exercised. The integer values are part of the persisted format.
type Difficulty int

const (
	// Basic masks leaves only.
	Basic Difficulty = 1
	// Intermediate masks leaves and their direct parents.
	Intermediate Difficulty = 2
	// Master masks every node except the root.
	Master Difficulty = 3
)

// String returns the lowercase tier name.
func (d Difficulty) String() string {
	switch d {
	case Intermediate:
		return "intermediate"
	case Master:
		return "master"
	default:
		return "basic"
	}
}

// Int returns the persisted integer form.
func (d Difficulty) Int() int { return int(d) }

// FromInt maps a persisted integer back to a Difficulty. Out-of-range
// values fall back to Basic rather than failing.
func FromInt(v int) Difficulty {
	if v < int(Basic) || v > int(Master) {
		return Basic
	}
	return Difficulty(v)
}

// ShouldMask reports whether the node's label is subject to masking at the
// given difficulty. The root is never masked; it always shows as a heading.
func ShouldMask(n *outline.Node, d Difficulty) bool {
	if n.Level == 0 {
		return false
	}
	switch d {
	case Master:
		return true
	case Intermediate:
		if n.Leaf {
			return true
		}
		for _, c := range n.Children {
			if c.Leaf {
				return true
			}
		}
		return false
	default:
		return n.Leaf
	}
}

// Hidden reports whether the node is effectively hidden on screen: subject
// to masking and not yet solved. Solving is sticky, so a solved node stays
// revealed even after a difficulty change.
func Hidden(n *outline.Node, d Difficulty, solved bool) bool {
	return ShouldMask(n, d) && !solved
}
