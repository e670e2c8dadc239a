package session

import (
	"math"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
)

// ComputeProgress returns the completion percentage for a tree at a given
// difficulty, clamped to [0, 100].
//
// The denominator is the number of nodes the current difficulty masks; the
// numerator counts every solved entry in the overlay, including nodes the
// current difficulty no longer requires. The two sets can therefore
// disagree after a difficulty switch, pushing the raw ratio past 100%
// before the clamp. That asymmetry is part of the observable contract;
// don't "fix" it by filtering solved entries through the mask.
func ComputeProgress(root *outline.Node, d mask.Difficulty, states recall.StateMap) int {
	required := 0
	root.Walk(func(n *outline.Node) {
		if mask.ShouldMask(n, d) {
			required++
		}
	})
	if required < 1 {
		required = 1
	}

	pct := int(math.Round(float64(states.SolvedCount()) / float64(required) * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
