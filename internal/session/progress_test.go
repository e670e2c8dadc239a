package session

import (
	"testing"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
)

func TestComputeProgress_Empty(t *testing.T) {
	root := outline.Parse("A\n  B\n    C\n  D")
	got := ComputeProgress(root, mask.Basic, recall.StateMap{})
	if got != 0 {
		t.Errorf("progress = %d, want 0", got)
	}
}

func TestComputeProgress_HalfSolved(t *testing.T) {
	// Under basic, required = {C, D}; solving C alone is 50%.
	root := outline.Parse("A\n  B\n    C\n  D")
	c := root.Children[0].Children[0]
	states := recall.StateMap{}.MarkSolved(c.ID)

	if got := ComputeProgress(root, mask.Basic, states); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
}

func TestComputeProgress_AllSolved(t *testing.T) {
	root := outline.Parse("A\n  B\n    C\n  D")
	states := recall.StateMap{}
	root.Walk(func(n *outline.Node) {
		if mask.ShouldMask(n, mask.Master) {
			states = states.MarkSolved(n.ID)
		}
	})
	if got := ComputeProgress(root, mask.Master, states); got != 100 {
		t.Errorf("progress = %d, want 100", got)
	}
}

func TestComputeProgress_NonDecreasing(t *testing.T) {
	root := outline.Parse("r\n a\n b\n c\n d\n e")
	states := recall.StateMap{}
	prev := ComputeProgress(root, mask.Basic, states)
	for _, n := range root.Children {
		states = states.MarkSolved(n.ID)
		got := ComputeProgress(root, mask.Basic, states)
		if got < prev {
			t.Errorf("progress decreased: %d -> %d", prev, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("final progress = %d, want 100", prev)
	}
}

func TestComputeProgress_SolvedSetOutlivesDifficulty(t *testing.T) {
	// Solve everything under master, then drop to basic: the solved count
	// (3) exceeds basic's required set (2) and the clamp caps it at 100.
	root := outline.Parse("A\n  B\n    C\n  D")
	states := recall.StateMap{}
	root.Walk(func(n *outline.Node) {
		if mask.ShouldMask(n, mask.Master) {
			states = states.MarkSolved(n.ID)
		}
	})
	if got := ComputeProgress(root, mask.Basic, states); got != 100 {
		t.Errorf("progress = %d, want clamped 100", got)
	}
}

func TestComputeProgress_SentinelTreeNoDivideByZero(t *testing.T) {
	// A lone root has an empty required set at every tier.
	root := outline.Parse("")
	for _, d := range []mask.Difficulty{mask.Basic, mask.Intermediate, mask.Master} {
		if got := ComputeProgress(root, d, recall.StateMap{}); got != 0 {
			t.Errorf("progress at %s = %d, want 0", d, got)
		}
	}
}

func TestComputeProgress_Rounding(t *testing.T) {
	// Three leaves, one solved: 33.33 rounds to 33; two solved: 66.67 -> 67.
	root := outline.Parse("r\n a\n b\n c")
	states := recall.StateMap{}.MarkSolved(root.Children[0].ID)
	if got := ComputeProgress(root, mask.Basic, states); got != 33 {
		t.Errorf("1/3 progress = %d, want 33", got)
	}
	states = states.MarkSolved(root.Children[1].ID)
	if got := ComputeProgress(root, mask.Basic, states); got != 67 {
		t.Errorf("2/3 progress = %d, want 67", got)
	}
}
