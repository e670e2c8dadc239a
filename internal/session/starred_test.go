package session

import (
	"testing"

	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
)

func TestHasStarredDescendant(t *testing.T) {
	root := outline.Parse("A\n  B\n    C\n  D")
	b := root.Children[0]
	c := b.Children[0]
	d := root.Children[1]

	states := recall.StateMap{}.ToggleStarred(c.ID)

	// C is starred, so C, its ancestor B, and the root all qualify.
	for _, n := range []*outline.Node{root, b, c} {
		if !HasStarredDescendant(n, states) {
			t.Errorf("%s should reach a starred descendant", n.Text)
		}
	}
	if HasStarredDescendant(d, states) {
		t.Error("D has no starred descendant")
	}
}

func TestHasStarredDescendant_NoStars(t *testing.T) {
	root := outline.Parse("A\n  B\n  C")
	if HasStarredDescendant(root, recall.StateMap{}) {
		t.Error("empty state map should reach nothing")
	}
}
