package mask

import (
	"testing"

	"github.com/sidmehta/remap/internal/outline"
)

// fixture: root A with children B (parent of leaf C) and leaf D.
func fixture(t *testing.T) (root, b, c, d *outline.Node) {
	t.Helper()
	root = outline.Parse("A\n  B\n    C\n  D")
	b = root.Children[0]
	c = b.Children[0]
	d = root.Children[1]
	return
}

func TestShouldMask_RootNever(t *testing.T) {
	root, _, _, _ := fixture(t)
	for _, d := range []Difficulty{Basic, Intermediate, Master} {
		if ShouldMask(root, d) {
			t.Errorf("root masked at %s", d)
		}
	}
}

func TestShouldMask_Basic(t *testing.T) {
	_, b, c, d := fixture(t)
	if ShouldMask(b, Basic) {
		t.Error("non-leaf B masked under basic")
	}
	if !ShouldMask(c, Basic) || !ShouldMask(d, Basic) {
		t.Error("leaves C, D should be masked under basic")
	}
}

func TestShouldMask_Intermediate(t *testing.T) {
	_, b, c, d := fixture(t)
	// B is a parent of a leaf, so it joins the masked set.
	for _, n := range []*outline.Node{b, c, d} {
		if !ShouldMask(n, Intermediate) {
			t.Errorf("%s should be masked under intermediate", n.Text)
		}
	}
}

func TestShouldMask_IntermediateSkipsGrandparents(t *testing.T) {
	root := outline.Parse("r\n  a\n    b\n      c")
	a := root.Children[0]
	if ShouldMask(a, Intermediate) {
		t.Error("node with only non-leaf children masked under intermediate")
	}
}

func TestShouldMask_Master(t *testing.T) {
	root, b, c, d := fixture(t)
	if ShouldMask(root, Master) {
		t.Error("root masked under master")
	}
	for _, n := range []*outline.Node{b, c, d} {
		if !ShouldMask(n, Master) {
			t.Errorf("%s should be masked under master", n.Text)
		}
	}
}

func TestShouldMask_MonotonicInDifficulty(t *testing.T) {
	root := outline.Parse("r\n a\n  b\n   c\n d\n  e\n f")
	root.Walk(func(n *outline.Node) {
		if ShouldMask(n, Basic) && !ShouldMask(n, Intermediate) {
			t.Errorf("%s masked at basic but not intermediate", n.Text)
		}
		if ShouldMask(n, Intermediate) && !ShouldMask(n, Master) {
			t.Errorf("%s masked at intermediate but not master", n.Text)
		}
	})
}

func TestHidden_SolvedStaysRevealed(t *testing.T) {
	_, _, c, _ := fixture(t)
	if !Hidden(c, Basic, false) {
		t.Error("unsolved masked leaf should be hidden")
	}
	if Hidden(c, Basic, true) {
		t.Error("solved node should stay revealed")
	}
	if Hidden(c, Master, true) {
		t.Error("solved node should stay revealed after a difficulty change")
	}
}

func TestFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want Difficulty
	}{
		{1, Basic}, {2, Intermediate}, {3, Master},
		{0, Basic}, {-1, Basic}, {4, Basic}, {99, Basic},
	}
	for _, tt := range tests {
		if got := FromInt(tt.in); got != tt.want {
			t.Errorf("FromInt(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyString(t *testing.T) {
	if Basic.String() != "basic" || Intermediate.String() != "intermediate" || Master.String() != "master" {
		t.Error("unexpected tier names")
	}
}
