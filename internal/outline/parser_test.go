package outline

import (
	"strings"
	"testing"
)

func TestParse_BasicNesting(t *testing.T) {
	root := Parse("A\n  B\n    C\n  D")

	if root.Text != "A" || root.Level != 0 {
		t.Fatalf("root = %q level %d, want A level 0", root.Text, root.Level)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}

	b, d := root.Children[0], root.Children[1]
	if b.Text != "B" || b.Level != 1 || b.Leaf {
		t.Errorf("B = %q level %d leaf %v, want B/1/false", b.Text, b.Level, b.Leaf)
	}
	if d.Text != "D" || d.Level != 1 || !d.Leaf {
		t.Errorf("D = %q level %d leaf %v, want D/1/true", d.Text, d.Level, d.Leaf)
	}
	if len(b.Children) != 1 {
		t.Fatalf("B children = %d, want 1", len(b.Children))
	}
	c := b.Children[0]
	if c.Text != "C" || c.Level != 2 || !c.Leaf {
		t.Errorf("C = %q level %d leaf %v, want C/2/true", c.Text, c.Level, c.Leaf)
	}
}

func TestParse_EqualIndentIsSibling(t *testing.T) {
	// Equal indentation closes the previous subtree; it never nests.
	root := Parse("root\n  a\n  b\n  c")
	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3 siblings", len(root.Children))
	}
	for _, c := range root.Children {
		if c.Level != 1 || !c.Leaf {
			t.Errorf("%s: level %d leaf %v, want 1/true", c.Text, c.Level, c.Leaf)
		}
	}
}

func TestParse_MarkersStripped(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"- bullet", "bullet"},
		{"* star", "star"},
		{"+ plus", "plus"},
		{"# Heading", "Heading"},
		{"### Deep Heading", "Deep Heading"},
		{"plain", "plain"},
		{"-", ""},
		{"  - padded  ", "padded"},
	}
	for _, tt := range tests {
		root := Parse(tt.line)
		if root.Text != tt.want {
			t.Errorf("Parse(%q).Text = %q, want %q", tt.line, root.Text, tt.want)
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n  "} {
		root := Parse(text)
		if root.Text != EmptyLabel {
			t.Errorf("Parse(%q).Text = %q, want sentinel", text, root.Text)
		}
		if !root.Leaf || root.Level != 0 || len(root.Children) != 0 {
			t.Errorf("Parse(%q) sentinel not a lone leaf root", text)
		}
	}
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	plain := Parse("A\n  B\n  C")
	spaced := Parse("A\n\n  B\n\n\n  C\n")
	if !sameShape(plain, spaced) {
		t.Error("blank lines changed tree shape")
	}
}

func TestParse_DedentBelowRootRecovers(t *testing.T) {
	// The root sits at indent 2; the third line dedents past it.
	root := Parse("  A\n    B\nC")
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	c := root.Children[1]
	if c.Text != "C" || c.Level != 1 {
		t.Errorf("recovered node = %q level %d, want C level 1", c.Text, c.Level)
	}
}

func TestParse_DedentRecoveryKeepsNesting(t *testing.T) {
	// After recovery the malformed node still accepts deeper children.
	root := Parse("  A\nB\n    C")
	b := root.Children[0]
	if b.Text != "B" || len(b.Children) != 1 {
		t.Fatalf("B = %q with %d children, want C nested under it", b.Text, len(b.Children))
	}
	if b.Children[0].Level != 2 {
		t.Errorf("C level = %d, want 2", b.Children[0].Level)
	}
}

func TestParse_LevelEqualsAncestorCount(t *testing.T) {
	root := Parse("a\n b\n  c\n   d\n e\n  f")
	root.Walk(func(n *Node) {
		depth := 0
		for p := root; p != n; {
			next := childOnPathTo(p, n)
			if next == nil {
				t.Fatalf("%s unreachable from root", n.Text)
			}
			p = next
			depth++
		}
		if n.Level != depth {
			t.Errorf("%s: level %d, ancestors %d", n.Text, n.Level, depth)
		}
	})
}

func TestParse_LeafConsistency(t *testing.T) {
	root := Parse("a\n b\n  c\n d\ne is not possible") // last line dedents to root level
	root.Walk(func(n *Node) {
		if n.Leaf != (len(n.Children) == 0) {
			t.Errorf("%s: Leaf = %v with %d children", n.Text, n.Leaf, len(n.Children))
		}
	})
}

func TestParse_Deterministic(t *testing.T) {
	text := "# Biomes\n- Forest\n  - Taiga\n  - Rainforest\n- Desert"
	a, b := Parse(text), Parse(text)
	if !sameShape(a, b) {
		t.Error("re-parsing identical text produced a different tree")
	}
	if a.Children[0].Children[0].ID == b.Children[0].Children[0].ID {
		t.Error("node IDs should be freshly generated per parse")
	}
}

func TestParse_UniqueIDs(t *testing.T) {
	root := Parse("a\n b\n b\n b\n  c")
	seen := map[string]bool{}
	root.Walk(func(n *Node) {
		if seen[n.ID] {
			t.Errorf("duplicate id %s", n.ID)
		}
		seen[n.ID] = true
	})
}

func TestParse_TabIndentation(t *testing.T) {
	root := Parse("a\n\tb\n\t\tc")
	if len(root.Children) != 1 || len(root.Children[0].Children) != 1 {
		t.Fatal("tab-indented outline did not nest")
	}
}

// sameShape compares structure, text and level, ignoring IDs.
func sameShape(a, b *Node) bool {
	if a.Text != b.Text || a.Level != b.Level || a.Leaf != b.Leaf || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !sameShape(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// childOnPathTo returns p's child whose subtree contains target.
func childOnPathTo(p, target *Node) *Node {
	for _, c := range p.Children {
		if c.Find(target.ID) != nil {
			return c
		}
	}
	return nil
}

func TestCount(t *testing.T) {
	root := Parse("a\n b\n c\n  d")
	if got := root.Count(); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
}

func TestFind(t *testing.T) {
	root := Parse("a\n b\n  c")
	target := root.Children[0].Children[0]
	if root.Find(target.ID) != target {
		t.Error("Find did not locate nested node")
	}
	if root.Find("missing") != nil {
		t.Error("Find returned non-nil for unknown id")
	}
	if !strings.EqualFold(target.Text, "c") {
		t.Errorf("unexpected target %q", target.Text)
	}
}
