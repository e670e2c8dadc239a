package outline

import (
	"strings"

	"github.com/google/uuid"
)

// EmptyLabel is the label of the sentinel root produced for input with no
// content lines.
const EmptyLabel = "(empty outline)"

// stackFrame is one open node on the ancestor chain during parsing.
type stackFrame struct {
	node   *Node
	indent int
}

// Parse converts outline-style text (indented plain text or markdown bullet
// lists) into a tree. The first content line becomes the root. Blank lines
// separate entries but carry no structure. A line's depth is decided by its
// leading whitespace width against the chain of currently open nodes: equal
// width closes the previous sibling's subtree, never nests under it.
//
// Parse never fails: whitespace-only input yields a single sentinel node,
// and a line dedented below the root is reattached directly under the root
// at level 1.
func Parse(text string) *Node {
	var (
		root  *Node
		stack []stackFrame
	)

	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		indent := indentWidth(raw)
		node := &Node{
			ID:   uuid.NewString(),
			Text: cleanLabel(raw),
			Leaf: true,
		}

		if root == nil {
			root = node
			stack = append(stack, stackFrame{node: node, indent: indent})
			continue
		}

		// Close every open node at or beyond this line's indentation.
		// A tie means "sibling of that node", so the tied node closes too.
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			// Dedented below the root's own indentation. Recover by
			// hanging the node directly off the root at level 1.
			node.Level = 1
			root.Children = append(root.Children, node)
			root.Leaf = false
			stack = append(stack, stackFrame{node: root, indent: indent - 1})
		} else {
			parent := stack[len(stack)-1].node
			node.Level = len(stack)
			parent.Children = append(parent.Children, node)
			parent.Leaf = false
		}
		stack = append(stack, stackFrame{node: node, indent: indent})
	}

	if root == nil {
		return &Node{ID: uuid.NewString(), Text: EmptyLabel, Leaf: true}
	}
	return root
}

// indentWidth counts the leading whitespace characters of a line. Tabs and
// spaces both count as one; mixing them is the author's problem.
func indentWidth(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}

// cleanLabel trims a line and strips one leading list marker: either a run
// of '#' heading markers or a single '-', '*' or '+' bullet.
func cleanLabel(line string) string {
	s := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(s, "#"):
		s = strings.TrimLeft(s, "#")
	case len(s) > 0 && (s[0] == '-' || s[0] == '*' || s[0] == '+'):
		s = s[1:]
	}
	return strings.TrimSpace(s)
}
