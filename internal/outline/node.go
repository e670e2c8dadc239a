package outline

// Node is one entry in a parsed outline tree. Nodes are built entirely
// during parsing and never mutated afterward; mutable recall state lives in
// a separate overlay keyed by ID.
type Node struct {
	// ID uniquely identifies the node within its tree. It is assigned at
	// parse time and stays stable for the node's lifetime.
	ID string `json:"id"`

	// Text is the trimmed label with leading list and heading markers
	// stripped.
	Text string `json:"text"`

	// Children are the node's direct children in source order.
	Children []*Node `json:"children,omitempty"`

	// Leaf is true iff the node ended up with no children.
	Leaf bool `json:"isLeaf"`

	// Level is the depth from the root; the root is level 0 and every
	// node's level equals its number of ancestors.
	Level int `json:"level"`
}

// Walk visits n and every descendant in depth-first source order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Find returns the node with the given ID in n's subtree, or nil.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes in n's subtree, including n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) { total++ })
	return total
}
