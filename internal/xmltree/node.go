package xmltree

// Node is a generic XML element: its local name, attributes, element children in
// document order, and the trimmed character data found directly inside it.
type Node struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
	Children   []*Node           `json:"children"`
	Value      string            `json:"value,omitempty"`
}

// Attr returns the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attributes == nil {
		return "", false
	}
	v, ok := n.Attributes[name]
	return v, ok
}

// Find returns the first direct child with the given name, or nil.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given name.
func (n *Node) FindAll(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
