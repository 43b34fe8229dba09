package brtree

// Child is a single entry in a node's ordered child sequence. Exactly two
// types implement it: *Node for nested nodes and Attr for literal string
// attributes. The sequence is mixed and its order is significant.
type Child interface {
	childNode()
}

// Attr is a literal string attribute held directly by a node.
type Attr string

func (Attr) childNode() {}

func (*Node) childNode() {}

// Node is a single element of a bracket tree. It is identified by its
// keyword and owns an ordered sequence of children. Parent points at the
// enclosing node and is nil for the document root; it is a navigation aid
// only, ownership always runs downwards.
type Node struct {
	Parent  *Node
	Keyword string

	child []Child
}

// NewNode returns a node with the given keyword and the given attributes as
// its initial children. It has no parent until added to one.
func NewNode(keyword string, attrs ...string) *Node {
	n := &Node{Keyword: keyword}
	for _, a := range attrs {
		n.child = append(n.child, Attr(a))
	}
	return n
}

// Add appends a child to the mixed sequence. Adding a node re-parents it.
func (n *Node) Add(c Child) {
	if sub, ok := c.(*Node); ok {
		sub.Parent = n
	}
	n.child = append(n.child, c)
}

// Remove removes the first occurrence of c. Node children match by
// identity, attribute children by value. Returns ErrNotFound when absent.
func (n *Node) Remove(c Child) error {
	i := n.index(c)
	if i < 0 {
		return ErrNotFound
	}
	n.child = append(n.child[:i], n.child[i+1:]...)
	return nil
}

// Replace substitutes the first occurrence of old with c, preserving its
// position. Returns ErrNotFound when old is absent.
func (n *Node) Replace(old, c Child) error {
	i := n.index(old)
	if i < 0 {
		return ErrNotFound
	}
	if sub, ok := c.(*Node); ok {
		sub.Parent = n
	}
	n.child[i] = c
	return nil
}

// Children returns the node children in order, skipping attributes.
func (n *Node) Children() []*Node {
	var nodes []*Node
	for _, c := range n.child {
		if sub, ok := c.(*Node); ok {
			nodes = append(nodes, sub)
		}
	}
	return nodes
}

// Attributes returns the attribute children in order, skipping nodes.
func (n *Node) Attributes() []string {
	var attrs []string
	for _, c := range n.child {
		if a, ok := c.(Attr); ok {
			attrs = append(attrs, string(a))
		}
	}
	return attrs
}

// FindAll returns all direct child nodes with the given keyword, in
// encountered order.
func (n *Node) FindAll(keyword string) []*Node {
	var nodes []*Node
	for _, sub := range n.Children() {
		if sub.Keyword == keyword {
			nodes = append(nodes, sub)
		}
	}
	return nodes
}

// Find returns the first direct child node with the given keyword, or nil.
func (n *Node) Find(keyword string) *Node {
	for _, c := range n.child {
		if sub, ok := c.(*Node); ok && sub.Keyword == keyword {
			return sub
		}
	}
	return nil
}

// Has reports whether attr is present among the node's direct attributes.
func (n *Node) Has(attr string) bool {
	return n.index(Attr(attr)) >= 0
}

// Equal reports structural equality: same keyword and the same ordered
// child sequence, recursively. Parent links play no part.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Keyword != o.Keyword || len(n.child) != len(o.child) {
		return false
	}
	for i, c := range n.child {
		switch c := c.(type) {
		case Attr:
			a, ok := o.child[i].(Attr)
			if !ok || c != a {
				return false
			}
		case *Node:
			sub, ok := o.child[i].(*Node)
			if !ok || !c.Equal(sub) {
				return false
			}
		}
	}
	return true
}

func (n *Node) index(c Child) int {
	for i, have := range n.child {
		switch c := c.(type) {
		case Attr:
			if a, ok := have.(Attr); ok && a == c {
				return i
			}
		case *Node:
			if sub, ok := have.(*Node); ok && sub == c {
				return i
			}
		}
	}
	return -1
}
