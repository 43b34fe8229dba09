package brtree

import "fmt"

// parser builds a node tree out of a token stream. It keeps the node being
// filled in cur and an explicit stack of the enclosing ones.
type parser struct {
	toks  []token
	stack []*Node
	cur   *Node
	root  *Node
}

func (p *parser) parse() (*Node, error) {
	for _, tok := range p.toks {
		switch tok.Type {
		case tokenOpen:
			// The keyword that follows opens the node.

		case tokenKeyword:
			p.stack = append(p.stack, p.cur)
			node := NewNode(tok.Literal)
			if p.cur != nil {
				p.cur.Add(node)
			} else {
				if p.root != nil {
					return nil, &MalformedError{Msg: fmt.Sprintf("second root node %q", tok.Literal)}
				}
				p.root = node
			}
			p.cur = node

		case tokenWord:
			if p.cur == nil {
				return nil, &MalformedError{Msg: fmt.Sprintf("attribute %q outside of any node", tok.Literal)}
			}
			p.cur.Add(Attr(tok.Literal))

		case tokenClose:
			if len(p.stack) == 0 {
				return nil, &MalformedError{Msg: "unbalanced closing bracket"}
			}
			p.cur = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
		}
	}

	if len(p.stack) != 0 {
		return nil, &MalformedError{Msg: fmt.Sprintf("%d unclosed node(s) at end of input", len(p.stack))}
	}
	if p.root == nil {
		return nil, &MalformedError{Msg: "document has no root node"}
	}
	return p.root, nil
}
