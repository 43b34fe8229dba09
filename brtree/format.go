package brtree

import "strings"

const indentStep = 2

// formatter renders a token sequence into indented text. A node that holds
// only attributes stays on one line; a node that contained at least one
// nested node closes on a line of its own, and that decision propagates to
// its enclosing node through the newline flag.
type formatter struct {
	sb      strings.Builder
	indent  int
	newline bool // a nested node just closed; put the next ')' on its own line
}

func dumpTree(root *Node) string {
	f := &formatter{}
	for _, tok := range appendTokens(nil, root) {
		f.writeToken(tok)
	}
	return f.sb.String()
}

// appendTokens mirrors the parser in reverse: a pre-order traversal
// re-emitting the token sequence the tree was built from.
func appendTokens(toks []token, n *Node) []token {
	toks = append(toks,
		token{Type: tokenOpen, Literal: "("},
		token{Type: tokenKeyword, Literal: n.Keyword})
	for _, c := range n.child {
		switch c := c.(type) {
		case Attr:
			toks = append(toks, token{Type: tokenWord, Literal: string(c)})
		case *Node:
			toks = appendTokens(toks, c)
		}
	}
	return append(toks, token{Type: tokenClose, Literal: ")"})
}

func (f *formatter) writeToken(tok token) {
	switch tok.Type {
	case tokenOpen:
		f.sb.WriteByte('\n')
		f.writeIndent()
		f.sb.WriteByte('(')
		f.newline = false

	case tokenKeyword:
		f.sb.WriteString(quoted(tok.Literal))
		f.indent += indentStep

	case tokenWord:
		f.sb.WriteByte(' ')
		f.sb.WriteString(quoted(tok.Literal))
		f.newline = false

	case tokenClose:
		f.indent -= indentStep
		if f.newline {
			f.sb.WriteByte('\n')
			f.writeIndent()
		}
		f.sb.WriteByte(')')
		f.newline = true
	}
}

func (f *formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.sb.WriteByte(' ')
	}
}

// quoted wraps a value in double quotes when rendering it bare would change
// how it tokenizes: brackets, whitespace, or an empty string.
func quoted(s string) string {
	if s == "" || strings.ContainsAny(s, "() \t\n\r\v\f\"") {
		return `"` + s + `"`
	}
	return s
}
