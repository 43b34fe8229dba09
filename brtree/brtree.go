package brtree

import (
	"fmt"
	"os"
)

// Parse tokenizes and parses a bracket-tree document and returns its root
// node. Any structural violation fails with an error matching ErrMalformed;
// no partial tree is ever returned.
func Parse(data []byte) (*Node, error) {
	p := &parser{toks: newLexer(data).Tokenize()}
	return p.parse()
}

// Dump renders a tree back into bracket-tree text. It always succeeds for a
// well-formed tree. The output is normalized: two-space indentation, leaf
// nodes on a single line, values quoted only when necessary.
func Dump(root *Node) string {
	return dumpTree(root)
}

// Load reads and parses a bracket-tree file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("brtree: %w", err)
	}
	return Parse(data)
}

// Save renders a tree and writes it to a file.
func Save(path string, root *Node) error {
	if err := os.WriteFile(path, []byte(Dump(root)), 0o644); err != nil {
		return fmt.Errorf("brtree: %w", err)
	}
	return nil
}
