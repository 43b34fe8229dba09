package brtree_test

import (
	"testing"

	"github.com/edalab/kicad-liberator/brtree"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	root, err := brtree.Parse([]byte(`(lib (name "Foo") (type Legacy))`))
	require.NoError(t, err)

	require.Equal(t, "lib", root.Keyword)
	require.Nil(t, root.Parent)
	require.Len(t, root.Children(), 2)

	name := root.Find("name")
	require.NotNil(t, name)
	require.Equal(t, []string{"Foo"}, name.Attributes())
	require.Same(t, root, name.Parent)

	typ := root.Find("type")
	require.NotNil(t, typ)
	require.Equal(t, "Legacy", typ.Attributes()[0])
}

func TestParseOrderPreserved(t *testing.T) {
	// Attributes and sub-nodes keep their relative order in the mixed
	// child sequence.
	root, err := brtree.Parse([]byte(`(a x (b) y (c) z)`))
	require.NoError(t, err)

	require.Equal(t, []string{"x", "y", "z"}, root.Attributes())
	children := root.Children()
	require.Len(t, children, 2)
	require.Equal(t, "b", children[0].Keyword)
	require.Equal(t, "c", children[1].Keyword)

	// The round trip keeps the interleaving too.
	again, err := brtree.Parse([]byte(brtree.Dump(root)))
	require.NoError(t, err)
	require.True(t, root.Equal(again))
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing closing bracket", "(a (b)"},
		{"extra closing bracket", "(a))"},
		{"closing bracket only", ")"},
		{"second root", "(a) (b)"},
		{"attribute outside any node", `(a) stray`},
		{"bare word", "word"},
		{"empty document", ""},
		{"whitespace only", " \t\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root, err := brtree.Parse([]byte(tc.input))
			require.Nil(t, root)
			require.ErrorIs(t, err, brtree.ErrMalformed)

			var merr *brtree.MalformedError
			require.ErrorAs(t, err, &merr)
			require.NotEmpty(t, merr.Msg)
		})
	}
}

func TestParseDeeplyNested(t *testing.T) {
	const depth = 200
	var in []byte
	for i := 0; i < depth; i++ {
		in = append(in, []byte("(n ")...)
	}
	for i := 0; i < depth; i++ {
		in = append(in, ')')
	}

	root, err := brtree.Parse(in)
	require.NoError(t, err)

	n := root
	for i := 1; i < depth; i++ {
		n = n.Find("n")
		require.NotNil(t, n)
	}
	require.Empty(t, n.Children())
}
