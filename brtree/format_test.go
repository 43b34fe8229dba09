package brtree_test

import (
	"testing"

	"github.com/edalab/kicad-liberator/brtree"
	"github.com/stretchr/testify/require"
)

func TestDumpCompactLeaf(t *testing.T) {
	// A node with only attributes renders on a single line.
	out := brtree.Dump(brtree.NewNode("name", "Foo"))
	require.Equal(t, "\n(name Foo)", out)
}

func TestDumpNested(t *testing.T) {
	root := brtree.NewNode("lib")
	root.Add(brtree.NewNode("name", "Foo"))
	root.Add(brtree.NewNode("type", "Legacy"))

	expected := "\n(lib\n  (name Foo)\n  (type Legacy)\n)"
	require.Equal(t, expected, brtree.Dump(root))
}

func TestDumpAttributeAfterNode(t *testing.T) {
	// A trailing attribute pulls the closing bracket back onto its line.
	root, err := brtree.Parse([]byte("(a (b) c)"))
	require.NoError(t, err)
	require.Equal(t, "\n(a\n  (b) c)", brtree.Dump(root))
}

func TestDumpQuoting(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		expected string
	}{
		{"bare value stays bare", "Legacy", "\n(type Legacy)"},
		{"space forces quotes", "two words", "\n(type \"two words\")"},
		{"brackets force quotes", "(x)", "\n(type \"(x)\")"},
		{"empty string forces quotes", "", "\n(type \"\")"},
		{"tab forces quotes", "a\tb", "\n(type \"a\tb\")"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := brtree.Dump(brtree.NewNode("type", tc.attr))
			require.Equal(t, tc.expected, out)

			// Re-parsing must recover the exact value.
			root, err := brtree.Parse([]byte(out))
			require.NoError(t, err)
			require.Equal(t, []string{tc.attr}, root.Attributes())
		})
	}
}

func TestDumpQuotedKeyword(t *testing.T) {
	out := brtree.Dump(brtree.NewNode("key word"))
	require.Equal(t, "\n(\"key word\")", out)

	root, err := brtree.Parse([]byte(out))
	require.NoError(t, err)
	require.Equal(t, "key word", root.Keyword)
}

func TestDumpIndentation(t *testing.T) {
	input := `(kicad_pcb (module R1 (layer F.Cu) (model r.wrl (at (xyz 0 0 0)))))`
	root, err := brtree.Parse([]byte(input))
	require.NoError(t, err)

	expected := "\n(kicad_pcb\n" +
		"  (module R1\n" +
		"    (layer F.Cu)\n" +
		"    (model r.wrl\n" +
		"      (at\n" +
		"        (xyz 0 0 0)\n" +
		"      )\n" +
		"    )\n" +
		"  )\n" +
		")"
	require.Equal(t, expected, brtree.Dump(root))
}
