/*
Package brtree reads and writes the nested, parenthesized, keyword-tagged
text format ("bracket tree") used by KiCad project files such as .kicad_pcb,
.kicad_mod, fp-lib-table and sym-lib-table.

A document is a single root node. Every node starts with an opening bracket
followed by a keyword and carries an ordered, mixed sequence of children:
nested nodes and literal string attributes.

	(lib (name "Foo") (type Legacy))

Parse builds the tree, Dump renders it back:

	root, err := brtree.Parse(data)
	if err != nil {
		// handle error
	}
	typ := root.Find("lib").Find("type").Attributes()[0] // "Legacy"
	out := brtree.Dump(root)

The package treats every keyword as an opaque string. It guarantees a
structural round-trip (parse → dump → parse yields an equal tree), not a
byte-identical one: Dump normalizes indentation and quotes a value only when
it has to.

Quoted strings have no escape syntax. A literal '"' cannot appear inside a
quoted value, and an unterminated quote is not rejected; the text scanned so
far simply becomes the final word.
*/
package brtree
