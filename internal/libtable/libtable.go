// Package libtable reads and writes KiCad library tables (sym-lib-table and
// fp-lib-table), which are bracket-tree documents listing named libraries
// and their locations.
package libtable

import (
	"fmt"

	"github.com/edalab/kicad-liberator/brtree"
	"github.com/edalab/kicad-liberator/internal/report"
)

// Kind is the root keyword of a library table document.
type Kind string

const (
	Symbols    Kind = "sym_lib_table"
	Footprints Kind = "fp_lib_table"
)

// Library is a single table entry.
type Library struct {
	Name string
	Type string
	URI  string
}

// Load parses a library table file. Entries whose type is neither Legacy
// nor KiCad are reported as a warning and skipped.
func Load(path string, rep *report.Reporter) ([]Library, error) {
	root, err := brtree.Load(path)
	if err != nil {
		return nil, err
	}
	if root.Keyword != string(Symbols) && root.Keyword != string(Footprints) {
		return nil, fmt.Errorf("libtable: %s: unexpected root keyword %q", path, root.Keyword)
	}

	var libs []Library
	for _, entry := range root.FindAll("lib") {
		lib, err := readEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("libtable: %s: %w", path, err)
		}
		if lib.Type != "Legacy" && lib.Type != "KiCad" {
			rep.Warnf("library type %q not supported", lib.Type)
			continue
		}
		libs = append(libs, lib)
	}
	return libs, nil
}

func readEntry(entry *brtree.Node) (Library, error) {
	var lib Library
	fields := []struct {
		keyword string
		dst     *string
	}{
		{"name", &lib.Name},
		{"type", &lib.Type},
		{"uri", &lib.URI},
	}
	for _, f := range fields {
		node := entry.Find(f.keyword)
		if node == nil || len(node.Attributes()) == 0 {
			return lib, fmt.Errorf("lib entry missing %q", f.keyword)
		}
		*f.dst = node.Attributes()[0]
	}
	return lib, nil
}

// Table builds a library table tree ready for brtree.Save.
func Table(kind Kind, libs []Library) *brtree.Node {
	root := brtree.NewNode(string(kind))
	for _, lib := range libs {
		entry := brtree.NewNode("lib")
		entry.Add(brtree.NewNode("name", lib.Name))
		entry.Add(brtree.NewNode("type", lib.Type))
		entry.Add(brtree.NewNode("uri", lib.URI))
		entry.Add(brtree.NewNode("options", ""))
		entry.Add(brtree.NewNode("descr", ""))
		root.Add(entry)
	}
	return root
}
