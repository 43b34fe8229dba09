// Package kicad holds the small identifiers shared by the liberator's
// scanners and writers.
package kicad

import "strings"

// Symbol identifies a schematic symbol by name and source library. Lib is
// empty when the reference carried no library prefix.
type Symbol struct {
	Name string
	Lib  string
}

// Footprint identifies a PCB footprint by name and source library.
type Footprint struct {
	Name string
	Lib  string
}

// SplitRef splits a "lib:name" reference. References without a colon have
// no library part.
func SplitRef(ref string) (lib, name string) {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

// Ref joins a library and a name back into a "lib:name" reference.
func Ref(lib, name string) string {
	return lib + ":" + name
}
