// Package symlib extracts and rewrites symbol definitions from legacy
// EESchema .lib files. Definitions run from a DEF line to an ENDDEF line; a
// symbol may also be reachable through an ALIAS line inside another
// definition.
package symlib

import "strings"

// Grab returns the definition of the named symbol from the library lines,
// prefixed with the conventional comment header. It returns nil when the
// symbol is not found, neither as a DEF nor as an ALIAS.
func Grab(libLines []string, name string) []string {
	var def []string
	inDef := false

	for _, line := range libLines {
		line = strings.TrimSpace(line)

		if !inDef && strings.HasPrefix(line, "DEF") {
			inDef = true
			def = def[:0]
		}
		if inDef {
			def = append(def, line)
		}
		if inDef && line == "ENDDEF" {
			inDef = false
			if defines(def, name) {
				header := []string{"#", "# " + name, "#"}
				return append(header, def...)
			}
		}
	}
	return nil
}

func defines(def []string, name string) bool {
	for _, line := range def {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if (fields[0] == "DEF" || fields[0] == "ALIAS") && fields[1] == name {
			return true
		}
	}
	return false
}

// Rename rewrites the header comment, DEF and ALIAS lines of a grabbed
// definition for a new symbol name.
func Rename(def []string, oldName, newName string) []string {
	out := make([]string, 0, len(def))
	for _, line := range def {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == oldName {
			switch fields[0] {
			case "#":
				line = "# " + newName
			case "DEF", "ALIAS":
				line = fields[0] + " " + newName + " " + strings.Join(fields[2:], " ")
			}
		}
		out = append(out, line)
	}
	return out
}

// Assemble builds the content of a legacy symbol library file out of
// grabbed definitions.
func Assemble(defs [][]string) string {
	lines := []string{
		"EESchema-LIBRARY Version 2.4",
		"#encoding utf-8",
	}
	for _, def := range defs {
		lines = append(lines, def...)
	}
	lines = append(lines, "#", "#End Library")
	return strings.Join(lines, "\n")
}
