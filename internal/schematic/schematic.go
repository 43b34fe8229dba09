// Package schematic scans and rewrites legacy EESchema .sch files. The
// format is line oriented; only the component sections between $Comp and
// $EndComp are of interest here.
package schematic

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/edalab/kicad-liberator/internal/kicad"
)

// Scan reads a schematic sheet and returns the sets of symbols and
// footprints it references. Symbols come from "L lib:name" fields,
// footprints from the quoted `F 2 "lib:name"` fields.
func Scan(path string) (map[kicad.Symbol]bool, map[kicad.Footprint]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("schematic: %w", err)
	}
	defer f.Close()

	symbols := map[kicad.Symbol]bool{}
	footprints := map[kicad.Footprint]bool{}

	inComp := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case !inComp && line == "$Comp":
			inComp = true
			continue
		case inComp && line == "$EndComp":
			inComp = false
			continue
		case !inComp:
			continue
		}

		// shlex strips the quoting around footprint references the same
		// way the schematic editor wrote it.
		fields, err := shlex.Split(line)
		if err != nil {
			continue // a field with unbalanced quoting, not ours to fix
		}

		if len(fields) >= 2 && fields[0] == "L" {
			lib, name := kicad.SplitRef(fields[1])
			symbols[kicad.Symbol{Name: name, Lib: lib}] = true
		}

		if len(fields) >= 3 && fields[0] == "F" && fields[1] == "2" && fields[2] != "" {
			lib, name := kicad.SplitRef(fields[2])
			footprints[kicad.Footprint{Name: name, Lib: lib}] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("schematic: %w", err)
	}
	return symbols, footprints, nil
}

// Rewrite copies a schematic file, remapping symbol and footprint library
// references. Lines outside the reference fields are left byte for byte as
// they were.
func Rewrite(src, dst string, symbols map[kicad.Symbol]kicad.Symbol, footprints map[kicad.Footprint]kicad.Footprint) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("schematic: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		fields := strings.Fields(line)

		if len(fields) >= 2 && fields[0] == "L" {
			for from, to := range symbols {
				tag := kicad.Ref(from.Lib, from.Name)
				if fields[1] == tag {
					lines[i] = strings.Replace(line, tag, kicad.Ref(to.Lib, to.Name), 1)
					break
				}
			}
		}

		if len(fields) >= 3 && fields[0] == "F" && fields[1] == "2" {
			for from, to := range footprints {
				tag := `"` + kicad.Ref(from.Lib, from.Name) + `"`
				if fields[2] == tag {
					lines[i] = strings.Replace(line, tag, `"`+kicad.Ref(to.Lib, to.Name)+`"`, 1)
					break
				}
			}
		}
	}

	if err := os.WriteFile(dst, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("schematic: %w", err)
	}
	return nil
}
