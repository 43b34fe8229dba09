// Package project locates the files making up a KiCad project directory.
package project

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Files lists a project's file names, all relative to Dir.
type Files struct {
	Dir        string
	Pro        string
	Schematics []string
	Boards     []string
}

// Find scans dir for KiCad project files. Exactly one .pro file must be
// present; schematics and boards are optional.
func Find(dir string) (*Files, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	f := &Files{Dir: dir}
	var pros []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(strings.ToLower(name), ".pro"):
			pros = append(pros, name)
		case strings.HasSuffix(strings.ToLower(name), ".sch"):
			f.Schematics = append(f.Schematics, name)
		case strings.HasSuffix(strings.ToLower(name), ".kicad_pcb"):
			f.Boards = append(f.Boards, name)
		}
	}

	if len(pros) == 0 {
		return nil, errors.New("project: no KiCad project file found")
	}
	if len(pros) > 1 {
		return nil, fmt.Errorf("project: multiple KiCad project files found: %s", strings.Join(pros, ", "))
	}
	f.Pro = pros[0]

	sort.Strings(f.Schematics)
	sort.Strings(f.Boards)
	return f, nil
}

// Name returns the project name, the .pro file name without its extension.
func (f *Files) Name() string {
	if i := strings.LastIndexByte(f.Pro, '.'); i >= 0 {
		return f.Pro[:i]
	}
	return f.Pro
}
