// Package board works on kicad_pcb documents and the footprint (.kicad_mod)
// files they reference, through the brtree API. It knows three keywords:
// module, model and at; everything else passes through untouched.
package board

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/edalab/kicad-liberator/brtree"
	"github.com/edalab/kicad-liberator/internal/kicad"
	"github.com/edalab/kicad-liberator/internal/libtable"
	"github.com/edalab/kicad-liberator/internal/report"
)

// Gather returns the footprint definitions embedded in a board tree and the
// set of 3D model paths they reference.
func Gather(root *brtree.Node) (map[kicad.Footprint]*brtree.Node, map[string]bool, error) {
	if root.Keyword != "kicad_pcb" {
		return nil, nil, fmt.Errorf("board: unexpected root keyword %q", root.Keyword)
	}

	footprints := map[kicad.Footprint]*brtree.Node{}
	models := map[string]bool{}

	for _, node := range root.FindAll("module") {
		attrs := node.Attributes()
		if len(attrs) == 0 {
			continue
		}
		lib, name := kicad.SplitRef(attrs[0])
		footprints[kicad.Footprint{Name: name, Lib: lib}] = node

		for _, model := range node.FindAll("model") {
			if ma := model.Attributes(); len(ma) > 0 {
				models[ma[0]] = true
			}
		}
	}
	return footprints, models, nil
}

// LibraryModels loads every used footprint from its library and collects
// the 3D models referenced there. Footprints whose library or file is
// missing are skipped; the liberator falls back to board-embedded
// definitions for those.
func LibraryModels(footprints map[kicad.Footprint]bool, libs []libtable.Library, rep *report.Reporter) map[string]bool {
	byName := libsByName(libs)
	models := map[string]bool{}

	for fp := range footprints {
		dir, ok := byName[fp.Lib]
		if !ok {
			continue
		}
		path := filepath.Join(dir, fp.Name+".kicad_mod")
		root, err := brtree.Load(path)
		if err != nil {
			continue
		}
		if root.Keyword != "module" {
			rep.Warnf("%s: unexpected root keyword %q", path, root.Keyword)
			continue
		}
		for _, model := range root.FindAll("model") {
			if ma := model.Attributes(); len(ma) > 0 {
				models[ma[0]] = true
			}
		}
	}
	return models
}

// Collect loads the used footprint definitions from their libraries. A
// footprint that cannot be found maps to nil so the caller can substitute a
// board-embedded copy.
func Collect(footprints map[kicad.Footprint]bool, libs []libtable.Library, rep *report.Reporter) map[kicad.Footprint]*brtree.Node {
	byName := libsByName(libs)
	defs := map[kicad.Footprint]*brtree.Node{}

	for fp := range footprints {
		defs[fp] = nil

		dir, ok := byName[fp.Lib]
		if !ok {
			rep.Errorf("library %q for footprint %q not found", fp.Lib, fp.Name)
			continue
		}
		path := filepath.Join(dir, fp.Name+".kicad_mod")
		root, err := brtree.Load(path)
		if err != nil {
			rep.Errorf("footprint %q not found in %q", fp.Name, fp.Lib)
			continue
		}
		if root.Keyword != "module" {
			rep.Errorf("%s: unexpected root keyword %q", path, root.Keyword)
			continue
		}
		defs[fp] = root
	}
	return defs
}

// Normalize makes a footprint pulled out of a board generic enough to live
// in a library: the board placement is stripped, element rotations are
// cancelled against the footprint's own, and the reference/value texts are
// reset.
func Normalize(fp kicad.Footprint, root *brtree.Node) {
	rotation := 0.0
	if at := root.Find("at"); at != nil {
		rotation = atRotation(at)
		_ = root.Remove(at) // found right above
	}

	for _, node := range root.Children() {
		cancelRotation(node, rotation)
	}

	for _, text := range root.FindAll("fp_text") {
		attrs := text.Attributes()
		if len(attrs) < 2 {
			continue
		}
		switch attrs[0] {
		case "reference":
			_ = text.Replace(brtree.Attr(attrs[1]), brtree.Attr("REF**"))
		case "value":
			_ = text.Replace(brtree.Attr(attrs[1]), brtree.Attr(fp.Name))
		}
	}
}

// cancelRotation subtracts the footprint rotation from every nested "at"
// element. The "at" and "model" subtrees keep their own coordinates: model
// placement is already relative to the footprint.
func cancelRotation(node *brtree.Node, rotation float64) {
	if node.Keyword == "at" || node.Keyword == "model" {
		return
	}

	if at := node.Find("at"); at != nil {
		coords := at.Attributes()
		if len(coords) >= 2 {
			rot := atRotation(at) - rotation
			newAt := brtree.NewNode("at", coords[0], coords[1], strconv.FormatFloat(rot, 'f', 3, 64))
			_ = node.Replace(at, newAt) // found right above
		}
	}

	for _, child := range node.Children() {
		cancelRotation(child, rotation)
	}
}

func atRotation(at *brtree.Node) float64 {
	coords := at.Attributes()
	if len(coords) < 3 {
		return 0
	}
	rot, err := strconv.ParseFloat(coords[2], 64)
	if err != nil {
		return 0
	}
	return rot
}

// WriteLibrary writes footprint definitions into a .pretty directory,
// renaming them and remapping their 3D model references on the way.
func WriteLibrary(defs map[kicad.Footprint]*brtree.Node, fpMap map[kicad.Footprint]kicad.Footprint, modelMap map[string]string, dir string, rep *report.Reporter) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	written := map[string]bool{}
	for _, fp := range sortedFootprints(defs) {
		root := defs[fp]
		if root == nil {
			continue
		}

		newName := fpMap[fp].Name
		dst := filepath.Join(dir, newName+".kicad_mod")
		if written[dst] {
			rep.Errorf("duplicate footprint %q", newName)
			continue
		}

		// The first attribute is the footprint name, possibly still
		// carrying the old library prefix.
		if attrs := root.Attributes(); len(attrs) > 0 {
			_ = root.Replace(brtree.Attr(attrs[0]), brtree.Attr(newName))
		}

		for _, model := range root.FindAll("model") {
			ma := model.Attributes()
			if len(ma) == 0 {
				continue
			}
			if mapped, ok := modelMap[ma[0]]; ok {
				_ = model.Replace(brtree.Attr(ma[0]), brtree.Attr(mapped))
			}
		}

		if err := brtree.Save(dst, root); err != nil {
			return err
		}
		written[dst] = true
	}
	return nil
}

// RewriteBoard remaps footprint and model references in a board file. This
// is a textual pass over the raw file rather than a tree rewrite, so the
// rest of the board stays byte for byte intact.
func RewriteBoard(src, dst string, fpMap map[kicad.Footprint]kicad.Footprint, modelMap map[string]string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	text := string(data)

	for _, from := range sortedFootprintKeys(fpMap) {
		to := fpMap[from]
		text = strings.ReplaceAll(text,
			kicad.Ref(from.Lib, from.Name),
			kicad.Ref(to.Lib, to.Name))
	}
	for _, from := range sortedModelKeys(modelMap) {
		text = strings.ReplaceAll(text, from, modelMap[from])
	}

	if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

func libsByName(libs []libtable.Library) map[string]string {
	byName := make(map[string]string, len(libs))
	for _, lib := range libs {
		byName[lib.Name] = lib.URI
	}
	return byName
}

func sortedFootprints(defs map[kicad.Footprint]*brtree.Node) []kicad.Footprint {
	fps := make([]kicad.Footprint, 0, len(defs))
	for fp := range defs {
		fps = append(fps, fp)
	}
	sortFootprints(fps)
	return fps
}

func sortedFootprintKeys(m map[kicad.Footprint]kicad.Footprint) []kicad.Footprint {
	fps := make([]kicad.Footprint, 0, len(m))
	for fp := range m {
		fps = append(fps, fp)
	}
	sortFootprints(fps)
	return fps
}

func sortFootprints(fps []kicad.Footprint) {
	sort.Slice(fps, func(i, j int) bool {
		if fps[i].Lib != fps[j].Lib {
			return fps[i].Lib < fps[j].Lib
		}
		return fps[i].Name < fps[j].Name
	})
}

func sortedModelKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
