// Package liberate makes a KiCad project independent of locally installed
// libraries: every symbol, footprint and 3D model the project uses is
// collected into project-local libraries and all references are remapped.
package liberate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edalab/kicad-liberator/brtree"
	"github.com/edalab/kicad-liberator/internal/board"
	"github.com/edalab/kicad-liberator/internal/kicad"
	"github.com/edalab/kicad-liberator/internal/kicadcfg"
	"github.com/edalab/kicad-liberator/internal/libtable"
	"github.com/edalab/kicad-liberator/internal/project"
	"github.com/edalab/kicad-liberator/internal/report"
	"github.com/edalab/kicad-liberator/internal/schematic"
	"github.com/edalab/kicad-liberator/internal/symlib"
)

// Options configure a liberation run.
type Options struct {
	// In is the KiCad project directory, Out the directory the liberated
	// copy is written to.
	In  string
	Out string

	// ConfigDir is the KiCad configuration directory holding kicad_common
	// and the global library tables. Empty selects the user's default
	// (~/.config/kicad on Linux).
	ConfigDir string

	Reporter *report.Reporter
}

// Run liberates a project.
func Run(opts Options) error {
	rep := opts.Reporter
	if rep == nil {
		rep = report.New(io.Discard)
	}

	cfgDir := opts.ConfigDir
	if cfgDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("liberate: %w", err)
		}
		cfgDir = filepath.Join(base, "kicad")
	}

	rep.Infof("Loading KiCad configuration...")

	envVars := kicadcfg.EnvVars{}
	if path := filepath.Join(cfgDir, "kicad_common"); fileExists(path) {
		var err error
		if envVars, err = kicadcfg.LoadEnvVars(path); err != nil {
			return err
		}
	}
	// KIPRJMOD always points at the project being processed.
	envVars["KIPRJMOD"] = opts.In

	symbolLibs, err := loadTables(rep, filepath.Join(cfgDir, "sym-lib-table"))
	if err != nil {
		return err
	}
	footprintLibs, err := loadTables(rep, filepath.Join(cfgDir, "fp-lib-table"))
	if err != nil {
		return err
	}

	proj, err := project.Find(opts.In)
	if err != nil {
		return err
	}
	name := proj.Name()

	rep.Infof("")
	rep.Infof("Project %q", name)
	rep.Infof(" %s", proj.Pro)
	rep.Infof("Schematics:")
	for _, f := range proj.Schematics {
		rep.Infof(" %s", f)
	}
	rep.Infof("Boards:")
	for _, f := range proj.Boards {
		rep.Infof(" %s", f)
	}
	rep.Infof("")

	rep.Infof("Loading library tables...")

	projSymbolLibs, err := loadTables(rep, filepath.Join(opts.In, "sym-lib-table"))
	if err != nil {
		return err
	}
	projFootprintLibs, err := loadTables(rep, filepath.Join(opts.In, "fp-lib-table"))
	if err != nil {
		return err
	}
	symbolLibs = append(symbolLibs, projSymbolLibs...)
	footprintLibs = append(footprintLibs, projFootprintLibs...)

	for i := range symbolLibs {
		symbolLibs[i].URI = kicadcfg.Expand(symbolLibs[i].URI, envVars)
	}
	for i := range footprintLibs {
		footprintLibs[i].URI = kicadcfg.Expand(footprintLibs[i].URI, envVars)
	}

	rep.Infof("Identifying used schematic symbols and footprints...")

	usedSymbols := map[kicad.Symbol]bool{}
	usedFootprints := map[kicad.Footprint]bool{}
	for _, sch := range proj.Schematics {
		symbols, footprints, err := schematic.Scan(filepath.Join(opts.In, sch))
		if err != nil {
			return err
		}
		for s := range symbols {
			usedSymbols[s] = true
		}
		for f := range footprints {
			usedFootprints[f] = true
		}
	}

	rep.Infof("Identifying used PCB footprints and 3D models...")

	pcbFootprints := map[kicad.Footprint]*brtree.Node{}
	models := map[string]bool{}
	for _, brd := range proj.Boards {
		root, err := brtree.Load(filepath.Join(opts.In, brd))
		if err != nil {
			return err
		}
		footprints, brdModels, err := board.Gather(root)
		if err != nil {
			return err
		}
		for fp, node := range footprints {
			pcbFootprints[fp] = node
		}
		for m := range brdModels {
			models[m] = true
		}
	}

	for m := range board.LibraryModels(usedFootprints, footprintLibs, rep) {
		models[m] = true
	}

	for fp, root := range pcbFootprints {
		board.Normalize(fp, root)
	}

	// Build the rename maps. Every collected symbol, footprint and model
	// moves into a project-local library under a collision-free name.
	symbolMap := buildSymbolMap(usedSymbols, name)

	allFootprints := map[kicad.Footprint]bool{}
	for fp := range usedFootprints {
		allFootprints[fp] = true
	}
	for fp := range pcbFootprints {
		allFootprints[fp] = true
	}
	footprintMap := buildFootprintMap(allFootprints, name)

	const modelLib = "${KIPRJMOD}/models"
	modelMap := buildModelMap(models, modelLib)

	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return fmt.Errorf("liberate: %w", err)
	}
	if err := copyFile(filepath.Join(opts.In, proj.Pro), filepath.Join(opts.Out, proj.Pro)); err != nil {
		return err
	}

	if err := writeSymbols(rep, opts, proj, symbolLibs, usedSymbols, symbolMap); err != nil {
		return err
	}
	if err := writeFootprints(rep, opts, proj, footprintLibs, usedFootprints, pcbFootprints, footprintMap, modelMap); err != nil {
		return err
	}
	if err := copyModels(rep, opts, envVars, modelMap); err != nil {
		return err
	}

	rep.Infof("Processing schematic files...")
	for _, sch := range proj.Schematics {
		rep.Infof(" %s", sch)
		err := schematic.Rewrite(
			filepath.Join(opts.In, sch),
			filepath.Join(opts.Out, sch),
			symbolMap, footprintMap)
		if err != nil {
			return err
		}
	}

	rep.Infof("Processing board files...")
	for _, brd := range proj.Boards {
		rep.Infof(" %s", brd)
		err := board.RewriteBoard(
			filepath.Join(opts.In, brd),
			filepath.Join(opts.Out, brd),
			footprintMap, modelMap)
		if err != nil {
			return err
		}
	}

	rep.Infof("Done.")
	return nil
}

// loadTables loads a library table when the file exists; a missing table is
// not an error, projects without one are common.
func loadTables(rep *report.Reporter, path string) ([]libtable.Library, error) {
	if !fileExists(path) {
		return nil, nil
	}
	return libtable.Load(path, rep)
}

// writeSymbols grabs every used symbol definition from its source library
// and assembles them, renamed, into a single project-local legacy library.
func writeSymbols(rep *report.Reporter, opts Options, proj *project.Files, libs []libtable.Library, used map[kicad.Symbol]bool, symbolMap map[kicad.Symbol]kicad.Symbol) error {
	rep.Infof("Collecting schematic symbols from libraries...")

	byLib := map[string][]kicad.Symbol{}
	for sym := range used {
		byLib[sym.Lib] = append(byLib[sym.Lib], sym)
	}
	libURIs := map[string]string{}
	for _, lib := range libs {
		libURIs[lib.Name] = lib.URI
	}

	var defs [][]string
	for _, libName := range sortedKeys(byLib) {
		symbols := byLib[libName]
		sortSymbols(symbols)

		uri, ok := libURIs[libName]
		if !ok || !fileExists(uri) {
			rep.Errorf("library %q for symbols %q not found", libName, joinSymbolNames(symbols))
			continue
		}
		data, err := os.ReadFile(uri)
		if err != nil {
			return fmt.Errorf("liberate: %w", err)
		}
		lines := strings.Split(string(data), "\n")

		for _, sym := range symbols {
			def := symlib.Grab(lines, sym.Name)
			if def == nil {
				rep.Errorf("symbol %q not found in %q", sym.Name, libName)
				continue
			}
			defs = append(defs, symlib.Rename(def, sym.Name, symbolMap[sym].Name))
		}
	}

	libFile := proj.Name() + ".lib"
	content := symlib.Assemble(defs)
	if err := os.WriteFile(filepath.Join(opts.Out, libFile), []byte(content), 0o644); err != nil {
		return fmt.Errorf("liberate: %w", err)
	}

	table := libtable.Table(libtable.Symbols, []libtable.Library{{
		Name: proj.Name(),
		Type: "Legacy",
		URI:  "${KIPRJMOD}/" + libFile,
	}})
	return brtree.Save(filepath.Join(opts.Out, "sym-lib-table"), table)
}

// writeFootprints collects footprint definitions (falling back to the
// board-embedded copies), writes the project-local .pretty library and its
// fp-lib-table.
func writeFootprints(rep *report.Reporter, opts Options, proj *project.Files, libs []libtable.Library, used map[kicad.Footprint]bool, pcbFootprints map[kicad.Footprint]*brtree.Node, footprintMap map[kicad.Footprint]kicad.Footprint, modelMap map[string]string) error {
	rep.Infof("Collecting PCB footprints from libraries...")

	defs := board.Collect(used, libs, rep)
	for fp, root := range defs {
		if root != nil {
			continue
		}
		pcbRoot, ok := pcbFootprints[fp]
		if !ok {
			rep.Errorf("footprint %q not found in PCB(s)", fp.Name)
			continue
		}
		rep.Infof(" Extracting %q from PCB", fp.Name)
		defs[fp] = pcbRoot
	}

	const prettyDir = "footprints.pretty"
	if err := board.WriteLibrary(defs, footprintMap, modelMap, filepath.Join(opts.Out, prettyDir), rep); err != nil {
		return err
	}

	table := libtable.Table(libtable.Footprints, []libtable.Library{{
		Name: proj.Name(),
		Type: "KiCad",
		URI:  "${KIPRJMOD}/" + prettyDir,
	}})
	return brtree.Save(filepath.Join(opts.Out, "fp-lib-table"), table)
}

// copyModels copies every referenced 3D model file into the project-local
// models directory, under the name the model map assigned.
func copyModels(rep *report.Reporter, opts Options, envVars kicadcfg.EnvVars, modelMap map[string]string) error {
	rep.Infof("Collecting 3D models from libraries...")

	dir := filepath.Join(opts.Out, "models")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("liberate: %w", err)
	}

	for _, model := range sortedKeys(modelMap) {
		src := kicadcfg.Expand(model, envVars)
		dst := filepath.Join(dir, filepath.Base(modelMap[model]))

		if !fileExists(src) {
			rep.Errorf("model %q not found", model)
			continue
		}
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}
