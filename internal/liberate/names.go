package liberate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/edalab/kicad-liberator/internal/kicad"
)

// uniqueNames hands out collision-free names: the second taker of a name
// gets a _01 suffix, the third _02, and so on.
type uniqueNames map[string]bool

func (u uniqueNames) take(name string) string {
	candidate := name
	for i := 1; u[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%02d", name, i)
	}
	u[candidate] = true
	return candidate
}

// takeFile is take with the suffix inserted before the file extension.
func (u uniqueNames) takeFile(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; u[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%02d%s", stem, i, ext)
	}
	u[candidate] = true
	return candidate
}

// buildSymbolMap assigns every used symbol a collision-free name in the
// project-local symbol library.
func buildSymbolMap(used map[kicad.Symbol]bool, libName string) map[kicad.Symbol]kicad.Symbol {
	symbols := make([]kicad.Symbol, 0, len(used))
	for sym := range used {
		symbols = append(symbols, sym)
	}
	sortSymbols(symbols)

	names := uniqueNames{}
	m := make(map[kicad.Symbol]kicad.Symbol, len(symbols))
	for _, sym := range symbols {
		m[sym] = kicad.Symbol{Name: names.take(sym.Name), Lib: libName}
	}
	return m
}

// buildFootprintMap does the same for footprints.
func buildFootprintMap(used map[kicad.Footprint]bool, libName string) map[kicad.Footprint]kicad.Footprint {
	footprints := make([]kicad.Footprint, 0, len(used))
	for fp := range used {
		footprints = append(footprints, fp)
	}
	sortFootprints(footprints)

	names := uniqueNames{}
	m := make(map[kicad.Footprint]kicad.Footprint, len(footprints))
	for _, fp := range footprints {
		m[fp] = kicad.Footprint{Name: names.take(fp.Name), Lib: libName}
	}
	return m
}

// buildModelMap maps every referenced model path into the project-local
// model directory, deduplicating base names.
func buildModelMap(models map[string]bool, modelLib string) map[string]string {
	paths := make([]string, 0, len(models))
	for m := range models {
		paths = append(paths, m)
	}
	sort.Strings(paths)

	names := uniqueNames{}
	m := make(map[string]string, len(paths))
	for _, path := range paths {
		m[path] = modelLib + "/" + names.takeFile(filepath.Base(path))
	}
	return m
}

func sortSymbols(symbols []kicad.Symbol) {
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Lib != symbols[j].Lib {
			return symbols[i].Lib < symbols[j].Lib
		}
		return symbols[i].Name < symbols[j].Name
	})
}

func sortFootprints(footprints []kicad.Footprint) {
	sort.Slice(footprints, func(i, j int) bool {
		if footprints[i].Lib != footprints[j].Lib {
			return footprints[i].Lib < footprints[j].Lib
		}
		return footprints[i].Name < footprints[j].Name
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinSymbolNames(symbols []kicad.Symbol) string {
	names := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		names = append(names, sym.Name)
	}
	return strings.Join(names, ",")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("liberate: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("liberate: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("liberate: copying %s: %w", src, err)
	}
	return out.Close()
}
