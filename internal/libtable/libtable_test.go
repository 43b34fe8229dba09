package libtable_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/edalab/kicad-liberator/brtree"
	"github.com/edalab/kicad-liberator/internal/libtable"
	"github.com/edalab/kicad-liberator/internal/report"
	"github.com/stretchr/testify/require"
)

const symLibTable = `(sym_lib_table
  (lib (name device) (type Legacy) (uri "${KISYSMOD}/device.lib") (options "") (descr ""))
  (lib (name fancy) (type Github) (uri "https://example.com/fancy") (options "") (descr ""))
  (lib (name conn) (type KiCad) (uri "${KIPRJMOD}/conn.pretty") (options "") (descr ""))
)
`

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTable(t, "sym-lib-table", symLibTable)

	var out bytes.Buffer
	rep := report.New(&out)

	libs, err := libtable.Load(path, rep)
	require.NoError(t, err)

	// The unsupported Github entry is skipped with a warning.
	require.Equal(t, []libtable.Library{
		{Name: "device", Type: "Legacy", URI: "${KISYSMOD}/device.lib"},
		{Name: "conn", Type: "KiCad", URI: "${KIPRJMOD}/conn.pretty"},
	}, libs)
	require.Equal(t, 1, rep.Warnings())
	require.Contains(t, out.String(), `library type "Github" not supported`)
}

func TestLoadWrongRoot(t *testing.T) {
	path := writeTable(t, "table", `(kicad_pcb (module R))`)

	_, err := libtable.Load(path, report.New(&bytes.Buffer{}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected root keyword")
}

func TestLoadIncompleteEntry(t *testing.T) {
	path := writeTable(t, "sym-lib-table", `(sym_lib_table (lib (name x) (type Legacy)))`)

	_, err := libtable.Load(path, report.New(&bytes.Buffer{}))
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing "uri"`)
}

func TestTableRoundTrip(t *testing.T) {
	libs := []libtable.Library{
		{Name: "proj", Type: "KiCad", URI: "${KIPRJMOD}/footprints.pretty"},
	}
	root := libtable.Table(libtable.Footprints, libs)

	path := filepath.Join(t.TempDir(), "fp-lib-table")
	require.NoError(t, brtree.Save(path, root))

	loaded, err := libtable.Load(path, report.New(&bytes.Buffer{}))
	require.NoError(t, err)
	require.Equal(t, libs, loaded)
}
