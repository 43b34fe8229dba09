package kicadcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edalab/kicad-liberator/internal/kicadcfg"
	"github.com/stretchr/testify/require"
)

const kicadCommon = `canvas_type=2
[EnvironmentVariables]
KISYS3DMOD=/usr/share/kicad/modules/packages3d
KISYSMOD=/usr/share/kicad/modules
[pcbnew]
LastNetListRead=
`

func TestLoadEnvVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kicad_common")
	require.NoError(t, os.WriteFile(path, []byte(kicadCommon), 0o644))

	vars, err := kicadcfg.LoadEnvVars(path)
	require.NoError(t, err)

	// Variable names keep their case; other sections are ignored.
	require.Equal(t, kicadcfg.EnvVars{
		"KISYS3DMOD": "/usr/share/kicad/modules/packages3d",
		"KISYSMOD":   "/usr/share/kicad/modules",
	}, vars)
}

func TestLoadEnvVarsMissingFile(t *testing.T) {
	_, err := kicadcfg.LoadEnvVars(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpand(t *testing.T) {
	vars := kicadcfg.EnvVars{
		"KIPRJMOD": "/home/me/project",
		"KISYSMOD": "/usr/share/kicad/modules",
	}

	tests := []struct {
		in  string
		out string
	}{
		{"${KIPRJMOD}/footprints.pretty", "/home/me/project/footprints.pretty"},
		{"${KISYSMOD}/conn.pretty", "/usr/share/kicad/modules/conn.pretty"},
		{"no variables here", "no variables here"},
		{"${UNKNOWN}/x", "${UNKNOWN}/x"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.out, kicadcfg.Expand(tc.in, vars), tc.in)
	}
}
