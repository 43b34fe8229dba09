package symlib_test

import (
	"strings"
	"testing"

	"github.com/edalab/kicad-liberator/internal/symlib"
	"github.com/stretchr/testify/require"
)

const sampleLib = `EESchema-LIBRARY Version 2.4
#encoding utf-8
#
# R
#
DEF R R 0 0 N Y 1 F N
F0 "R" 80 0 50 V V C CNN
DRAW
S -40 -100 40 100 0 1 10 N
ENDDRAW
ENDDEF
#
# C
#
DEF C C 0 10 N Y 1 F N
ALIAS C_Small
F0 "C" 25 100 50 H V L CNN
ENDDEF
#
#End Library
`

func libLines() []string {
	return strings.Split(sampleLib, "\n")
}

func TestGrab(t *testing.T) {
	def := symlib.Grab(libLines(), "R")
	require.NotNil(t, def)
	require.Equal(t, []string{"#", "# R", "#"}, def[:3])
	require.Equal(t, "DEF R R 0 0 N Y 1 F N", def[3])
	require.Equal(t, "ENDDEF", def[len(def)-1])
}

func TestGrabAlias(t *testing.T) {
	// A symbol reachable only through an ALIAS line still resolves to the
	// whole definition.
	def := symlib.Grab(libLines(), "C_Small")
	require.NotNil(t, def)
	require.Contains(t, def, "DEF C C 0 10 N Y 1 F N")
	require.Contains(t, def, "ALIAS C_Small")
}

func TestGrabMissing(t *testing.T) {
	require.Nil(t, symlib.Grab(libLines(), "L"))
}

func TestRename(t *testing.T) {
	def := symlib.Grab(libLines(), "R")
	renamed := symlib.Rename(def, "R", "R_01")

	require.Equal(t, "# R_01", renamed[1])
	require.Equal(t, "DEF R_01 R 0 0 N Y 1 F N", renamed[3])
	// Only the name field changes; drawing lines pass through.
	require.Contains(t, renamed, "S -40 -100 40 100 0 1 10 N")
}

func TestAssemble(t *testing.T) {
	r := symlib.Grab(libLines(), "R")
	c := symlib.Grab(libLines(), "C")

	out := symlib.Assemble([][]string{r, c})
	lines := strings.Split(out, "\n")

	require.Equal(t, "EESchema-LIBRARY Version 2.4", lines[0])
	require.Equal(t, "#encoding utf-8", lines[1])
	require.Equal(t, "#End Library", lines[len(lines)-1])
	require.Contains(t, lines, "DEF R R 0 0 N Y 1 F N")
	require.Contains(t, lines, "DEF C C 0 10 N Y 1 F N")
}
