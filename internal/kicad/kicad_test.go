package kicad_test

import (
	"testing"

	"github.com/edalab/kicad-liberator/internal/kicad"
	"github.com/stretchr/testify/require"
)

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref  string
		lib  string
		name string
	}{
		{"Device:R", "Device", "R"},
		{"R", "", "R"},
		{"conn:header:odd", "conn", "header:odd"},
		{":R", "", "R"},
	}

	for _, tc := range tests {
		lib, name := kicad.SplitRef(tc.ref)
		require.Equal(t, tc.lib, lib, tc.ref)
		require.Equal(t, tc.name, name, tc.ref)
	}
}

func TestRef(t *testing.T) {
	require.Equal(t, "Device:R", kicad.Ref("Device", "R"))
}
