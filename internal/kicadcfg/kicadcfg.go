// Package kicadcfg reads the parts of KiCad's global configuration the
// liberator needs: the environment variables from the kicad_common file.
package kicadcfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// EnvVars maps KiCad environment variable names to their values.
type EnvVars map[string]string

// LoadEnvVars reads the EnvironmentVariables section of a kicad_common
// file. The file is INI-shaped but starts without a section header, so a
// dummy one is prepended before parsing.
func LoadEnvVars(path string) (EnvVars, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kicadcfg: %w", err)
	}

	src := append([]byte("[General]\n"), data...)
	cfg, err := ini.Load(src)
	if err != nil {
		return nil, fmt.Errorf("kicadcfg: parsing %s: %w", path, err)
	}

	vars := EnvVars{}
	for _, key := range cfg.Section("EnvironmentVariables").Keys() {
		vars[key.Name()] = key.Value()
	}
	return vars, nil
}

// Expand substitutes ${VAR} references in s with the variable values.
// Unknown variables are left in place, matching KiCad's own behavior.
func Expand(s string, vars EnvVars) string {
	if !strings.Contains(s, "${") {
		return s
	}
	for name, value := range vars {
		s = strings.ReplaceAll(s, "${"+name+"}", value)
	}
	return s
}
