package main

import (
	"os"

	"github.com/edalab/kicad-liberator/cmd/kicad-liberate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
