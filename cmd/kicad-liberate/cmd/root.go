package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "kicad-liberate",
	Short: "Make a KiCad project independent of locally installed libraries",
	Long: `kicad-liberate copies a KiCad project together with every schematic
symbol, PCB footprint and 3D model it uses. The copy references only its own
project-local libraries, so it opens cleanly on any system.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
