package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edalab/kicad-liberator/internal/liberate"
	"github.com/edalab/kicad-liberator/internal/report"
)

var (
	inPath    string
	outPath   string
	configDir string
)

var liberateCmd = &cobra.Command{
	Use:   "liberate",
	Short: "Copy a project with all of its libraries made local",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := report.New(cmd.OutOrStdout())
		err := liberate.Run(liberate.Options{
			In:        inPath,
			Out:       outPath,
			ConfigDir: configDir,
			Reporter:  rep,
		})
		if err != nil {
			return err
		}
		if n := rep.Errors(); n > 0 {
			return fmt.Errorf("finished with %d error(s)", n)
		}
		return nil
	},
}

func init() {
	liberateCmd.Flags().StringVarP(&inPath, "input", "i", "", "KiCad project path")
	liberateCmd.Flags().StringVarP(&outPath, "output", "o", "", "output path for the liberated project")
	liberateCmd.Flags().StringVar(&configDir, "config", "", "KiCad configuration directory (default ~/.config/kicad)")
	_ = liberateCmd.MarkFlagRequired("input")
	_ = liberateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(liberateCmd)
}
