package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edalab/kicad-liberator/brtree"
)

var writeInPlace bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a bracket-tree file canonically",
	Long: `fmt parses a bracket-tree file (kicad_pcb, kicad_mod, sym-lib-table,
fp-lib-table, ...) and prints it back with normalized indentation and
quoting. The structure is guaranteed to be unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := brtree.Load(args[0])
		if err != nil {
			return err
		}
		if writeInPlace {
			return brtree.Save(args[0], root)
		}
		fmt.Fprintln(cmd.OutOrStdout(), brtree.Dump(root))
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "rewrite the file instead of printing to stdout")
	rootCmd.AddCommand(fmtCmd)
}
