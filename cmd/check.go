package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/internal/linter"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every definition file and report out-of-range values and duplicate ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadSet(cmd)
		if err != nil {
			return err
		}
		diags := linter.Lint(set)
		for _, d := range diags {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		if len(diags) > 0 {
			return fmt.Errorf("%d problem(s) found", len(diags))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
