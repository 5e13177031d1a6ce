package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/internal/index"
)

var exportCmd = &cobra.Command{
	Use:   "export <output.db>",
	Short: "Export every definition file into a SQLite database",
	Long: `Write one table per definition file plus a tile_variants table holding
every node of every tile's variant tree. Tables of an earlier export in the
same database are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadSet(cmd)
		if err != nil {
			return err
		}
		start := time.Now()
		fmt.Fprintf(cmd.OutOrStdout(), "Exporting %s to %s...\n", cfg.DataDir, args[0])
		if err := index.Export(set, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Done in %v.\n", time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
