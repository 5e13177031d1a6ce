package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory with an empty file for every missing collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		st, err := openStore(cfg.DataDir)
		if err != nil {
			return err
		}
		if err := st.Init(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
