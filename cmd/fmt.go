package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/codec"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite every definition file in canonical form",
	Long: `Load the data directory and save it again. Keys the editor does not know
are dropped and default values are omitted. With --check nothing is written;
files that would change are listed and the command fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cfg.DataDir)
		if err != nil {
			return err
		}
		set, err := st.Load()
		if err != nil {
			return err
		}

		var changed []string
		for _, c := range api.Collections {
			want, err := codec.Encode(c, set, cfg.Indent)
			if err != nil {
				return err
			}
			have, err := os.ReadFile(filepath.Join(cfg.DataDir, c.File()))
			if err != nil {
				return fmt.Errorf("read %s: %w", c.File(), err)
			}
			if !bytes.Equal(want, have) {
				changed = append(changed, c.File())
			}
		}
		for _, name := range changed {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		if fmtCheck {
			if len(changed) > 0 {
				return fmt.Errorf("%d file(s) not in canonical form", len(changed))
			}
			return nil
		}
		if len(changed) == 0 {
			return nil
		}
		return st.Save(set)
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "List files that would change without writing")
	rootCmd.AddCommand(fmtCmd)
}
