package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/internal/console"
	"github.com/martinhoracek/TerraFirma/internal/store"
	"github.com/martinhoracek/TerraFirma/internal/tui"
)

var useTUI bool

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the data directory interactively",
	Long: `Start an editing session on the data directory. Commands are read one per
line from stdin (type help for the list); --tui runs the same session in a
full-screen terminal interface.

The directory is locked while the session runs unless the config file sets
lock = false.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&useTUI, "tui", false, "Use the full-screen terminal interface")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	if cfg.Locking() {
		lock, err := store.Lock(cfg.DataDir)
		if errors.Is(err, store.ErrLocked) {
			return fmt.Errorf("%s: %w", cfg.DataDir, err)
		}
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Printf("Edit: %v", err)
			}
		}()
	}

	opts := console.Options{Dir: cfg.DataDir, Open: openStore}
	if useTUI {
		return tui.New(opts, "load").Run()
	}
	c := console.New(cmd.OutOrStdout(), opts)
	c.Exec("load")
	return c.Run(cmd.InOrStdin())
}
