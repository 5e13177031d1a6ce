package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/internal/config"
	"github.com/martinhoracek/TerraFirma/internal/model"
	"github.com/martinhoracek/TerraFirma/internal/store"
)

// version is stamped at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var (
	dataDir    string
	configPath string
	indent     string
	verbose    bool

	// cfg is the merged configuration: flags over config file over
	// defaults. It is filled before any command runs.
	cfg config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", "", "Data directory holding the definition files (default <cwd>/../assets/jsons)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ~/.config/tfedit/config.hcl)")
	rootCmd.PersistentFlags().StringVar(&indent, "indent", "", "Indent saved JSON with this string (default compact)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every file read and written")
}

var rootCmd = &cobra.Command{
	Use:     "tfedit",
	Short:   "tfedit: editor for TerraFirma definition files",
	Version: version,
	Long: `tfedit edits the JSON definition files TerraFirma reads: globals, header,
items, npcs, prefixes, tiles and walls. Tiles carry a nested variant tree.

Without a subcommand it starts an interactive editing session (see edit).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runEdit,
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dir") {
		c.DataDir = dataDir
	}
	if cmd.Flags().Changed("indent") {
		c.Indent = indent
	}
	cfg = c
	return nil
}

// openStore opens a data directory with the configured encoding options.
func openStore(dir string) (*store.Store, error) {
	return store.OpenDir(dir, store.WithIndent(cfg.Indent), store.WithVerbose(verbose))
}

// loadSet reads the configured data directory.
func loadSet(cmd *cobra.Command) (*model.Set, error) {
	st, err := openStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	set, err := st.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %s\n", cfg.DataDir)
	}
	return set, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
