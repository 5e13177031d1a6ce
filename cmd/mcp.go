package cmd

import (
	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the data directory to MCP clients over stdio (read-only)",
	Long: `Load the data directory once and serve the tools list_collections, query,
tile_tree and lint over the Model Context Protocol on stdin and stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadSet(cmd)
		if err != nil {
			return err
		}
		return mcpserver.New(set, cfg.DataDir).ServeStdio(version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
