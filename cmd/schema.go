package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/api"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema [collection]",
	Short: "Print the JSON Schema of a definition file",
	Long: `Print the JSON Schema of one definition file, or with --out write
<collection>.schema.json for every file into a directory.`,
	Args: cobra.MaximumNArgs(1),
	// Schemas do not depend on a data directory or config.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaOut != "" {
			if len(args) > 0 {
				return fmt.Errorf("--out writes every collection; drop the argument")
			}
			if err := os.MkdirAll(schemaOut, 0o755); err != nil {
				return err
			}
			for _, c := range api.Collections {
				data, err := schemaJSON(c)
				if err != nil {
					return err
				}
				path := filepath.Join(schemaOut, string(c)+".schema.json")
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write schema: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("name a collection or use --out")
		}
		c, err := api.ParseCollection(args[0])
		if err != nil {
			return err
		}
		data, err := schemaJSON(c)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func schemaJSON(c api.Collection) ([]byte, error) {
	s, err := api.Schema(c)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOut, "out", "o", "", "Write every schema into this directory")
	rootCmd.AddCommand(schemaCmd)
}
