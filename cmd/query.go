package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/query"
)

var queryIndent int

var queryCmd = &cobra.Command{
	Use:   "query <collection> <jsonpath>",
	Short: "Evaluate a JSONPath expression against a definition file",
	Example: `  tfedit query tiles '$[?(@.id == 5)].var[*].name'
  tfedit query npcs '$[*].name'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := api.ParseCollection(args[0])
		if err != nil {
			return err
		}
		set, err := loadSet(cmd)
		if err != nil {
			return err
		}
		results, err := query.Query(set, c, args[1])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), query.Format(results, queryIndent))
		return nil
	},
}

func init() {
	queryCmd.Flags().IntVar(&queryIndent, "pretty", 0, "Indent each result by this many spaces")
	rootCmd.AddCommand(queryCmd)
}
