package cmd

import (
	"fmt"

	"modchem-backend/cmd/modchem/utils"
	"modchem-backend/services/modchem"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <formula>",
	Short: "Looks a formula up in the wiki's dictionary of chemical formulas.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := service.Resolve(cmd.Context(), modchem.ParseFormula(args[0], ""))
		if err != nil {
			return err
		}
		if len(res.Entries) == 0 {
			fmt.Println(res.Message)
			if len(res.Suggestions) > 0 {
				t := utils.NewTable()
				t.AppendHeader(table.Row{"Did you mean"})
				for _, s := range res.Suggestions {
					t.AppendRow(table.Row{s})
				}
				t.Render()
			}
			return nil
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Chemical Formula", "Synonyms", "CAS Number"})
		for _, e := range res.Entries {
			t.AppendRow(table.Row{e.Formula, e.Synonyms, e.CAS})
		}
		t.Render()
		return nil
	},
}
