package cmd

import (
	"modchem-backend/cmd/modchem/utils"
	"modchem-backend/services/modchem"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Prints the button ids of the table of elements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		layout := modchem.PeriodicTable()

		header := table.Row{}
		for _, v := range layout.Valences {
			header = append(header, v)
		}

		t := utils.NewTable()
		t.AppendHeader(header)
		for _, row := range layout.Rows {
			out := table.Row{}
			for _, cell := range row {
				out = append(out, cell.ID)
			}
			t.AppendRow(out)
		}
		t.Render()
		return nil
	},
}
