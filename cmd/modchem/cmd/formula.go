package cmd

import (
	"fmt"

	"modchem-backend/lib/chem"

	"github.com/spf13/cobra"
)

var formulaMode string

func init() {
	formulaCmd.Flags().StringVarP(&formulaMode, "mode", "m", "organic", "organic, ionic, oxide or hydroxide.")
	rootCmd.AddCommand(formulaCmd)
}

var formulaCmd = &cobra.Command{
	Use:   "formula <button id>...",
	Short: "Builds the formula for a set of clicked buttons.",
	Long:  "Builds the formula for a set of clicked buttons. Repeat an id to click it again or write ID=N to click it N times.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := chem.ParseMode(formulaMode)
		if err != nil {
			return err
		}
		counts, err := parseCounts(args)
		if err != nil {
			return err
		}
		formula, err := service.Build(counts, mode)
		if err != nil {
			return err
		}
		if formula.Empty() {
			fmt.Println("(empty)")
			return nil
		}
		fmt.Printf("%s\n%s\n", mode.Label(), formula.Text)
		return nil
	},
}
