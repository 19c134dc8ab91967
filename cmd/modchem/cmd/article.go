package cmd

import (
	"fmt"
	"strings"

	"modchem-backend/lib/htmlutil"
	"modchem-backend/services/modchem"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

var (
	articleFirst string
	articleHtml  bool
)

func init() {
	articleCmd.Flags().StringVar(&articleFirst, "first", "", "First element of the formula, read off the formula when omitted.")
	articleCmd.Flags().BoolVar(&articleHtml, "html", false, "Print the article markup instead of its text.")
	rootCmd.AddCommand(articleCmd)
}

var articleCmd = &cobra.Command{
	Use:   "article <formula>",
	Short: "Prints the wiki article of a formula.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		article := service.Article(cmd.Context(), modchem.ParseFormula(args[0], articleFirst))
		if article.Fallback {
			fmt.Println("No article found, showing the essay instead.")
		} else {
			fmt.Println(article.Href)
		}
		fmt.Println()

		if articleHtml {
			fmt.Println(article.Body)
			return nil
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Body))
		if err != nil {
			return err
		}
		for _, node := range doc.Find("body").Nodes {
			fmt.Println(htmlutil.CleanText(htmlutil.GetText(node)))
		}
		return nil
	},
}
