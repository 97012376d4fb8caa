package cmd

import (
	"fmt"
	"strings"

	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the assessed skill categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		if !verbose {
			fmt.Printf("%-55s  %s\n", "Category", "Focus Areas")
			fmt.Println(strings.Repeat("─", 110))
			for _, cat := range catalog.All() {
				d, err := catalog.Get(cat)
				if err != nil {
					return err
				}
				fmt.Printf("%-55s  %s\n", cat, strings.Join(d.FocusAreas, ", "))
			}
			fmt.Printf("\n%d categories\n", catalog.Count())
			return nil
		}

		for _, cat := range catalog.All() {
			d, err := catalog.Get(cat)
			if err != nil {
				return err
			}
			fmt.Println(cat)
			fmt.Println(strings.Repeat("─", len(cat)))
			fmt.Println(d.Description)
			for _, fa := range d.FocusAreas {
				fmt.Printf("  - %s\n", fa)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().BoolP("verbose", "v", false, "Show full descriptions")
}
