package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/catalog"
	"github.com/spf13/cobra"
)

var sectionListSeries string

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available W-shape designations",
	Long: `List the W-shape designations available in the catalog,
optionally filtered by series.

Examples:
  gosteel section list
  gosteel section list --series W8`,
	Run: runSectionList,
}

func init() {
	sectionCmd.AddCommand(sectionListCmd)

	sectionListCmd.Flags().StringVarP(&sectionListSeries, "series", "s", "", "Filter by series prefix, e.g. W8 or W12")
}

func runSectionList(cmd *cobra.Command, args []string) {
	names := catalog.List(sectionListSeries)

	if len(names) == 0 {
		fmt.Printf("No shapes found for series %q.\n", sectionListSeries)
		return
	}

	fmt.Println()
	if sectionListSeries != "" {
		fmt.Printf("AVAILABLE SHAPES - %s SERIES (%d):\n", strings.ToUpper(sectionListSeries), len(names))
	} else {
		fmt.Printf("AVAILABLE SHAPES (%d):\n", len(names))
	}
	fmt.Println("───────────────────────────────────────────────────────────────")

	// Print in columns of four
	for i, name := range names {
		fmt.Printf("  %-14s", strings.ToUpper(name))
		if (i+1)%4 == 0 {
			fmt.Println()
		}
	}
	if len(names)%4 != 0 {
		fmt.Println()
	}
	fmt.Println()
}
