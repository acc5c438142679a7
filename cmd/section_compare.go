package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	compareFirst  string
	compareSecond string
)

var sectionCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the properties of two W-shapes",
	Long: `Compare the geometric properties of two W-shapes side by side,
with the percentage difference of each property.

Examples:
  gosteel section compare --first w8x10 --second w8x13`,
	Run: runSectionCompare,
}

func init() {
	sectionCmd.AddCommand(sectionCompareCmd)

	sectionCompareCmd.Flags().StringVarP(&compareFirst, "first", "1", "", "First W-shape designation [required]")
	sectionCompareCmd.Flags().StringVarP(&compareSecond, "second", "2", "", "Second W-shape designation [required]")

	sectionCompareCmd.MarkFlagRequired("first")
	sectionCompareCmd.MarkFlagRequired("second")
}

func runSectionCompare(cmd *cobra.Command, args []string) {
	p1, err := catalog.Get(compareFirst)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	p2, err := catalog.Get(compareSecond)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     COMPARISON: %s vs %s\n", strings.ToUpper(compareFirst), strings.ToUpper(compareSecond))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	rows := []struct {
		name string
		unit string
		a, b float64
	}{
		{"d", "cm", p1.D, p2.D},
		{"bf", "cm", p1.Bf, p2.Bf},
		{"tf", "cm", p1.Tf, p2.Tf},
		{"tw", "cm", p1.Tw, p2.Tw},
		{"A", "cm²", p1.A, p2.A},
		{"Ix", "cm⁴", p1.Ix, p2.Ix},
		{"Iy", "cm⁴", p1.Iy, p2.Iy},
		{"Sx", "cm³", p1.Sx, p2.Sx},
		{"Sy", "cm³", p1.Sy, p2.Sy},
		{"Zx", "cm³", p1.Zx, p2.Zx},
		{"Zy", "cm³", p1.Zy, p2.Zy},
		{"rx", "cm", p1.Rx, p2.Rx},
		{"ry", "cm", p1.Ry, p2.Ry},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Property\t%s\t%s\tDifference\n", strings.ToUpper(compareFirst), strings.ToUpper(compareSecond))
	fmt.Fprintf(w, "  ────────\t──────\t──────\t──────────\n")
	for _, row := range rows {
		diff := (row.b - row.a) / row.a * 100
		fmt.Fprintf(w, "  %s (%s)\t%.2f\t%.2f\t%+.1f%%\n", row.name, row.unit, row.a, row.b, diff)
	}
	w.Flush()
	fmt.Println()
}
