package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/catalog"
	"github.com/spf13/cobra"
)

var sectionInfoName string

var sectionInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the properties of a W-shape",
	Long: `Show the full geometric and material property set of one W-shape
from the catalog.

Examples:
  gosteel section info --name w14x90
  gosteel section info -n W8X10`,
	Run: runSectionInfo,
}

func init() {
	sectionCmd.AddCommand(sectionInfoCmd)

	sectionInfoCmd.Flags().StringVarP(&sectionInfoName, "name", "n", "", "W-shape designation [required]")
	sectionInfoCmd.MarkFlagRequired("name")
}

func runSectionInfo(cmd *cobra.Command, args []string) {
	props, err := catalog.Get(sectionInfoName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SECTION PROPERTIES - %s\n", strings.ToUpper(sectionInfoName))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("DIMENSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth (d):\t%.2f cm\n", props.D)
	fmt.Fprintf(w, "  Flange Width (bf):\t%.2f cm\n", props.Bf)
	fmt.Fprintf(w, "  Flange Thickness (tf):\t%.2f cm\n", props.Tf)
	fmt.Fprintf(w, "  Web Thickness (tw):\t%.2f cm\n", props.Tw)
	fmt.Fprintf(w, "  Gross Area (A):\t%.2f cm²\n", props.A)
	w.Flush()
	fmt.Println()

	fmt.Println("STRONG AXIS (x-x):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ix:\t%.2f cm⁴\n", props.Ix)
	fmt.Fprintf(w, "  Sx:\t%.2f cm³\n", props.Sx)
	fmt.Fprintf(w, "  Zx:\t%.2f cm³\n", props.Zx)
	fmt.Fprintf(w, "  rx:\t%.2f cm\n", props.Rx)
	w.Flush()
	fmt.Println()

	fmt.Println("WEAK AXIS (y-y):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Iy:\t%.2f cm⁴\n", props.Iy)
	fmt.Fprintf(w, "  Sy:\t%.2f cm³\n", props.Sy)
	fmt.Fprintf(w, "  Zy:\t%.2f cm³\n", props.Zy)
	fmt.Fprintf(w, "  ry:\t%.2f cm\n", props.Ry)
	w.Flush()
	fmt.Println()

	fmt.Println("TORSIONAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  J:\t%.2f cm⁴\n", props.J)
	fmt.Fprintf(w, "  Cw:\t%.2f cm⁶\n", props.Cw)
	fmt.Fprintf(w, "  ho:\t%.2f cm\n", props.Ho)
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fy:\t%.0f kgf/cm²\n", props.Fy)
	fmt.Fprintf(w, "  Fu:\t%.0f kgf/cm²\n", props.Fu)
	fmt.Fprintf(w, "  E:\t%.0f kgf/cm²\n", props.E)
	w.Flush()
	fmt.Println()
}
