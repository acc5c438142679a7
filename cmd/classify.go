package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	classifySection string
	classifyFy      float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the width-thickness compactness of a W-shape",
	Long: `Classify the flange and web of a W-shape as compact, noncompact or
slender per AISC 360 Tables B4.1a (compression) and B4.1b (flexure).

Examples:
  gosteel classify --section w14x90
  gosteel classify --section w36x135 --fy 2530`,
	Run: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifySection, "section", "s", "", "W-shape designation, e.g. w14x90 [required]")
	classifyCmd.Flags().Float64Var(&classifyFy, "fy", aisc.DefaultFy, "Steel yield stress Fy (kgf/cm²)")

	classifyCmd.MarkFlagRequired("section")
}

func runClassify(cmd *cobra.Command, args []string) {
	props, err := catalog.Get(classifySection)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	props.Fy = classifyFy

	class, err := aisc.Classify(props)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SECTION CLASSIFICATION - %s\n", strings.ToUpper(classifySection))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("ELEMENT CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flange (compression):\t%s\n", class.FlangeCompression)
	fmt.Fprintf(w, "  Flange (flexure):\t%s\n", class.FlangeFlexure)
	fmt.Fprintf(w, "  Web (flexure):\t%s\n", class.WebFlexure)
	w.Flush()
	fmt.Println()

	r := class.Ratios
	fmt.Println("WIDTH-THICKNESS RATIOS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  λ flange = bf/2tf:\t%.2f\n", r.LambdaF)
	fmt.Fprintf(w, "  λ web = h/tw:\t%.2f\n", r.LambdaW)
	fmt.Fprintf(w, "  λp flange (compression):\t%.2f\n", r.LambdaPFlangeComp)
	fmt.Fprintf(w, "  λr flange (compression):\t%.2f\n", r.LambdaRFlangeComp)
	fmt.Fprintf(w, "  λp flange (flexure):\t%.2f\n", r.LambdaPFlangeFlex)
	fmt.Fprintf(w, "  λr flange (flexure):\t%.2f\n", r.LambdaRFlangeFlex)
	fmt.Fprintf(w, "  λp web (flexure):\t%.2f\n", r.LambdaPWebFlex)
	fmt.Fprintf(w, "  λr web (flexure):\t%.2f\n", r.LambdaRWebFlex)
	w.Flush()
	fmt.Println()
}
