package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/catalog"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Section and material inputs
	checkSection string
	checkFy      float64
	checkFu      float64

	// Loads (kgf, kgf-cm)
	checkAxial float64
	checkMx    float64
	checkMy    float64

	// Lengths (cm)
	checkLength float64
	checkLx     float64
	checkLy     float64
	checkLt     float64
	checkCb     float64

	// Output
	checkOutputFile string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a W-shape member under combined loading",
	Long: `Verify a wide-flange member against the AISC 360 strength provisions
for the given axial force, bending moments and member lengths.

The applicable checks are selected from the load signs and magnitudes:
  - Axial force:  positive = tension (Chapter D), negative = compression (Chapter E)
  - Moments:      strong and/or weak axis flexure (Chapter F)
  - Interaction:  compression combined with flexure (Chapter H)

All inputs are in metric units: lengths in cm, forces in kgf,
moments in kgf-cm, stresses in kgf/cm².

Examples:
  # Compression member with strong-axis bending
  gosteel check --section w14x90 --axial -50000 --mx 500000 --length 400 --lx 400 --ly 400 --lt 400

  # Tension member
  gosteel check --section w8x31 --axial 30000

  # Export the moment capacity curve alongside the report
  gosteel check --section w14x90 --mx 800000 --lt 600 --output capacity.png`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Section flags
	checkCmd.Flags().StringVarP(&checkSection, "section", "s", "", "W-shape designation, e.g. w14x90 [required]")
	checkCmd.Flags().Float64Var(&checkFy, "fy", aisc.DefaultFy, "Steel yield stress Fy (kgf/cm²)")
	checkCmd.Flags().Float64Var(&checkFu, "fu", aisc.DefaultFu, "Steel ultimate stress Fu (kgf/cm²)")

	// Load flags
	checkCmd.Flags().Float64VarP(&checkAxial, "axial", "P", 0, "Axial force, + tension / - compression (kgf)")
	checkCmd.Flags().Float64Var(&checkMx, "mx", 0, "Strong-axis moment (kgf-cm)")
	checkCmd.Flags().Float64Var(&checkMy, "my", 0, "Weak-axis moment (kgf-cm)")

	// Length flags
	checkCmd.Flags().Float64VarP(&checkLength, "length", "L", 0, "Unbraced length (cm)")
	checkCmd.Flags().Float64Var(&checkLx, "lx", 0, "Effective length for strong-axis buckling (cm)")
	checkCmd.Flags().Float64Var(&checkLy, "ly", 0, "Effective length for weak-axis buckling (cm)")
	checkCmd.Flags().Float64Var(&checkLt, "lt", 0, "Unbraced length for lateral-torsional buckling (cm)")
	checkCmd.Flags().Float64Var(&checkCb, "cb", 1.0, "Lateral-torsional buckling modification factor Cb")

	// Output flag
	checkCmd.Flags().StringVarP(&checkOutputFile, "output", "o", "", "Export moment capacity curve to file (png, svg, pdf)")

	checkCmd.MarkFlagRequired("section")
}

func runCheck(cmd *cobra.Command, args []string) {
	props, err := catalog.Get(checkSection)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	props.Fy = checkFy
	props.Fu = checkFu

	loads := aisc.NewLoadConditions(checkAxial, checkMx, checkMy, checkLength, checkLx, checkLy, checkLt)
	loads.Cb = checkCb

	result, err := aisc.Validate(props, loads)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printCheckReport(strings.ToUpper(checkSection), props, result)

	if checkOutputFile != "" {
		if err := diagram.ExportCapacityCurve(props, loads, checkOutputFile); err != nil {
			fmt.Printf("Error exporting capacity curve: %v\n", err)
			return
		}
		fmt.Printf("  Capacity curve exported to: %s\n", checkOutputFile)
		fmt.Println()
	}
}

func printCheckReport(label string, props aisc.SectionProperties, result *aisc.AggregateResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     AISC 360 MEMBER VERIFICATION - %s\n", label)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Classification
	c := result.Classification
	fmt.Println("SECTION CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flange (compression):\t%s\n", c.FlangeCompression)
	fmt.Fprintf(w, "  Flange (flexure):\t%s\n", c.FlangeFlexure)
	fmt.Fprintf(w, "  Web (flexure):\t%s\n", c.WebFlexure)
	fmt.Fprintf(w, "  λ flange:\t%.2f\n", c.Ratios.LambdaF)
	fmt.Fprintf(w, "  λ web:\t%.2f\n", c.Ratios.LambdaW)
	fmt.Fprintf(w, "  λp flange (comp):\t%.2f\n", c.Ratios.LambdaPFlangeComp)
	fmt.Fprintf(w, "  λr flange (comp):\t%.2f\n", c.Ratios.LambdaRFlangeComp)
	w.Flush()
	fmt.Println()

	// Tension
	if t := result.Tension; t != nil {
		fmt.Println("TENSION CHECK (Chapter D):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Applied Load (Pu):\t%.1f kgf\n", t.Pu)
		fmt.Fprintf(w, "  Yielding Capacity (φPn):\t%.1f kgf\n", t.PtYielding)
		fmt.Fprintf(w, "  Rupture Capacity (φPn):\t%.1f kgf\n", t.PtRupture)
		fmt.Fprintf(w, "  Governing Capacity:\t%.1f kgf\n", t.Pt)
		fmt.Fprintf(w, "  Governing Mode:\t%s\n", t.GoverningMode)
		fmt.Fprintf(w, "  D/C Ratio:\t%.3f\n", t.Ratio)
		fmt.Fprintf(w, "  Status:\t%s\n", statusLabel(t.Passed))
		fmt.Fprintf(w, "  Equations:\t%s\n", strings.Join(t.Equations, ", "))
		w.Flush()
		fmt.Println()
	}

	// Compression
	if cr := result.Compression; cr != nil {
		fmt.Println("COMPRESSION CHECK (Chapter E):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Applied Load (Pu):\t%.1f kgf\n", cr.Pu)
		fmt.Fprintf(w, "  KL/r (strong axis):\t%.1f\n", cr.SlendernessX)
		fmt.Fprintf(w, "  KL/r (weak axis):\t%.1f\n", cr.SlendernessY)
		fmt.Fprintf(w, "  KL/r (governing):\t%.1f\n", cr.Slenderness)
		fmt.Fprintf(w, "  Fe:\t%.1f kgf/cm²\n", cr.Fe)
		fmt.Fprintf(w, "  Fcr:\t%.1f kgf/cm²\n", cr.Fcr)
		fmt.Fprintf(w, "  Nominal Capacity (Pn):\t%.1f kgf\n", cr.Pn)
		fmt.Fprintf(w, "  Design Capacity (φPn):\t%.1f kgf\n", cr.Pc)
		fmt.Fprintf(w, "  Buckling Mode:\t%s\n", cr.BucklingMode)
		if cr.SlenderElements {
			fmt.Fprintf(w, "  Effective Area (Ae):\t%.2f cm²\n", cr.EffectiveArea)
			fmt.Fprintf(w, "  Modified Fy:\t%.1f kgf/cm²\n", cr.FyModified)
		}
		fmt.Fprintf(w, "  D/C Ratio:\t%.3f\n", cr.Ratio)
		fmt.Fprintf(w, "  Status:\t%s\n", statusLabel(cr.Passed))
		fmt.Fprintf(w, "  Equations:\t%s\n", strings.Join(cr.Equations, ", "))
		w.Flush()
		fmt.Println()
	}

	// Flexure
	if f := result.FlexureStrong; f != nil {
		fmt.Println("FLEXURE CHECK - STRONG AXIS (Chapter F):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Applied Moment (Mux):\t%.1f kgf-cm\n", f.Mu)
		fmt.Fprintf(w, "  Nominal Capacity (Mn):\t%.1f kgf-cm\n", f.Mn)
		fmt.Fprintf(w, "  Design Capacity (φMn):\t%.1f kgf-cm\n", f.Mb)
		fmt.Fprintf(w, "  Limit State:\t%s\n", f.LimitState)
		fmt.Fprintf(w, "  Lp:\t%.2f cm\n", f.Lp)
		fmt.Fprintf(w, "  Lr:\t%.2f cm\n", f.Lr)
		fmt.Fprintf(w, "  Lt:\t%.2f cm\n", f.Lt)
		fmt.Fprintf(w, "  rts:\t%.2f cm\n", f.Rts)
		fmt.Fprintf(w, "  D/C Ratio:\t%.3f\n", f.Ratio)
		fmt.Fprintf(w, "  Status:\t%s\n", statusLabel(f.Passed))
		fmt.Fprintf(w, "  Equations:\t%s\n", strings.Join(f.Equations, ", "))
		w.Flush()
		fmt.Println()
	}

	if f := result.FlexureWeak; f != nil {
		fmt.Println("FLEXURE CHECK - WEAK AXIS (Chapter F):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Applied Moment (Muy):\t%.1f kgf-cm\n", f.Mu)
		fmt.Fprintf(w, "  Nominal Capacity (Mn):\t%.1f kgf-cm\n", f.Mn)
		fmt.Fprintf(w, "  Design Capacity (φMn):\t%.1f kgf-cm\n", f.Mb)
		fmt.Fprintf(w, "  Limit State:\t%s\n", f.LimitState)
		fmt.Fprintf(w, "  D/C Ratio:\t%.3f\n", f.Ratio)
		fmt.Fprintf(w, "  Status:\t%s\n", statusLabel(f.Passed))
		fmt.Fprintf(w, "  Equations:\t%s\n", strings.Join(f.Equations, ", "))
		w.Flush()
		fmt.Println()
	}

	// Interaction
	if i := result.Interaction; i != nil {
		fmt.Println("FLEXURE-COMPRESSION INTERACTION (Chapter H):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Interaction Value:\t%.3f\n", i.Value)
		fmt.Fprintf(w, "  Applied Equation:\t%s\n", i.Equation)
		fmt.Fprintf(w, "  Pr/Pc:\t%.3f\n", i.PrPc)
		fmt.Fprintf(w, "  Mrx/Mcx:\t%.3f\n", i.MrxMcx)
		fmt.Fprintf(w, "  Mry/Mcy:\t%.3f\n", i.MryMcy)
		fmt.Fprintf(w, "  Status:\t%s\n", statusLabel(i.Passed))
		w.Flush()
		fmt.Println()
	}

	// Overall verdict
	verdict := "MEMBER PASSES ALL CHECKS"
	if !result.Passed() {
		verdict = "MEMBER FAILS ONE OR MORE CHECKS"
	}
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %s\n", verdict)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}

func statusLabel(passed bool) string {
	if passed {
		return "PASS ✓"
	}
	return "FAIL ✗"
}
