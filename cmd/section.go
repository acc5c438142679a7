package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Browse the AISC W-shape property catalog",
	Long: `Browse the built-in AISC W-shape property catalog.

All properties are in metric units (cm, cm², cm³, cm⁴, cm⁶)
with A992 material defaults (Fy = 3515, Fu = 4570 kgf/cm²).

Subcommands:
  list     - List available shape designations
  info     - Show the properties of one shape
  compare  - Compare the properties of two shapes`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
