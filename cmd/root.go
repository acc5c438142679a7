package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel W-Shape Design Validator",
	Long: `gosteel - Go Steel W-Shape Design Validator

A CLI tool for the strength verification of structural steel
wide-flange (W) members according to the AISC 360 specification.

This tool helps structural engineers verify:
  - Tension members (Chapter D)
  - Compression members, including slender elements (Chapter E)
  - Flexural members about both axes (Chapter F)
  - Combined axial compression and flexure (Chapter H)

All properties are in metric units (cm, kgf, kgf/cm²).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel W-Shape Design Validator                       ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the strength verification of steel wide-flange")
		fmt.Println("  members according to the AISC 360 specification.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Width-thickness classification (compact/noncompact/slender)")
		fmt.Println("    • Tension, compression and flexure limit states")
		fmt.Println("    • Combined flexure-compression interaction")
		fmt.Println("    • Built-in AISC W-shape property catalog")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
