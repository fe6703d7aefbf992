// Package main implements the cadgen CLI tool for parametric bracket
// generation and AS 1100 compliance checking.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cadgen",
	Short: "Parametric CAD generator for sheet-metal mounting brackets",
	Long:  "cadgen generates parametric 3D solids (STL) and AS 1100 style 2D drawings (DXF) for sheet-metal mounting brackets, and checks the drawings against AS 1100.101 layout and dimensioning rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
