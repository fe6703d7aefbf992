// Package main implements the cadgen CLI tool for parametric bracket
// generation and AS 1100 compliance checking.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/compliance"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/config"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/observability"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/schemas"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/templates"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate bracket STL and DXF artifacts",
	Long:  "Generates the 3D solid (STL) and the AS 1100 style 2D drawing (DXF) for one bracket parameter set, supplied via flags or a JSON params file.",
	RunE:  runGenerate,
}

var (
	generateWidth        float64
	generateHeight       float64
	generateThickness    float64
	generateHoleDiameter float64
	generateHoleCount    int
	generateMaterial     string
	generateBracketType  string
	generateParamsFile   string
	generateOutDir       string
	generateCheck        bool
	generateVerbose      bool
	generateConfigPath   string
)

func init() {
	generateCmd.Flags().Float64Var(&generateWidth, "width", 0, "Bracket width in mm")
	generateCmd.Flags().Float64Var(&generateHeight, "height", 0, "Bracket height in mm")
	generateCmd.Flags().Float64Var(&generateThickness, "thickness", 0, "Material thickness in mm")
	generateCmd.Flags().Float64Var(&generateHoleDiameter, "hole-diameter", 0, "Mounting hole diameter in mm")
	generateCmd.Flags().IntVar(&generateHoleCount, "hole-count", 0, "Number of mounting holes (1-10)")
	generateCmd.Flags().StringVar(&generateMaterial, "material", "", "Material specification (default Steel)")
	generateCmd.Flags().StringVar(&generateBracketType, "type", "", "Bracket type: L or flat (default L)")
	generateCmd.Flags().StringVarP(&generateParamsFile, "params", "p", "", "Path to JSON params file (overrides dimension flags)")
	generateCmd.Flags().StringVarP(&generateOutDir, "out-dir", "o", "", "Output directory (default $CADGEN_OUT_DIR or ./outputs)")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Run AS 1100 compliance validation on the generated drawing")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed output")
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if generateConfigPath != "" {
		loaded, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	params, err := buildParams(cfg)
	if err != nil {
		return err
	}

	outDir := resolveOutDir(generateOutDir, cfg)
	check := generateCheck || cfg.Check
	verbose := generateVerbose || cfg.Verbose

	return generateArtifacts(params, outDir, check, verbose)
}

// buildParams assembles the parameter set from the params file or the
// dimension flags, with config file values filling unset defaults.
func buildParams(cfg config.Config) (*types.BracketParams, error) {
	var params types.BracketParams

	if generateParamsFile != "" {
		content, err := os.ReadFile(generateParamsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}
		if err := schemas.ValidateBracketParamsJSON(content); err != nil {
			return nil, fmt.Errorf("invalid params file: %w", err)
		}
		if err := json.Unmarshal(content, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params JSON: %w", err)
		}
	} else {
		params = types.BracketParams{
			Width:        generateWidth,
			Height:       generateHeight,
			Thickness:    generateThickness,
			HoleDiameter: generateHoleDiameter,
			HoleCount:    generateHoleCount,
			Material:     generateMaterial,
			BracketType:  generateBracketType,
		}
	}

	if params.Material == "" {
		params.Material = cfg.Material
	}
	if params.BracketType == "" {
		params.BracketType = cfg.BracketType
	}
	params.ApplyDefaults()

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bracket parameters: %w", err)
	}
	return &params, nil
}

func resolveOutDir(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.OutDir != "" {
		return cfg.OutDir
	}
	if env := os.Getenv("CADGEN_OUT_DIR"); env != "" {
		return env
	}
	return "outputs"
}

// generateArtifacts runs the two independent generation paths in parallel,
// exports both artifacts, and optionally validates the drawing.
func generateArtifacts(params *types.BracketParams, outDir string, check, verbose bool) error {
	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintBracketParams(params)
	}

	tmpl := templates.NewMountingBracket()
	base := fmt.Sprintf("bracket_%s", strings.ToLower(params.BracketType))
	stlPath := filepath.Join(outDir, base+".stl")
	dxfPath := filepath.Join(outDir, base+".dxf")

	var g errgroup.Group
	var doc *drafting.Document
	var docMu sync.Mutex

	g.Go(func() error {
		solid, err := tmpl.Generate3D(params)
		if err != nil {
			return fmt.Errorf("3D generation failed: %w", err)
		}
		if err := templates.ExportSTL(solid, stlPath); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Solid volume: %.1f mm³\n", solid.Volume())
		}
		return nil
	})

	g.Go(func() error {
		generated, err := tmpl.Generate2D(params)
		if err != nil {
			return fmt.Errorf("2D generation failed: %w", err)
		}
		if err := templates.ExportDXF(generated, dxfPath); err != nil {
			return err
		}
		docMu.Lock()
		doc = generated
		docMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Exported %s\n", stlPath)
	fmt.Printf("Exported %s\n", dxfPath)

	if check {
		report := compliance.Run(doc, compliance.NewSheetLayout(), compliance.NewDimensioning())
		printer.PrintReport(report)
	}
	return nil
}
