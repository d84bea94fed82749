package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/readme-forge/internal/app"
)

var (
	forceWrite    bool
	outputPath    string
	maxDepth      int
	includeHidden bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate a README.md for a project directory",
	Long: `Generate analyzes the target directory and writes a README.md to the
project root. An existing README.md is only replaced with --force or
after interactive confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	addAnalysisFlags(generateCmd)
	addOutputFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

// addAnalysisFlags registers the options shared by every command that
// runs the pipeline.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&maxDepth, "depth", "d", 0, "Directory depth for the structure section (default 3)")
	cmd.Flags().BoolVar(&includeHidden, "hidden", false, "Include hidden files in the structure section")
}

// addOutputFlags registers the options that only matter when a file is
// written.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "Overwrite an existing README.md without asking")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: README.md in the target directory)")
}

func runGenerate(_ *cobra.Command, args []string) error {
	root := targetDir(args)
	log := newLogger()

	titleColor.Println("readme-forge")
	dimColor.Printf("   Target: %s\n\n", root)

	forge, err := app.New(root, app.Overrides{MaxDepth: maxDepth, IncludeHidden: includeHidden}, log)
	if err != nil {
		return err
	}

	document, err := forge.Generate(root)
	if err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	out := outputPath
	if out == "" {
		out = app.OutputPath(root)
	}

	err = forge.Write(out, document, forceWrite)
	if errors.Is(err, app.ErrDocumentExists) {
		warnColor.Printf("%s already exists.\n", out)
		ok, confirmErr := confirmOverwrite(out)
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			dimColor.Println("Aborted, nothing written.")
			return nil
		}
		err = forge.Write(out, document, true)
	}
	if err != nil {
		return err
	}

	successColor.Printf("✓ Wrote %s\n", out)
	return nil
}
