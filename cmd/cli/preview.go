package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sevigo/readme-forge/internal/app"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview [path]",
	Short: "Render the generated README in the terminal without writing it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	addAnalysisFlags(previewCmd)
	previewCmd.Flags().IntVar(&previewWidth, "width", 100, "Word-wrap width for the rendered output")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	root := targetDir(args)
	log := newLogger()

	forge, err := app.New(root, app.Overrides{MaxDepth: maxDepth, IncludeHidden: includeHidden}, log)
	if err != nil {
		return err
	}

	document, err := forge.Generate(root)
	if err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		// Fall back to the raw markdown rather than failing the preview.
		fmt.Fprint(cmd.OutOrStdout(), document)
		return nil
	}

	rendered, err := renderer.Render(document)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), document)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
