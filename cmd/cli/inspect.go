package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/readme-forge/internal/analyzer"
	"github.com/sevigo/readme-forge/internal/config"
	"github.com/sevigo/readme-forge/internal/scanner"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Show the project facts the generator would work from",
	Long: `Inspect runs the analysis stage only and prints the derived metadata:
name, description, dominant language, manifests, entry point, scripts
and classified directories.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the metadata as JSON")
	rootCmd.AddCommand(inspectCmd)
}

// inspectReport is the flattened, printable view of the analysis.
type inspectReport struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Language    string            `json:"language"`
	EntryPoint  string            `json:"entryPoint,omitempty"`
	Scripts     map[string]string `json:"scripts,omitempty"`
	Manifests   []string          `json:"manifests"`
	SourceDirs  []string          `json:"sourceDirs,omitempty"`
	TestDirs    []string          `json:"testDirs,omitempty"`
	ConfigDirs  []string          `json:"configDirs,omitempty"`
}

func runInspect(_ *cobra.Command, args []string) error {
	root := targetDir(args)
	log := newLogger()

	cfg := config.MustLoad(root, log)
	s := scanner.New(scanner.Options{
		MaxDepth:      cfg.MaxDepth,
		IncludeHidden: cfg.IncludeHiddenFiles,
		Logger:        log,
	})
	meta, err := analyzer.New(s, log).Analyze(root)
	if err != nil {
		return fmt.Errorf("failed to analyze %q: %w", root, err)
	}
	buckets := analyzer.Classify(meta.Structure)

	report := inspectReport{
		Name:        meta.Name,
		Description: meta.Description,
		Language:    meta.Language,
		EntryPoint:  meta.EntryPoint,
		Scripts:     meta.Scripts,
		SourceDirs:  buckets.Source,
		TestDirs:    buckets.Test,
		ConfigDirs:  buckets.Config,
	}
	for _, m := range meta.Dependencies {
		report.Manifests = append(report.Manifests, fmt.Sprintf("%s (%d dependencies)", m.Type, len(m.Dependencies)))
	}

	if inspectJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "NAME\t%s\n", report.Name)
	fmt.Fprintf(w, "DESCRIPTION\t%s\n", report.Description)
	fmt.Fprintf(w, "LANGUAGE\t%s\n", report.Language)
	fmt.Fprintf(w, "ENTRY POINT\t%s\n", report.EntryPoint)
	fmt.Fprintf(w, "MANIFESTS\t%s\n", strings.Join(report.Manifests, ", "))
	fmt.Fprintf(w, "SOURCE DIRS\t%s\n", strings.Join(report.SourceDirs, ", "))
	fmt.Fprintf(w, "TEST DIRS\t%s\n", strings.Join(report.TestDirs, ", "))
	fmt.Fprintf(w, "CONFIG DIRS\t%s\n", strings.Join(report.ConfigDirs, ", "))
	if len(report.Scripts) > 0 {
		names := make([]string, 0, len(report.Scripts))
		for name := range report.Scripts {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(w, "SCRIPTS\t%s\n", strings.Join(names, ", "))
	}
	return w.Flush()
}
