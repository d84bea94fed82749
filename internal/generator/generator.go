// Package generator turns project metadata into a README document. Each
// section generator is a pure function over the analysis result; the
// pipeline applies the configured exclusions and overrides before
// assembling the fixed section order.
package generator

import (
	"log/slog"

	"github.com/sevigo/readme-forge/internal/analyzer"
	"github.com/sevigo/readme-forge/internal/config"
	"github.com/sevigo/readme-forge/internal/gitutil"
	"github.com/sevigo/readme-forge/internal/scanner"
)

// Generator runs the full analysis-and-generation pipeline for one
// project root.
type Generator struct {
	cfg    *config.Config
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate analyzes root and returns the assembled README text. The
// only error is a failed scan of the root itself; every other input
// problem degrades a section to its default.
func (g *Generator) Generate(root string) (string, error) {
	s := scanner.New(scanner.Options{
		MaxDepth:      g.cfg.MaxDepth,
		IncludeHidden: g.cfg.IncludeHiddenFiles,
		Logger:        g.logger,
	})
	meta, err := analyzer.New(s, g.logger).Analyze(root)
	if err != nil {
		return "", err
	}
	g.logger.Debug("analysis complete",
		"name", meta.Name,
		"language", meta.Language,
		"manifests", len(meta.Dependencies))

	cloneURL, _ := gitutil.OriginURL(root)

	sections := map[Section]string{
		SectionTitle:        GenerateTitle(meta),
		SectionDescription:  GenerateDescription(meta),
		SectionInstallation: GenerateInstallation(meta.Dependencies, cloneURL),
		SectionUsage:        GenerateUsage(meta),
		SectionStructure:    GenerateStructure(meta, g.cfg.MaxDepth),
		SectionLicense:      GenerateLicense(root),
	}

	sections = Exclude(sections, g.cfg.ExcludeSections)
	sections = Override(sections, g.cfg.CustomContent)

	return Assemble(sections), nil
}
