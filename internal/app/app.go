// Package app wires the configuration, logger and generation pipeline
// together and owns the output boundary: existence checks and the final
// file write live here, outside the pure core.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sevigo/readme-forge/internal/config"
	"github.com/sevigo/readme-forge/internal/generator"
)

// OutputFileName is the document written at the project root.
const OutputFileName = "README.md"

// ErrDocumentExists is returned by Write when the target file already
// exists and overwriting was not requested.
var ErrDocumentExists = errors.New("document already exists")

// Overrides carries command-line values that take precedence over the
// project config file. Zero values leave the config untouched.
type Overrides struct {
	MaxDepth      int
	IncludeHidden bool
}

// App runs one generation pass for one project root.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	gen    *generator.Generator
}

// New loads the project configuration from root, applies the overrides
// and wires the pipeline. The target root must exist; anything else is
// fail-soft downstream.
func New(root string, overrides Overrides, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("target directory %q does not exist: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %q is not a directory", root)
	}

	cfg := config.MustLoad(root, logger)
	if overrides.MaxDepth > 0 {
		cfg.MaxDepth = overrides.MaxDepth
	}
	if overrides.IncludeHidden {
		cfg.IncludeHiddenFiles = true
	}

	logger.Debug("initialized readme-forge",
		"root", root,
		"max_depth", cfg.MaxDepth,
		"excluded_sections", cfg.ExcludeSections)

	return &App{
		cfg:    cfg,
		logger: logger,
		gen:    generator.New(cfg, logger),
	}, nil
}

// Config exposes the effective, merged configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Generate runs the pipeline and returns the assembled document.
func (a *App) Generate(root string) (string, error) {
	return a.gen.Generate(root)
}

// OutputPath resolves the document location for a project root.
func OutputPath(root string) string {
	return filepath.Join(root, OutputFileName)
}

// Write stores the document at path. Without force an existing file is
// left untouched and ErrDocumentExists returned so the caller can
// prompt.
func (a *App) Write(path, document string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrDocumentExists, path)
		}
	}
	if err := os.WriteFile(path, []byte(document), 0o600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	a.logger.Info("document written", "path", path, "bytes", len(document))
	return nil
}
