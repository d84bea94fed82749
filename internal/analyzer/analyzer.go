// Package analyzer derives project metadata (language, manifests,
// structure) from a directory tree and the manifest files at its root.
// Analysis is best-effort: missing or malformed inputs degrade fields
// to documented defaults instead of failing the run.
package analyzer

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/sevigo/readme-forge/internal/scanner"
)

// ProjectMetadata is the aggregate analysis result. It is constructed
// once per run and passed by value to the section generators.
type ProjectMetadata struct {
	Name         string
	Description  string
	Language     string
	EntryPoint   string
	Scripts      map[string]string
	Dependencies []Manifest
	Structure    *scanner.Node
}

// Analyzer orchestrates one analysis pass over a project root.
type Analyzer struct {
	scanner *scanner.Scanner
	logger  *slog.Logger
}

func New(s *scanner.Scanner, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{scanner: s, logger: logger}
}

// Analyze scans the tree, detects the dominant language, probes the
// manifest files and assembles the metadata. Only a scan failure on the
// root itself is returned as an error; everything downstream degrades
// to defaults.
func (a *Analyzer) Analyze(root string) (ProjectMetadata, error) {
	// A relative root like "." would leak into every directory-name
	// fallback below.
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	tree, err := a.scanner.Scan(root)
	if err != nil {
		return ProjectMetadata{}, err
	}

	manifests := FindManifests(root)
	a.logger.Debug("analyzed project", "root", root, "manifests", len(manifests))

	meta := ProjectMetadata{
		Name:         filepath.Base(root),
		Language:     DetectLanguage(tree.FileNames()),
		Scripts:      map[string]string{},
		Dependencies: manifests,
		Structure:    tree,
	}

	// Name and description come from the first manifest carrying them,
	// in probe order.
	for _, m := range manifests {
		if m.ProjectName != "" {
			meta.Name = m.ProjectName
			break
		}
	}
	for _, m := range manifests {
		if m.Description != "" {
			meta.Description = m.Description
			break
		}
	}

	meta.EntryPoint, meta.Scripts = readNPMRunInfo(root)
	return meta, nil
}

// readNPMRunInfo re-reads package.json for the fields only that format
// declares. Any read or parse failure degrades to empty values,
// mirroring the detector's fail-soft policy.
func readNPMRunInfo(root string) (string, map[string]string) {
	scripts := map[string]string{}

	data, err := os.ReadFile(filepath.Join(root, npmManifestFile))
	if err != nil {
		return "", scripts
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", scripts
	}

	if pkg.Scripts != nil {
		scripts = pkg.Scripts
	}
	entry := pkg.Main
	if entry == "" {
		entry = binEntry(pkg.Bin)
	}
	return entry, scripts
}

// binEntry resolves the "bin" field, which is either a single command
// path or a name-to-path mapping.
func binEntry(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many map[string]string
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		names := make([]string, 0, len(many))
		for name := range many {
			names = append(names, name)
		}
		sort.Strings(names)
		return many[names[0]]
	}
	return ""
}
