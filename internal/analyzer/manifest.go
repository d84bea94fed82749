package analyzer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ManifestType identifies which parsing rule produced a manifest record.
type ManifestType string

const (
	ManifestNPM   ManifestType = "npm"
	ManifestPip   ManifestType = "pip"
	ManifestCargo ManifestType = "cargo"
	ManifestOther ManifestType = "other"
)

// Manifest is one detected dependency-declaration file.
type Manifest struct {
	Type         ManifestType
	FilePath     string
	ProjectName  string
	Description  string
	Dependencies []string
}

// ProbeOutcome is the explicit result of probing one manifest file, so
// every fail-soft path stays independently testable.
type ProbeOutcome int

const (
	// ProbeFound means the file exists and parsed into a record.
	ProbeFound ProbeOutcome = iota
	// ProbeAbsent means the file does not exist; it contributes nothing.
	ProbeAbsent
	// ProbeUnparsable means the file exists but could not be parsed and
	// is omitted from the result.
	ProbeUnparsable
)

// Manifest file names probed at the project root, in fixed order.
const (
	npmManifestFile   = "package.json"
	pipManifestFile   = "requirements.txt"
	cargoManifestFile = "Cargo.toml"
)

// FindManifests probes the three known manifest files at the root of
// path. The result follows the fixed probe order npm, pip, cargo.
// Absent files contribute nothing; a malformed package.json is omitted
// entirely rather than reported as a partial record.
func FindManifests(path string) []Manifest {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	var found []Manifest
	if m, outcome := probeNPM(path); outcome == ProbeFound {
		found = append(found, m)
	}
	if m, outcome := probePip(path); outcome == ProbeFound {
		found = append(found, m)
	}
	if m, outcome := probeCargo(path); outcome == ProbeFound {
		found = append(found, m)
	}
	return found
}

// packageJSON mirrors the package.json fields the analyzer cares about.
type packageJSON struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Main         string            `json:"main"`
	Bin          json.RawMessage   `json:"bin"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

func probeNPM(root string) (Manifest, ProbeOutcome) {
	filePath := filepath.Join(root, npmManifestFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Manifest{}, ProbeAbsent
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Manifest{}, ProbeUnparsable
	}

	name := pkg.Name
	if name == "" {
		name = filepath.Base(root)
	}
	deps := make([]string, 0, len(pkg.Dependencies))
	for dep := range pkg.Dependencies {
		deps = append(deps, dep)
	}
	sort.Strings(deps)

	return Manifest{
		Type:         ManifestNPM,
		FilePath:     filePath,
		ProjectName:  name,
		Description:  pkg.Description,
		Dependencies: deps,
	}, ProbeFound
}

// probePip reads a requirements.txt: every non-blank, non-comment line
// is one dependency. There is no name or description to extract, so the
// project name is always the directory base name.
func probePip(root string) (Manifest, ProbeOutcome) {
	filePath := filepath.Join(root, pipManifestFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Manifest{}, ProbeAbsent
	}

	var deps []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		deps = append(deps, line)
	}

	return Manifest{
		Type:         ManifestPip,
		FilePath:     filePath,
		ProjectName:  filepath.Base(root),
		Dependencies: deps,
	}, ProbeFound
}

// cargoManifest covers the [package] table of a Cargo.toml. Dependency
// extraction for this format is out of scope, so only name and
// description are read.
type cargoManifest struct {
	Package struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
	} `toml:"package"`
}

func probeCargo(root string) (Manifest, ProbeOutcome) {
	filePath := filepath.Join(root, cargoManifestFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Manifest{}, ProbeAbsent
	}

	var cargo cargoManifest
	// Extraction is best-effort: a TOML syntax error falls back to the
	// same defaults as missing fields instead of dropping the manifest.
	_ = toml.Unmarshal(data, &cargo)

	name := cargo.Package.Name
	if name == "" {
		name = filepath.Base(root)
	}

	return Manifest{
		Type:        ManifestCargo,
		FilePath:    filePath,
		ProjectName: name,
		Description: cargo.Package.Description,
	}, ProbeFound
}
