package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sevigo/readme-forge/internal/analyzer"
)

// Section names one fragment of the generated document. The set is
// closed so ordering, exclusion and override logic operate over an
// exhaustive enumeration instead of arbitrary strings.
type Section string

const (
	SectionTitle        Section = "title"
	SectionDescription  Section = "description"
	SectionInstallation Section = "installation"
	SectionUsage        Section = "usage"
	SectionStructure    Section = "structure"
	SectionLicense      Section = "license"
)

// sectionOrder is the fixed assembly order of the final document.
var sectionOrder = []Section{
	SectionTitle,
	SectionDescription,
	SectionInstallation,
	SectionUsage,
	SectionStructure,
	SectionLicense,
}

// KnownSection reports whether key names a section of the closed set.
func KnownSection(key string) bool {
	switch Section(key) {
	case SectionTitle, SectionDescription, SectionInstallation,
		SectionUsage, SectionStructure, SectionLicense:
		return true
	}
	return false
}

// Every generator returns the empty string when the section has nothing
// to contribute; empty sections are dropped during assembly.

// GenerateTitle renders the project name as the top-level heading.
func GenerateTitle(meta analyzer.ProjectMetadata) string {
	if meta.Name == "" {
		return ""
	}
	return fmt.Sprintf("# %s\n", meta.Name)
}

// GenerateDescription wraps the description in blank lines.
func GenerateDescription(meta analyzer.ProjectMetadata) string {
	if meta.Description == "" {
		return ""
	}
	return fmt.Sprintf("\n%s\n", meta.Description)
}

// installCommands maps each manifest type to its install command blocks.
var installCommands = map[analyzer.ManifestType][]string{
	analyzer.ManifestNPM:   {"npm install", "yarn install"},
	analyzer.ManifestPip:   {"pip install -r requirements.txt"},
	analyzer.ManifestCargo: {"cargo build"},
}

// GenerateInstallation emits one fenced command block per manifest type
// present, in detection order. The optional cloneURL prepends a
// git-clone block when the project has a resolvable origin remote.
func GenerateInstallation(manifests []analyzer.Manifest, cloneURL string) string {
	if len(manifests) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Installation\n")

	if cloneURL != "" {
		b.WriteString("\nClone the repository:\n\n")
		b.WriteString(codeBlock("git clone " + cloneURL))
	}

	seen := make(map[analyzer.ManifestType]struct{})
	for _, m := range manifests {
		commands, ok := installCommands[m.Type]
		if !ok {
			continue
		}
		if _, done := seen[m.Type]; done {
			continue
		}
		seen[m.Type] = struct{}{}

		b.WriteString("\n")
		b.WriteString(codeBlock(commands[0]))
		for _, alt := range commands[1:] {
			b.WriteString("\nor\n\n")
			b.WriteString(codeBlock(alt))
		}
	}
	return b.String()
}

// GenerateUsage always contributes its heading; script list and entry
// point are independent and additive.
func GenerateUsage(meta analyzer.ProjectMetadata) string {
	var b strings.Builder
	b.WriteString("## Usage\n")

	if len(meta.Scripts) > 0 {
		b.WriteString("\nAvailable scripts:\n\n")
		names := make([]string, 0, len(meta.Scripts))
		for name := range meta.Scripts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- `npm run %s`: %s\n", name, meta.Scripts[name])
		}
	}

	if meta.EntryPoint != "" {
		b.WriteString("\nRun the application:\n\n")
		b.WriteString(codeBlock("node " + meta.EntryPoint))
	}
	return b.String()
}

// GenerateStructure renders the scanned tree inside a fenced block.
func GenerateStructure(meta analyzer.ProjectMetadata, maxDepth int) string {
	if meta.Structure == nil {
		return ""
	}
	rendered := RenderTree(meta.Structure, maxDepth)
	if rendered == "" {
		return ""
	}
	return "## Project Structure\n\n```\n" + rendered + "```\n"
}

func codeBlock(command string) string {
	return "```bash\n" + command + "\n```\n"
}
