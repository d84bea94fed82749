package analyzer

import (
	"path/filepath"
	"strings"
)

// UnknownLanguage is returned when no file extension maps to a known
// language.
const UnknownLanguage = "Unknown"

// languageByExt maps lowercased file extensions to display labels.
var languageByExt = map[string]string{
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".py":   "Python",
	".rs":   "Rust",
	".go":   "Go",
	".java": "Java",
	".cpp":  "C++",
	".c":    "C",
	".rb":   "Ruby",
	".php":  "PHP",
}

// DetectLanguage tallies recognized extensions across fileNames and
// returns the label with the strictly greatest count. Ties resolve to
// the extension encountered first in the input, which keeps the result
// a pure function of the sequence. No extension or no recognized
// extension yields UnknownLanguage.
func DetectLanguage(fileNames []string) string {
	counts := make(map[string]int)
	var order []string

	for _, name := range fileNames {
		ext := strings.ToLower(filepath.Ext(name))
		if ext == "" {
			continue
		}
		if _, seen := counts[ext]; !seen {
			order = append(order, ext)
		}
		counts[ext]++
	}

	best := ""
	bestCount := 0
	for _, ext := range order {
		if _, known := languageByExt[ext]; !known {
			continue
		}
		if counts[ext] > bestCount {
			best = ext
			bestCount = counts[ext]
		}
	}
	if best == "" {
		return UnknownLanguage
	}
	return languageByExt[best]
}
