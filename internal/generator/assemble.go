package generator

import "strings"

// Assemble concatenates the present, non-empty sections in the fixed
// order title, description, installation, usage, structure, license.
// The result is trimmed and ends with exactly one newline.
func Assemble(sections map[Section]string) string {
	var parts []string
	for _, key := range sectionOrder {
		if content, ok := sections[key]; ok && content != "" {
			parts = append(parts, strings.TrimSpace(content))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Exclude returns a copy of sections without the listed keys. Unknown
// keys are no-ops.
func Exclude(sections map[Section]string, excludeKeys []string) map[Section]string {
	drop := make(map[Section]struct{}, len(excludeKeys))
	for _, key := range excludeKeys {
		drop[Section(key)] = struct{}{}
	}
	out := make(map[Section]string, len(sections))
	for key, content := range sections {
		if _, skip := drop[key]; skip {
			continue
		}
		out[key] = content
	}
	return out
}

// Override returns a copy of sections where every non-empty entry of
// customContent replaces the generated content for its key. Run after
// Exclude, an override can reinstate a section that exclusion dropped.
func Override(sections map[Section]string, customContent map[string]string) map[Section]string {
	out := make(map[Section]string, len(sections))
	for key, content := range sections {
		out[key] = content
	}
	for key, content := range customContent {
		if content == "" || !KnownSection(key) {
			continue
		}
		out[Section(key)] = content
	}
	return out
}
