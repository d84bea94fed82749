package generator

import (
	"os"
	"path/filepath"
	"strings"
)

// licenseFiles are probed at the project root, in order.
var licenseFiles = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"}

// GenerateLicense probes the conventional license files and emits a
// license section naming the detected license family. No license file
// means no section.
func GenerateLicense(root string) string {
	for _, name := range licenseFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		label := detectLicense(string(data))
		if label == "" {
			return "## License\n\nSee [" + name + "](" + name + ").\n"
		}
		return "## License\n\nThis project is licensed under the " + label + " license - see [" + name + "](" + name + ").\n"
	}
	return ""
}

// detectLicense identifies common license families from the text head.
func detectLicense(text string) string {
	head := strings.ToLower(text)
	if len(head) > 512 {
		head = head[:512]
	}
	switch {
	case strings.Contains(head, "mit license"):
		return "MIT"
	case strings.Contains(head, "apache license"):
		return "Apache-2.0"
	case strings.Contains(head, "gnu lesser general public license"):
		return "LGPL"
	case strings.Contains(head, "gnu general public license"):
		return "GPL"
	case strings.Contains(head, "mozilla public license"):
		return "MPL-2.0"
	case strings.Contains(head, "bsd"):
		return "BSD"
	}
	return ""
}
