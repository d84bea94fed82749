package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemble_FixedOrder(t *testing.T) {
	sections := map[Section]string{
		SectionLicense:      "## License\nMIT",
		SectionTitle:        "# demo",
		SectionUsage:        "## Usage",
		SectionInstallation: "## Installation\nnpm install",
	}

	out := Assemble(sections)

	offsets := []int{
		strings.Index(out, "# demo"),
		strings.Index(out, "## Installation"),
		strings.Index(out, "## Usage"),
		strings.Index(out, "## License"),
	}
	for i := 1; i < len(offsets); i++ {
		assert.Greater(t, offsets[i], offsets[i-1])
	}
}

func TestAssemble_SkipsEmptySections(t *testing.T) {
	out := Assemble(map[Section]string{
		SectionTitle:       "# demo",
		SectionDescription: "",
		SectionUsage:       "## Usage",
	})

	assert.Equal(t, "# demo\n\n## Usage\n", out)
}

func TestAssemble_TrailingNewline(t *testing.T) {
	out := Assemble(map[Section]string{SectionTitle: "\n\n# demo\n\n\n"})
	assert.Equal(t, "# demo\n", out)
}

func TestAssemble_Empty(t *testing.T) {
	assert.Empty(t, Assemble(nil))
	assert.Empty(t, Assemble(map[Section]string{SectionTitle: ""}))
}

func TestExclude(t *testing.T) {
	sections := map[Section]string{SectionTitle: "T", SectionDescription: "D"}

	out := Exclude(sections, []string{"description", "no-such-section"})

	assert.Equal(t, map[Section]string{SectionTitle: "T"}, out)
	// input untouched
	assert.Len(t, sections, 2)
}

func TestOverride(t *testing.T) {
	sections := map[Section]string{SectionTitle: "T"}

	out := Override(sections, map[string]string{
		"title":   "Custom",
		"usage":   "U",
		"unknown": "ignored",
		"license": "",
	})

	assert.Equal(t, "Custom", out[SectionTitle])
	assert.Equal(t, "U", out[SectionUsage])
	assert.NotContains(t, out, SectionLicense)
	assert.Len(t, out, 2)
}

func TestExcludeThenOverride_ReinstatesSection(t *testing.T) {
	sections := map[Section]string{SectionTitle: "T", SectionDescription: "D"}

	out := Override(
		Exclude(sections, []string{"description"}),
		map[string]string{"description": "X"},
	)

	assert.Equal(t, map[Section]string{SectionTitle: "T", SectionDescription: "X"}, out)
}
