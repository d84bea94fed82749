package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingTarget(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "gone"), Overrides{}, nil)
	assert.Error(t, err)
}

func TestNew_TargetIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := New(file, Overrides{}, nil)
	assert.Error(t, err)
}

func TestNew_OverridesBeatConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".readme-config.json"), []byte(`{"maxDepth": 5}`), 0o600))

	a, err := New(dir, Overrides{MaxDepth: 2}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Config().MaxDepth)
}

func TestGenerateAndWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"demo","description":"desc"}`), 0o600))

	a, err := New(dir, Overrides{}, nil)
	require.NoError(t, err)

	doc, err := a.Generate(dir)
	require.NoError(t, err)
	assert.Contains(t, doc, "# demo")

	out := OutputPath(dir)
	require.NoError(t, a.Write(out, doc, false))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, doc, string(written))
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	out := OutputPath(dir)
	require.NoError(t, os.WriteFile(out, []byte("old"), 0o600))

	a, err := New(dir, Overrides{}, nil)
	require.NoError(t, err)

	err = a.Write(out, "new", false)
	assert.ErrorIs(t, err, ErrDocumentExists)

	content, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(content))

	require.NoError(t, a.Write(out, "new", true))
	content, readErr = os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "new", string(content))
}
