package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/readme-forge/internal/scanner"
)

func newTestAnalyzer() *Analyzer {
	return New(scanner.New(scanner.Options{}), nil)
}

func TestAnalyze_NPMProject(t *testing.T) {
	dir := t.TempDir()
	pkg := `{
		"name": "demo",
		"description": "desc",
		"main": "index.js",
		"scripts": {"start": "node index.js", "test": "jest"},
		"dependencies": {"react": "^18.0.0"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ts"), []byte("export {}"), 0o600))

	meta, err := newTestAnalyzer().Analyze(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", meta.Name)
	assert.Equal(t, "desc", meta.Description)
	assert.Equal(t, "TypeScript", meta.Language)
	assert.Equal(t, "index.js", meta.EntryPoint)
	assert.Equal(t, map[string]string{"start": "node index.js", "test": "jest"}, meta.Scripts)
	assert.GreaterOrEqual(t, len(meta.Dependencies), 1)
	assert.Equal(t, scanner.NodeDirectory, meta.Structure.Type)
}

func TestAnalyze_BareDirectoryDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600))

	meta, err := newTestAnalyzer().Analyze(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), meta.Name)
	assert.Empty(t, meta.Description)
	assert.Equal(t, UnknownLanguage, meta.Language)
	assert.Empty(t, meta.EntryPoint)
	assert.Empty(t, meta.Scripts)
	assert.Empty(t, meta.Dependencies)
}

func TestAnalyze_BinEntryPoint(t *testing.T) {
	dir := t.TempDir()
	pkg := `{"name":"tool","bin":{"tool":"cli.js","aux":"aux.js"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0o600))

	meta, err := newTestAnalyzer().Analyze(dir)
	require.NoError(t, err)

	assert.Equal(t, "aux.js", meta.EntryPoint, "first bin name in sorted order")
}

func TestAnalyze_NameFromLaterManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"crate-name\"\n"), 0o600))

	meta, err := newTestAnalyzer().Analyze(dir)
	require.NoError(t, err)

	assert.Equal(t, "crate-name", meta.Name)
}

func TestAnalyze_RelativeRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0o600))
	t.Chdir(dir)

	meta, err := newTestAnalyzer().Analyze(".")
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), meta.Name, "name must never degrade to %q", ".")
	assert.Equal(t, "Go", meta.Language)
}

func TestAnalyze_MissingRoot(t *testing.T) {
	_, err := newTestAnalyzer().Analyze(filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}
