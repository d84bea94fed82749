package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/readme-forge/internal/scanner"
)

func dirNode(path string, children ...*scanner.Node) *scanner.Node {
	return &scanner.Node{Name: base(path), Type: scanner.NodeDirectory, Path: path, Children: children}
}

func fileNode(path string) *scanner.Node {
	return &scanner.Node{Name: base(path), Type: scanner.NodeFile, Path: path}
}

func base(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

func TestClassify(t *testing.T) {
	tree := dirNode("proj",
		dirNode("proj/src",
			fileNode("proj/src/main.ts"),
			dirNode("proj/src/__tests__"),
		),
		dirNode("proj/Tests"),
		dirNode("proj/config"),
		dirNode("proj/docs"),
		fileNode("proj/readme.md"),
	)

	c := Classify(tree)

	assert.Equal(t, []string{"proj/src"}, c.Source)
	assert.Equal(t, []string{"proj/src/__tests__", "proj/Tests"}, c.Test)
	assert.Equal(t, []string{"proj/config"}, c.Config)
}

func TestClassify_NoMatches(t *testing.T) {
	tree := dirNode("proj", dirNode("proj/docs"), fileNode("proj/a.go"))

	c := Classify(tree)

	assert.Empty(t, c.Source)
	assert.Empty(t, c.Test)
	assert.Empty(t, c.Config)
}

func TestClassify_Nil(t *testing.T) {
	c := Classify(nil)
	assert.Empty(t, c.Source)
}
