package analyzer

import (
	"strings"

	"github.com/sevigo/readme-forge/internal/scanner"
)

// Classification buckets directory paths by conventional role. Bucket
// order follows tree traversal order.
type Classification struct {
	Source []string
	Test   []string
	Config []string
}

// The three pattern sets are disjoint, so a directory lands in at most
// one bucket.
var (
	sourceDirs = map[string]struct{}{"src": {}, "lib": {}, "source": {}, "app": {}}
	testDirs   = map[string]struct{}{"test": {}, "tests": {}, "__tests__": {}, "spec": {}, "specs": {}}
	configDirs = map[string]struct{}{"config": {}, "configuration": {}, ".config": {}}
)

// Classify walks the whole scanned tree and assigns every directory
// node whose lowercased base name matches a known pattern to its bucket.
func Classify(tree *scanner.Node) Classification {
	var c Classification
	classifyNode(tree, &c)
	return c
}

func classifyNode(n *scanner.Node, c *Classification) {
	if n == nil {
		return
	}
	if n.IsDir() {
		name := strings.ToLower(n.Name)
		switch {
		case memberOf(sourceDirs, name):
			c.Source = append(c.Source, n.Path)
		case memberOf(testDirs, name):
			c.Test = append(c.Test, n.Path)
		case memberOf(configDirs, name):
			c.Config = append(c.Config, n.Path)
		}
	}
	for _, child := range n.Children {
		classifyNode(child, c)
	}
}

func memberOf(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
