package generator

import (
	"strings"

	"github.com/sevigo/readme-forge/internal/scanner"
)

// indentUnit is the fixed-width indent repeated per nesting level.
const indentUnit = "  "

// RenderTree renders the descendants of node as an indented listing.
// The root itself contributes no line. Directory lines carry a trailing
// separator to distinguish them from files. Nodes deeper than maxDepth
// are omitted without a truncation marker.
func RenderTree(node *scanner.Node, maxDepth int) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range node.Children {
		renderNode(&b, child, 1, maxDepth)
	}
	return b.String()
}

func renderNode(b *strings.Builder, node *scanner.Node, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}
	b.WriteString(strings.Repeat(indentUnit, depth-1))
	b.WriteString(node.Name)
	if node.IsDir() {
		b.WriteString("/")
	}
	b.WriteString("\n")
	for _, child := range node.Children {
		renderNode(b, child, depth+1, maxDepth)
	}
}
