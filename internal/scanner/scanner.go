// Package scanner builds an in-memory tree of a project directory,
// bounded by depth and a fixed set of exclusion rules.
package scanner

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultMaxDepth bounds the scan when the caller does not override it.
const DefaultMaxDepth = 3

// NodeType distinguishes files from directories in the scanned tree.
type NodeType string

const (
	NodeFile      NodeType = "file"
	NodeDirectory NodeType = "directory"
)

// Node is one filesystem entry. A file node never has children; a
// directory node owns its children exclusively, so the result is a
// tree, never a graph.
type Node struct {
	Name     string
	Type     NodeType
	Path     string
	Children []*Node
}

// IsDir reports whether the node represents a directory.
func (n *Node) IsDir() bool {
	return n.Type == NodeDirectory
}

// FileNames returns the base names of every file leaf in the tree, in
// traversal order.
func (n *Node) FileNames() []string {
	var names []string
	n.walkFiles(&names)
	return names
}

func (n *Node) walkFiles(names *[]string) {
	if n.Type == NodeFile {
		*names = append(*names, n.Name)
		return
	}
	for _, c := range n.Children {
		c.walkFiles(names)
	}
}

// skipDirs are generated or dependency output directories that never
// belong in a project structure overview.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"dist":         {},
	"build":        {},
	"target":       {},
	"vendor":       {},
	"__pycache__":  {},
	"coverage":     {},
	".git":         {},
	".hg":          {},
	".svn":         {},
}

// keepDotfiles are dot-prefixed entries included despite the general
// hidden-entry rule.
var keepDotfiles = map[string]struct{}{
	".gitignore": {},
}

// Options controls a single scan.
type Options struct {
	// MaxDepth is the directory nesting bound; non-positive values fall
	// back to DefaultMaxDepth.
	MaxDepth int
	// IncludeHidden keeps dot-prefixed entries instead of skipping them.
	IncludeHidden bool
	// Logger receives debug lines for skipped entries. Optional.
	Logger *slog.Logger
}

// Scanner walks a directory tree. One Scanner may be reused; each Scan
// call keeps its own visited-path set.
type Scanner struct {
	maxDepth      int
	includeHidden bool
	logger        *slog.Logger
}

func New(opts Options) *Scanner {
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		maxDepth:      depth,
		includeHidden: opts.IncludeHidden,
		logger:        logger,
	}
}

// Scan builds the node tree rooted at path. A file path yields a single
// leaf node regardless of depth settings. Entries that cannot be read
// (permissions, races, broken links) are skipped silently and their
// siblings still scanned; only a stat or read failure on the root
// itself is an error, since the caller guarantees the root is a
// readable location.
func (s *Scanner) Scan(path string) (*Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return &Node{Name: filepath.Base(path), Type: NodeFile, Path: path}, nil
	}

	gi := loadGitignore(path)
	visited := make(map[string]struct{})
	if real, err := filepath.EvalSymlinks(path); err == nil {
		visited[real] = struct{}{}
	}
	return s.scanDir(path, path, 0, gi, visited)
}

// scanDir builds the node for one directory. An unreadable directory is
// reported to the caller, which drops the entry so it never shows up
// looking like an empty or depth-bounded one. Symlink cycles are broken
// by the visited set: a directory whose resolved path was already
// entered is treated like an unreadable entry and skipped.
func (s *Scanner) scanDir(root, path string, depth int, gi *ignore.GitIgnore, visited map[string]struct{}) (*Node, error) {
	node := &Node{Name: filepath.Base(path), Type: NodeDirectory, Path: path}
	if depth >= s.maxDepth {
		// The node still exists so the tree shape says "present but not
		// expanded", not "empty".
		return node, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if s.excluded(root, path, name, entry.IsDir(), gi) {
			continue
		}
		childPath := filepath.Join(path, name)

		if !entry.IsDir() {
			// Follow directory symlinks so linked trees render, but
			// never a second time.
			if entry.Type()&os.ModeSymlink != 0 {
				target, err := os.Stat(childPath)
				if err != nil {
					s.logger.Debug("skipping broken symlink", "path", childPath)
					continue
				}
				if !target.IsDir() {
					node.Children = append(node.Children, &Node{Name: name, Type: NodeFile, Path: childPath})
					continue
				}
			} else {
				node.Children = append(node.Children, &Node{Name: name, Type: NodeFile, Path: childPath})
				continue
			}
		}

		real, err := filepath.EvalSymlinks(childPath)
		if err != nil {
			s.logger.Debug("skipping unresolvable entry", "path", childPath, "error", err)
			continue
		}
		if _, seen := visited[real]; seen {
			s.logger.Debug("skipping symlink cycle", "path", childPath)
			continue
		}
		visited[real] = struct{}{}

		child, err := s.scanDir(root, childPath, depth+1, gi, visited)
		if err != nil {
			s.logger.Debug("skipping unreadable directory", "path", childPath, "error", err)
			continue
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (s *Scanner) excluded(root, dir, name string, isDir bool, gi *ignore.GitIgnore) bool {
	if strings.HasPrefix(name, ".") && !s.includeHidden {
		if _, keep := keepDotfiles[name]; !keep {
			return true
		}
	}
	if isDir {
		if _, skip := skipDirs[name]; skip {
			return true
		}
	}
	if gi != nil {
		if rel, err := filepath.Rel(root, filepath.Join(dir, name)); err == nil {
			if isDir {
				rel += "/"
			}
			if gi.MatchesPath(rel) {
				return true
			}
		}
	}
	return false
}

// loadGitignore compiles the root .gitignore when present, nil otherwise.
func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
