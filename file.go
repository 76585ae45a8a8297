package docsweep

import (
	"context"
	"sort"
	"strings"
)

// IncludedExtensions is the set of file suffixes eligible for
// sanitization. Keys are lowercase; matching is case-insensitive.
var IncludedExtensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
	".rst":      true,
	".txt":      true,
}

// ExcludedDirs lists directory names that exclude a file from
// processing when they appear anywhere in its path.
var ExcludedDirs = []string{"node_modules", ".git", "dist", "build"}

// Scanner discovers candidate files under a root directory.
// Implementations hide traversal and filtering; no traversal order is
// guaranteed.
type Scanner interface {
	Scan(ctx context.Context, root string) ([]string, error)
}

// FileStore reads and writes whole text files.
type FileStore interface {
	// ReadFile returns the full contents of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile overwrites the file at path with content.
	WriteFile(ctx context.Context, path, content string) error
}

// Report summarizes a sanitization run.
type Report struct {
	RunID   string   `json:"runId"`
	Root    string   `json:"root"`
	Scanned int      `json:"scanned"`
	Changed []string `json:"changed"` // relative slash-separated paths
}

// Sort orders the changed paths for deterministic output.
func (r *Report) Sort() {
	sort.Strings(r.Changed)
}

// Format renders the report for display: the changed paths one per
// line, or a fixed message when nothing changed.
func (r *Report) Format() string {
	if len(r.Changed) == 0 {
		return "No changes needed."
	}
	return "Updated files:\n" + strings.Join(r.Changed, "\n")
}
