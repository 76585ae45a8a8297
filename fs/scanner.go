// Package fs provides filesystem-backed implementations of file
// discovery and storage for the sanitizer.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsweep"
	ignore "github.com/sabhiram/go-gitignore"
)

// Ensure Scanner implements docsweep.Scanner at compile time.
var _ docsweep.Scanner = (*Scanner)(nil)

// Scanner walks a directory tree and returns every regular file with an
// included extension whose path contains no excluded directory name.
type Scanner struct {
	extensions map[string]bool
	excluded   *ignore.GitIgnore
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtensions replaces the default extension set. Extensions must
// include the leading dot; matching is case-insensitive.
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) {
		s.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			s.extensions[strings.ToLower(ext)] = true
		}
	}
}

// WithExcludedDirs replaces the default excluded directory names.
func WithExcludedDirs(names ...string) Option {
	return func(s *Scanner) {
		s.excluded = compileExcludes(names)
	}
}

// NewScanner creates a Scanner with the default filters
// (docsweep.IncludedExtensions and docsweep.ExcludedDirs).
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		extensions: docsweep.IncludedExtensions,
		excluded:   compileExcludes(docsweep.ExcludedDirs),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// compileExcludes builds a gitignore-style matcher from directory
// names. The trailing slash restricts each pattern to directories, at
// any depth.
func compileExcludes(names []string) *ignore.GitIgnore {
	patterns := make([]string, len(names))
	for i, name := range names {
		patterns[i] = name + "/"
	}
	return ignore.CompileIgnoreLines(patterns...)
}

// Scan returns all eligible files under root. Traversal order is not
// guaranteed. Any traversal error aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, docsweep.Errorf(docsweep.ENOTFOUND, "root %q not found", root)
	}
	if !info.IsDir() {
		return nil, docsweep.Errorf(docsweep.EINVALID, "root %q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if s.excluded.MatchesPath(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !s.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
