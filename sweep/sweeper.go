// Package sweep provides the sanitization run orchestration. It
// coordinates file discovery, per-file transformation, and conditional
// rewrite of changed files.
package sweep

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docsweep"
	"github.com/google/uuid"
)

// Sweeper runs the sanitization pass over a documentation tree.
// Files are processed sequentially; the first failure aborts the run.
type Sweeper struct {
	Files docsweep.Scanner
	Store docsweep.FileStore

	// Rules are the phrase rewriting rules applied to every line.
	// Defaults to docsweep.DefaultRules when nil.
	Rules []docsweep.Rule
}

// Run scans root, sanitizes every eligible file, and overwrites the
// files whose content changed. The report lists the changed files as
// sorted slash-separated paths relative to root.
func (s *Sweeper) Run(ctx context.Context, root string) (*docsweep.Report, error) {
	rules := s.Rules
	if rules == nil {
		rules = docsweep.DefaultRules()
	}

	paths, err := s.Files.Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	report := &docsweep.Report{
		RunID:   uuid.NewString(),
		Root:    root,
		Scanned: len(paths),
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		original, err := s.Store.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		clean, changed := docsweep.Sanitize(original, rules)
		if !changed {
			continue
		}

		if err := s.Store.WriteFile(ctx, path, clean); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}

		report.Changed = append(report.Changed, relativePath(root, path))
	}

	report.Sort()
	return report, nil
}

// relativePath renders path relative to root with forward slashes.
// Falls back to the path as given when it is not relative to root.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
