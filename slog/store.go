// Package slog provides logging decorators for the sanitizer's
// interfaces, built on the standard library's structured logger.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsweep"
)

// Ensure LoggingStore implements docsweep.FileStore.
var _ docsweep.FileStore = (*LoggingStore)(nil)

// LoggingStore wraps a FileStore with read/write logging. Writes are
// logged with a content hash so successive runs over the same tree can
// be correlated from the logs alone.
type LoggingStore struct {
	next   docsweep.FileStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next docsweep.FileStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// ReadFile logs the path being read and delegates to the wrapped store.
func (s *LoggingStore) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile logs the rewrite and delegates to the wrapped store.
func (s *LoggingStore) WriteFile(ctx context.Context, path, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("rewrite file",
			"path", path,
			"bytes", len(content),
			"hash", contentHash(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, content)
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
