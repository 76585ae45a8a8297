package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsweep"
)

// Ensure LoggingScanner implements docsweep.Scanner.
var _ docsweep.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with discovery logging.
type LoggingScanner struct {
	next   docsweep.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next docsweep.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan logs the scan outcome and delegates to the wrapped scanner.
func (s *LoggingScanner) Scan(ctx context.Context, root string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scan",
			"root", root,
			"files", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx, root)
}
