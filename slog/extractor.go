package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

var _ adgen.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   adgen.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next adgen.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the block count.
func (e *LoggingExtractor) Extract(html string) (result *adgen.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var blocks int
		if result != nil {
			title, blocks = result.Title, len(result.Blocks)
		}
		e.logger.Info("extract",
			"title", title,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
