package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

var _ adgen.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. When a TokenCounter is
// set, prompt and response sizes are logged in tokens as well as bytes.
type LoggingCompleter struct {
	next    adgen.Completer
	counter adgen.TokenCounter
	logger  *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter. counter may be nil.
func NewLoggingCompleter(next adgen.Completer, counter adgen.TokenCounter, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, counter: counter, logger: logger}
}

// Complete delegates to the wrapped completer and logs the exchange.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"model", c.next.Model(),
			"prompt_bytes", len(prompt),
			"response_bytes", len(text),
			"duration", time.Since(begin),
		}
		if c.counter != nil {
			if n, cerr := c.counter.CountTokens(ctx, prompt); cerr == nil {
				attrs = append(attrs, "prompt_tokens", n)
			}
		}
		if err != nil {
			attrs = append(attrs, "overloaded", adgen.IsOverloaded(err), "err", err)
		}
		c.logger.Info("complete", attrs...)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}

// Model delegates to the wrapped completer.
func (c *LoggingCompleter) Model() string {
	return c.next.Model()
}
