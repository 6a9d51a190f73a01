package patterns

import (
	"log/slog"
	"time"
)

// DefaultMatchTimeout bounds a single match on an EngineBacktrack entry.
const DefaultMatchTimeout = 100 * time.Millisecond

type options struct {
	logger         *slog.Logger
	matchTimeout   time.Duration
	maxInputLength int
}

// Option configures a Registry.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:       slog.New(slog.DiscardHandler),
		matchTimeout: DefaultMatchTimeout,
	}
}

// WithLogger sets the logger used for build and match diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMatchTimeout sets the per-call time budget for backtracking entries.
// Non-positive values are ignored.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.matchTimeout = d
		}
	}
}

// WithMaxInputLength rejects inputs longer than n bytes as non-matching.
// Zero disables the limit.
func WithMaxInputLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxInputLength = n
		}
	}
}

// WithConfig applies values loaded by LoadConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		WithMatchTimeout(cfg.MatchTimeout)(o)
		WithMaxInputLength(cfg.MaxInputLength)(o)
	}
}
