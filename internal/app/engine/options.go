package engine

import (
	"io"
	"time"
)

// Option customizes an Engine.
type Option func(*Engine)

// WithEntropy overrides the trade identifier entropy source. Tests pass a
// deterministic reader to get stable trade identifiers.
func WithEntropy(entropy io.Reader) Option {
	return func(e *Engine) {
		e.entropy = entropy
	}
}

// WithClock overrides the wall clock used to timestamp trade identifiers.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}
