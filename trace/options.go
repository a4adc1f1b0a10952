package trace

import (
	"go.uber.org/zap"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/narration"
)

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds the collaborators and hooks used while generating a trace.
type Options struct {
	// Logger receives debug-level records at phase boundaries.
	Logger *zap.Logger

	// Narration resolves highlighted lines and variable lines.
	Narration *narration.Table

	// OnStep is called after each snapshot is recorded, with a private copy.
	OnStep func(s Snapshot)

	// OnLayer is called when a minute closes, with the new minute and the
	// number of cells infected during it.
	OnLayer func(minute, infected int)
}

// DefaultOptions returns Options with:
//   - zap.NewNop() logger
//   - narration.Default() table
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Narration: narration.Default(),
		OnStep:    func(Snapshot) {},
		OnLayer:   func(int, int) {},
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithNarration sets the line-correlation table. A nil table is ignored.
func WithNarration(t *narration.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Narration = t
		}
	}
}

// WithOnStep registers a callback run after each snapshot is recorded.
func WithOnStep(fn func(s Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnLayer registers a callback run when a minute closes.
func WithOnLayer(fn func(minute, infected int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}
