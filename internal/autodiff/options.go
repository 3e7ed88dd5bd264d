package autodiff

import "log/slog"

// Config controls engine behavior.
type Config struct {
	// CycleGuard enables cycle detection during sorting. Graphs built by
	// composing operations are acyclic, so it is off by default.
	CycleGuard bool

	// Logger receives debug-level engine events.
	Logger *slog.Logger
}

// DefaultConfig returns the trust-the-caller configuration.
func DefaultConfig() Config {
	return Config{
		CycleGuard: false,
		Logger:     slog.Default().With(slog.String("component", "autodiff")),
	}
}

// Option configures a TopologicalSort or Backpropagate call.
type Option func(*Config)

// WithCycleGuard makes the sort fail with ErrCycleDetected instead of
// looping on a cyclic graph.
func WithCycleGuard() Option {
	return func(c *Config) {
		c.CycleGuard = true
	}
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
