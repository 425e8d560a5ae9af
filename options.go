package backer

import "fmt"

// Option is a functional option for configuring an Engine.
type Option func(*config) error

type config struct {
	clock     Clock
	cache     bool
	logPrefix string
}

func defaultConfig() config {
	return config{
		clock: systemClock{},
		cache: true,
	}
}

// WithClock sets the clock sampled at the start of every pass.
// Default is the system clock.
func WithClock(c Clock) Option {
	return func(cfg *config) error {
		if c == nil {
			return fmt.Errorf("clock must not be nil")
		}
		cfg.clock = c
		return nil
	}
}

// WithoutCache disables constraint memoization. Results are identical; only
// the amount of work changes.
func WithoutCache() Option {
	return func(cfg *config) error {
		cfg.cache = false
		return nil
	}
}

// WithLogPrefix prefixes the engine's debug log lines, which helps when
// several engines share one log.
func WithLogPrefix(prefix string) Option {
	return func(cfg *config) error {
		if prefix == "" {
			return fmt.Errorf("log prefix must not be empty")
		}
		cfg.logPrefix = prefix + " "
		return nil
	}
}
