package validator

import "github.com/specweld/specweld/fragment"

// Option is a function that configures a validation run.
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation run.
type validateConfig struct {
	logger      fragment.Logger
	conformance bool
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{logger: fragment.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger used during validation.
// Default: fragment.NopLogger.
func WithLogger(logger fragment.Logger) Option {
	return func(cfg *validateConfig) error {
		if logger == nil {
			logger = fragment.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithConformance enables the kin-openapi conformance pass in addition to
// the structural checks. Default: off.
func WithConformance(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.conformance = enabled
		return nil
	}
}
