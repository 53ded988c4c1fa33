package merger

import "github.com/specweld/specweld/fragment"

// Option is a function that configures a merge operation.
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation.
type mergeConfig struct {
	logger fragment.Logger
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*mergeConfig, error) {
	cfg := &mergeConfig{logger: fragment.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger used during merging.
// Default: fragment.NopLogger.
func WithLogger(logger fragment.Logger) Option {
	return func(cfg *mergeConfig) error {
		if logger == nil {
			logger = fragment.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
