package fragment

import "fmt"

// DefaultFullSpecName is the file name the loader skips at the version root
// and the merger writes by default.
const DefaultFullSpecName = "full_spec.yaml"

// defaultParallelism bounds concurrent fragment file parses.
const defaultParallelism = 8

// Option is a function that configures a load operation.
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation.
type loadConfig struct {
	logger       Logger
	parallelism  int
	fullSpecName string
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		logger:       NopLogger{},
		parallelism:  defaultParallelism,
		fullSpecName: DefaultFullSpecName,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger used during loading.
// Default: NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *loadConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithParallelism bounds how many fragment files are parsed concurrently.
// Completion order never affects results; fragments are sorted by RelPath
// before the Set is returned.
// Default: 8.
func WithParallelism(n int) Option {
	return func(cfg *loadConfig) error {
		if n < 1 {
			return fmt.Errorf("parallelism must be at least 1, got %d", n)
		}
		cfg.parallelism = n
		return nil
	}
}

// WithFullSpecName sets the merged-spec file name the loader skips when it
// appears at the version root.
// Default: "full_spec.yaml".
func WithFullSpecName(name string) Option {
	return func(cfg *loadConfig) error {
		if name == "" {
			return fmt.Errorf("full spec name must not be empty")
		}
		cfg.fullSpecName = name
		return nil
	}
}
