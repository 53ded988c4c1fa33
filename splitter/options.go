package splitter

import (
	"fmt"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/naming"
)

// DefaultGroup is the fragment group that receives entries no grouping
// convention claims.
const DefaultGroup = "misc"

// Option is a function that configures a split operation.
type Option func(*splitConfig) error

// splitConfig holds configuration for a split operation.
type splitConfig struct {
	logger       fragment.Logger
	defaultGroup string
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*splitConfig, error) {
	cfg := &splitConfig{
		logger:       fragment.NopLogger{},
		defaultGroup: DefaultGroup,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger used during splitting.
// Default: fragment.NopLogger.
func WithLogger(logger fragment.Logger) Option {
	return func(cfg *splitConfig) error {
		if logger == nil {
			logger = fragment.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithDefaultGroup sets the group name for entries no convention claims.
// The name is normalized to a kebab-case file stem. Default: "misc".
func WithDefaultGroup(name string) Option {
	return func(cfg *splitConfig) error {
		normalized := naming.ToGroupName(name)
		if normalized == "" {
			return fmt.Errorf("default group %q normalizes to an empty name", name)
		}
		cfg.defaultGroup = normalized
		return nil
	}
}
