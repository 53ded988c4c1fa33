// Package config loads the specweld repository configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Defaults applied when the configuration file or a key is absent.
const (
	// DefaultConfigDir is where the configuration file is looked up.
	DefaultConfigDir = "config"
	// DefaultSpecDir is the root of the fragment trees.
	DefaultSpecDir = "spec"
	// DefaultFullSpecFile is the merged specification file name.
	DefaultFullSpecFile = "full_spec.yaml"
	// DefaultGroup is the splitter's fallback group name.
	DefaultGroup = "misc"
)

// Config describes one spec repository. It is constructed once and passed
// by value into the pipeline; core packages never read the environment.
type Config struct {
	// Versions lists the API version tags to process (e.g., ["v1", "v2"])
	Versions []string
	// SpecDir is the fragment tree root, relative to the repository
	SpecDir string
	// FullSpecFile is the merged spec file name within each version dir
	FullSpecFile string
	// DefaultGroup is the group name for entries no convention claims
	DefaultGroup string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Versions:     []string{"v1"},
		SpecDir:      DefaultSpecDir,
		FullSpecFile: DefaultFullSpecFile,
		DefaultGroup: DefaultGroup,
	}
}

// Load reads <configDir>/config.yaml. A missing file yields Default();
// a present but malformed file is an error. Unknown keys are ignored.
func Load(configDir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetDefault("spec_versions", []string{"v1"})
	v.SetDefault("spec_dir", DefaultSpecDir)
	v.SetDefault("full_spec_file", DefaultFullSpecFile)
	v.SetDefault("default_group", DefaultGroup)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading %s/config.yaml: %w", configDir, err)
	}

	cfg := Config{
		Versions:     v.GetStringSlice("spec_versions"),
		SpecDir:      v.GetString("spec_dir"),
		FullSpecFile: v.GetString("full_spec_file"),
		DefaultGroup: v.GetString("default_group"),
	}
	if len(cfg.Versions) == 0 {
		cfg.Versions = []string{"v1"}
	}
	return cfg, nil
}
