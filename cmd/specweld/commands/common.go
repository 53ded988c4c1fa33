// Package commands provides CLI command handlers for specweld.
package commands

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/specweld/specweld/config"
	"github.com/specweld/specweld/internal/cliutil"
)

// Environment variables consulted for flag defaults. The environment is
// read only here in the CLI layer; core packages take explicit values.
const (
	EnvSpecRepoDir  = "SPECWELD_SPEC_REPO_DIR"
	EnvConfigDir    = "SPECWELD_CONFIG_DIR"
	EnvSpecDir      = "SPECWELD_SPEC_DIR"
	EnvFullSpecFile = "SPECWELD_FULL_SPEC_FILE"
	EnvAPIVersion   = "SPECWELD_API_VERSION"
)

// EnvOr returns the environment value for key when set, else fallback.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RepoFlags holds the flags shared by the commands that operate on a spec
// repository.
type RepoFlags struct {
	RepoDir      string
	ConfigDir    string
	SpecDir      string
	FullSpecFile string
	APIVersion   string
	Verbose      bool
}

// AddRepoFlags binds the shared repository flags onto fs.
func AddRepoFlags(fs *flag.FlagSet) *RepoFlags {
	flags := &RepoFlags{}

	fs.StringVar(&flags.RepoDir, "r", EnvOr(EnvSpecRepoDir, "."), "spec repository root directory")
	fs.StringVar(&flags.RepoDir, "spec-repo-dir", EnvOr(EnvSpecRepoDir, "."), "spec repository root directory")
	fs.StringVar(&flags.ConfigDir, "c", EnvOr(EnvConfigDir, config.DefaultConfigDir), "config directory within the repository")
	fs.StringVar(&flags.ConfigDir, "config-dir", EnvOr(EnvConfigDir, config.DefaultConfigDir), "config directory within the repository")
	fs.StringVar(&flags.SpecDir, "s", EnvOr(EnvSpecDir, ""), "spec directory within the repository (overrides config)")
	fs.StringVar(&flags.SpecDir, "spec-dir", EnvOr(EnvSpecDir, ""), "spec directory within the repository (overrides config)")
	fs.StringVar(&flags.FullSpecFile, "f", EnvOr(EnvFullSpecFile, ""), "full spec file name (overrides config)")
	fs.StringVar(&flags.FullSpecFile, "full-spec-file", EnvOr(EnvFullSpecFile, ""), "full spec file name (overrides config)")
	fs.StringVar(&flags.APIVersion, "a", EnvOr(EnvAPIVersion, ""), "process only this API version")
	fs.StringVar(&flags.APIVersion, "api-version", EnvOr(EnvAPIVersion, ""), "process only this API version")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose logging to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose logging to stderr")

	return flags
}

// LoadConfig reads the repository configuration and applies flag overrides.
func (f *RepoFlags) LoadConfig() (config.Config, error) {
	cfg, err := config.Load(filepath.Join(f.RepoDir, f.ConfigDir))
	if err != nil {
		return cfg, err
	}
	if f.SpecDir != "" {
		cfg.SpecDir = f.SpecDir
	}
	if f.FullSpecFile != "" {
		cfg.FullSpecFile = f.FullSpecFile
	}
	if f.APIVersion != "" {
		cfg.Versions = []string{f.APIVersion}
	}
	return cfg, nil
}

// SpecRoot returns the fragment tree root for the loaded configuration.
func (f *RepoFlags) SpecRoot(cfg config.Config) string {
	return filepath.Join(f.RepoDir, cfg.SpecDir)
}

// Writef writes formatted output to the writer, logging write failures to
// stderr.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}
