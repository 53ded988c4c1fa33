package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/splitter"
)

// SplitFlags contains flags for the split command.
type SplitFlags struct {
	*RepoFlags
	Input string
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
// Returns the FlagSet and the bound flag variables.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{RepoFlags: AddRepoFlags(fs)}

	fs.StringVar(&flags.Input, "i", "", "input full-spec file (required)")
	fs.StringVar(&flags.Input, "input", "", "input full-spec file (required)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: specweld split [flags] -i <full-spec-file>\n\n")
		Writef(fs.Output(), "Split a full spec into the fragment tree under <spec-dir>/<api-version>/.\n")
		Writef(fs.Output(), "Path entries are grouped by operation tag, components follow the groups\n")
		Writef(fs.Output(), "that reference them, and shared components land in <category>/shared.yaml.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  specweld split -i downloaded_spec.yaml\n")
		Writef(fs.Output(), "  specweld split -i spec/v2/full_spec.yaml -a v2\n")
	}

	return fs, flags
}

// HandleSplit executes the split command.
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.Input == "" {
		fs.Usage()
		return fmt.Errorf("input full-spec file is required (use -i or --input)")
	}

	cfg, err := flags.LoadConfig()
	if err != nil {
		return err
	}
	version := flags.APIVersion
	if version == "" {
		version = cfg.Versions[0]
	}
	logger, flush := NewLogger(flags.Verbose)
	defer flush()

	spec, err := fragment.LoadFullSpec(flags.Input, version)
	if err != nil {
		return fmt.Errorf("loading full spec: %w", err)
	}

	result, err := splitter.Split(spec,
		splitter.WithLogger(logger), splitter.WithDefaultGroup(cfg.DefaultGroup))
	if err != nil {
		return fmt.Errorf("splitting %s: %w", version, err)
	}

	specRoot := flags.SpecRoot(cfg)
	if err := splitter.WriteResult(result, specRoot); err != nil {
		return fmt.Errorf("writing fragment tree: %w", err)
	}

	for _, warning := range result.Warnings {
		Writef(os.Stderr, "  ⚠ %s\n", warning)
	}
	Writef(os.Stdout, "✓ %s: wrote %d fragments under %s\n",
		version, result.Set.Len(), specRoot)
	return nil
}
