package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/issues"
	"github.com/specweld/specweld/merger"
	"github.com/specweld/specweld/validator"
)

// SetupGenerateFlags creates and configures a FlagSet for the generate
// command. Returns the FlagSet and the bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *RepoFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := AddRepoFlags(fs)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: specweld generate [flags]\n\n")
		Writef(fs.Output(), "Merge the fragment tree of each configured API version into a full spec,\n")
		Writef(fs.Output(), "validate it, and write it to <spec-dir>/<version>/<full-spec-file>.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  specweld generate\n")
		Writef(fs.Output(), "  specweld generate -r ./my-api -a v2\n")
		Writef(fs.Output(), "  specweld generate -s openapi -f bundle.yaml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    All versions merged and validated\n")
		Writef(fs.Output(), "  1    Load, merge, or validation failure\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command.
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no positional arguments")
	}

	cfg, err := flags.LoadConfig()
	if err != nil {
		return err
	}
	logger, flush := NewLogger(flags.Verbose)
	defer flush()
	specRoot := flags.SpecRoot(cfg)

	for _, version := range cfg.Versions {
		set, err := fragment.Load(specRoot, version,
			fragment.WithLogger(logger), fragment.WithFullSpecName(cfg.FullSpecFile))
		if err != nil {
			return fmt.Errorf("loading %s fragments: %w", version, err)
		}

		result, err := merger.Merge(set, merger.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("merging %s: %w", version, err)
		}

		report, err := validator.Validate(result.Spec, validator.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("validating %s: %w", version, err)
		}
		PrintIssues(report.Issues)
		if !report.Valid() {
			return fmt.Errorf("validation failed for %s: %d error(s)", version, report.ErrorCount)
		}

		outputPath := filepath.Join(specRoot, version, cfg.FullSpecFile)
		if err := merger.WriteResult(result, outputPath); err != nil {
			return fmt.Errorf("writing %s full spec: %w", version, err)
		}
		Writef(os.Stdout, "✓ %s: merged %d fragments (%d entries) into %s\n",
			version, result.Stats.FragmentCount, result.Stats.EntryCount, outputPath)
	}
	return nil
}

// PrintIssues writes validation issues to stderr, one per line.
func PrintIssues(list []issues.Issue) {
	for _, issue := range list {
		Writef(os.Stderr, "  %s\n", issue.String())
	}
}
