package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/merger"
	"github.com/specweld/specweld/validator"
)

// ValidateFlags contains flags for the validate command.
type ValidateFlags struct {
	*RepoFlags
	Conformance bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate
// command. Returns the FlagSet and the bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{RepoFlags: AddRepoFlags(fs)}

	fs.BoolVar(&flags.Conformance, "conformance", false, "also run the deep OpenAPI 3 conformance pass")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: specweld validate [flags]\n\n")
		Writef(fs.Output(), "Validate the full spec of each configured API version. An already written\n")
		Writef(fs.Output(), "<spec-dir>/<version>/<full-spec-file> is validated as-is; otherwise the\n")
		Writef(fs.Output(), "fragment tree is merged in memory first.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  specweld validate\n")
		Writef(fs.Output(), "  specweld validate -a v1 --conformance\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    All versions valid\n")
		Writef(fs.Output(), "  1    Any error-severity issue, or a load/merge failure\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command.
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := flags.LoadConfig()
	if err != nil {
		return err
	}
	logger, flush := NewLogger(flags.Verbose)
	defer flush()
	specRoot := flags.SpecRoot(cfg)

	failed := 0
	for _, version := range cfg.Versions {
		spec, err := loadOrMerge(specRoot, version, cfg.FullSpecFile, logger)
		if err != nil {
			return fmt.Errorf("preparing %s: %w", version, err)
		}

		report, err := validator.Validate(spec,
			validator.WithLogger(logger), validator.WithConformance(flags.Conformance))
		if err != nil {
			return fmt.Errorf("validating %s: %w", version, err)
		}

		PrintIssues(report.Issues)
		if report.Valid() {
			Writef(os.Stdout, "✓ %s: valid", version)
			if report.WarningCount > 0 {
				Writef(os.Stdout, " with %d warning(s)", report.WarningCount)
			}
			Writef(os.Stdout, "\n")
		} else {
			Writef(os.Stdout, "✗ %s: %d error(s)", version, report.ErrorCount)
			if report.WarningCount > 0 {
				Writef(os.Stdout, ", %d warning(s)", report.WarningCount)
			}
			Writef(os.Stdout, "\n")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d version(s)", failed, len(cfg.Versions))
	}
	return nil
}

// loadOrMerge returns the version's full spec: the written full-spec file
// when present, else an in-memory merge of its fragment tree.
func loadOrMerge(specRoot, version, fullSpecFile string, logger fragment.Logger) (*fragment.FullSpec, error) {
	path := filepath.Join(specRoot, version, fullSpecFile)
	if _, err := os.Stat(path); err == nil {
		return fragment.LoadFullSpec(path, version)
	}

	set, err := fragment.Load(specRoot, version,
		fragment.WithLogger(logger), fragment.WithFullSpecName(fullSpecFile))
	if err != nil {
		return nil, err
	}
	result, err := merger.Merge(set, merger.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return result.Spec, nil
}
