package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/apitypes"
	"github.com/erraggy/apitypes/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Format     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "treat a missing paths object as an error and suggest $schema")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only set the exit status, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only set the exit status, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: apitypes validate [flags] <schema>\n\n")
		Writef(fs.Output(), "Check a JSON Schema or OpenAPI document for the fields type generation relies on.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  apitypes validate schema.json\n")
		Writef(fs.Output(), "  apitypes validate --strict openapi.json\n")
		Writef(fs.Output(), "  apitypes validate --format json openapi.json | jq '.valid'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful (warnings allowed)\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command. An invalid document yields
// ErrValidationFailed after the report is printed.
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one schema file path")
	}

	specPath := fs.Arg(0)

	// Validate format flag early to fail fast before reading the file
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result, err := validator.ValidateWithOptions(
		validator.WithFilePath(specPath),
		validator.WithStrictMode(flags.Strict),
		validator.WithIncludeWarnings(!flags.NoWarnings),
		validator.WithLogger(logger()),
	)
	if err != nil {
		return fmt.Errorf("validating file: %w", err)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(os.Stdout, result, flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			return ErrValidationFailed
		}
		return nil
	}

	if !flags.Quiet {
		printValidationReport(result, specPath)
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

func printValidationReport(result *validator.ValidationResult, specPath string) {
	Writef(os.Stderr, "Schema Validator\n")
	Writef(os.Stderr, "================\n\n")
	Writef(os.Stderr, "apitypes version: %s\n", apitypes.Version())
	Writef(os.Stderr, "Schema: %s\n", specPath)
	Writef(os.Stderr, "Dialect: %s\n\n", result.DialectName)

	if result.Valid {
		Writef(os.Stderr, "✓ Schema is valid!\n")
		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "\nWarnings (%d):\n", result.WarningCount)
			for _, w := range result.Warnings {
				Writef(os.Stderr, "  %s\n", w.String())
			}
		}
		return
	}

	Writef(os.Stderr, "✗ Schema validation failed!\n")
	Writef(os.Stderr, "\nErrors (%d):\n", result.ErrorCount)
	for _, e := range result.Errors {
		Writef(os.Stderr, "  %s\n", e.String())
	}
	if len(result.Warnings) > 0 {
		Writef(os.Stderr, "\nWarnings (%d):\n", result.WarningCount)
		for _, w := range result.Warnings {
			Writef(os.Stderr, "  %s\n", w.String())
		}
	}
}
