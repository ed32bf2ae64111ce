package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/apitypes/internal/config"
	"github.com/erraggy/apitypes/internal/fileutil"
	"github.com/erraggy/apitypes/renderer"
	"github.com/erraggy/apitypes/schema"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Input       string
	Output      string
	Format      string
	NoComments  bool
	Export      string
	PackageName string
	Config      string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Input, "i", "", "input schema file (default: first of "+candidateList()+")")
	fs.StringVar(&flags.Input, "input", "", "input schema file")
	fs.StringVar(&flags.Output, "o", config.DefaultOutputPath, "output directory")
	fs.StringVar(&flags.Output, "output", config.DefaultOutputPath, "output directory")
	fs.StringVar(&flags.Format, "f", config.DefaultFormat, "output format: ts, js, json, or go")
	fs.StringVar(&flags.Format, "format", config.DefaultFormat, "output format: ts, js, json, or go")
	fs.BoolVar(&flags.NoComments, "no-comments", false, "omit the generated-file banner and descriptions")
	fs.StringVar(&flags.Export, "export", "named", "TypeScript export style: named, default, or both")
	fs.StringVar(&flags.PackageName, "package", renderer.DefaultPackageName, "package name for go output")
	fs.StringVar(&flags.Config, "config", "", "project file (default: ./"+config.FileName+" when present)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: apitypes generate [flags]\n\n")
		Writef(fs.Output(), "Generate type declarations from a JSON Schema or OpenAPI document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  ts (default)  TypeScript interfaces and type aliases\n")
		Writef(fs.Output(), "  js            JSDoc @typedef blocks\n")
		Writef(fs.Output(), "  json          Canonical schema JSON\n")
		Writef(fs.Output(), "  go            Go type declarations\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  apitypes generate\n")
		Writef(fs.Output(), "  apitypes gen -i openapi.json -o ./src/types\n")
		Writef(fs.Output(), "  apitypes gen -i schema.json -f go --package models -o ./models\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Output is written to <output>/index.<format>\n")
		Writef(fs.Output(), "  - Flags given on the command line override %s\n", config.FileName)
	}

	return fs, flags
}

// HandleGenerate executes the generate command
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

	project, projectDir, err := loadProject(flags.Config)
	if err != nil {
		return err
	}
	applyProjectDefaults(fs, flags, project, projectDir)

	inputFile := flags.Input
	if inputFile == "" {
		inputFile, err = project.FindInput(projectDir)
		if err != nil {
			return fmt.Errorf("no schema file found, specify one with --input: %w", err)
		}
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("schema file not found: %s", inputFile)
	}

	canonical, err := schema.Normalize(data,
		schema.WithSourceName(inputFile),
		schema.WithLogger(logger()),
	)
	if err != nil {
		return fmt.Errorf("failed to generate types: %w", err)
	}

	exportMode, err := renderer.ParseExportMode(flags.Export)
	if err != nil {
		return err
	}
	r := renderer.New()
	opts := []renderer.Option{
		renderer.WithFormatName(flags.Format),
		renderer.WithIncludeComments(!flags.NoComments),
		renderer.WithExportMode(exportMode),
		renderer.WithPackageName(flags.PackageName),
		renderer.WithLogger(logger()),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return err
		}
	}

	code, err := r.Render(canonical)
	if err != nil {
		return fmt.Errorf("failed to generate types: %w", err)
	}

	outputFile := filepath.Join(filepath.Clean(flags.Output), "index."+r.Format.Extension())
	if err := RejectSymlinkOutput(outputFile); err != nil {
		return err
	}
	if err := fileutil.WriteFile(outputFile, []byte(code), fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	Writef(os.Stderr, "✓ Types generated successfully!\n")
	Writef(os.Stderr, "Output: %s\n", outputFile)
	Writef(os.Stderr, "Generated %d type definitions\n", len(canonical.Definitions))
	return nil
}

// loadProject loads the explicit project file, or the one in the working
// directory when present. The returned directory anchors relative paths.
func loadProject(path string) (*config.Project, string, error) {
	if path != "" {
		p, err := config.Load(path)
		return p, filepath.Dir(path), err
	}
	p, err := config.LoadIfExists(".")
	return p, ".", err
}

// applyProjectDefaults copies project settings into flags the user did not set.
func applyProjectDefaults(fs *flag.FlagSet, flags *GenerateFlags, project *config.Project, dir string) {
	if project == nil {
		return
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if !given("o", "output") && project.OutputPath != "" {
		flags.Output = project.OutputPath
		if !filepath.IsAbs(flags.Output) {
			flags.Output = filepath.Join(dir, flags.Output)
		}
	}
	if !given("f", "format") && project.Format != "" {
		flags.Format = project.Format
	}
	if !given("no-comments") {
		flags.NoComments = !project.CommentsEnabled()
	}
	if !given("export") && project.ExportMode != "" {
		flags.Export = project.ExportMode
	}
	if !given("package") && project.PackageName != "" {
		flags.PackageName = project.PackageName
	}
}

func candidateList() string {
	return strings.Join(config.InputCandidates, ", ")
}
