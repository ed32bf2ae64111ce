package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/apitypes/internal/config"
	"github.com/erraggy/apitypes/internal/fetch"
	"github.com/erraggy/apitypes/internal/fileutil"
	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/renderer"
	"github.com/erraggy/apitypes/schema"
)

// Files written by sync inside the output directory.
const (
	RemoteTypesFile  = "remote-types.ts"
	RemoteSchemaFile = "remote-schema.json"
)

// SyncFlags contains flags for the sync command
type SyncFlags struct {
	URL     string
	Output  string
	Headers string
	Timeout time.Duration
	Safe    bool
}

// SetupSyncFlags creates and configures a FlagSet for the sync command.
// Returns the FlagSet and a SyncFlags struct with bound flag variables.
func SetupSyncFlags() (*flag.FlagSet, *SyncFlags) {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	flags := &SyncFlags{}

	fs.StringVar(&flags.URL, "u", "", "URL of the remote schema (required)")
	fs.StringVar(&flags.URL, "url", "", "URL of the remote schema (required)")
	fs.StringVar(&flags.Output, "o", config.DefaultOutputPath, "output directory")
	fs.StringVar(&flags.Output, "output", config.DefaultOutputPath, "output directory")
	fs.StringVar(&flags.Headers, "H", "", `request headers as a JSON object, e.g. '{"Authorization":"Bearer x"}'`)
	fs.StringVar(&flags.Headers, "headers", "", "request headers as a JSON object")
	fs.DurationVar(&flags.Timeout, "timeout", fetch.DefaultTimeout, "request timeout")
	fs.BoolVar(&flags.Safe, "safe", false, "refuse URLs that resolve to private or loopback addresses")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: apitypes sync -u <url> [flags]\n\n")
		Writef(fs.Output(), "Fetch a schema from a remote API and generate TypeScript types from it.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  apitypes sync -u https://api.example.com/openapi.json\n")
		Writef(fs.Output(), "  apitypes sync -u https://api.example.com/schema -H '{\"X-Api-Key\":\"k\"}' -o ./src/types\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Writes %s and %s to the output directory\n", RemoteTypesFile, RemoteSchemaFile)
		Writef(fs.Output(), "  - Definitions are taken from components.schemas, definitions, or schemas (first found)\n")
	}

	return fs, flags
}

// HandleSync executes the sync command
func HandleSync(args []string) error {
	fs, flags := SetupSyncFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.URL == "" {
		fs.Usage()
		return fmt.Errorf("API URL is required, use --url")
	}

	headers, err := fetch.ParseHeaders(flags.Headers)
	if err != nil {
		return fmt.Errorf("invalid headers format, use JSON format: %w", err)
	}

	client := fetch.NewClient(flags.Timeout)
	if flags.Safe {
		client = fetch.NewSafeClient(flags.Timeout)
	}
	f := &fetch.Fetcher{Client: client, Logger: logger()}

	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()
	doc, _, err := f.FetchDocument(ctx, flags.URL, headers)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	canonical := schema.NormalizeRemote(doc, schema.WithSourceName(flags.URL), schema.WithLogger(logger()))
	code, err := renderer.RenderWithOptions(canonical,
		renderer.WithFormat(renderer.FormatStructural),
		renderer.WithIncludeComments(true),
		renderer.WithLogger(logger()),
	)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	raw, err := jsondoc.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	raw = append(raw, '\n')

	outDir := filepath.Clean(flags.Output)
	typesFile := filepath.Join(outDir, RemoteTypesFile)
	schemaFile := filepath.Join(outDir, RemoteSchemaFile)
	for _, path := range []string{typesFile, schemaFile} {
		if err := RejectSymlinkOutput(path); err != nil {
			return err
		}
	}
	if err := fileutil.WriteFile(typesFile, []byte(code), fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := fileutil.WriteFile(schemaFile, raw, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	Writef(os.Stderr, "✓ Types synced successfully!\n")
	Writef(os.Stderr, "Types: %s\n", typesFile)
	Writef(os.Stderr, "Schema: %s\n", schemaFile)
	return nil
}
