package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/apitypes/internal/fileutil"
	"github.com/erraggy/apitypes/renderer"
	"github.com/erraggy/apitypes/schema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The schema document to generate types from"`
	Format          string    `json:"format,omitempty"           jsonschema:"Output format: ts, js, json or go (default from APITYPES_GENERATE_FORMAT, else ts)"`
	IncludeComments *bool     `json:"include_comments,omitempty" jsonschema:"Emit the generated-file banner and descriptions"`
	Export          string    `json:"export,omitempty"           jsonschema:"TypeScript export style: named, default or both"`
	PackageName     string    `json:"package_name,omitempty"     jsonschema:"Go package name for go output (default: types)"`
	Output          string    `json:"output,omitempty"           jsonschema:"File path to write the generated code. If omitted the code is returned inline."`
}

type generateOutput struct {
	Format          string   `json:"format"`
	DefinitionCount int      `json:"definition_count"`
	Definitions     []string `json:"definitions,omitempty"`
	Bytes           int      `json:"bytes"`
	WrittenTo       string   `json:"written_to,omitempty"`
	Code            string   `json:"code,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	data, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	s, err := schema.Normalize(data, schema.WithSourceName(input.Spec.source()))
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts, err := buildRendererOptions(input)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	r := renderer.New()
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return errResult(err), generateOutput{}, nil
		}
	}

	code, err := r.Render(s)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Format:          r.Format.String(),
		DefinitionCount: len(s.Definitions),
		Definitions:     s.Names(),
		Bytes:           len(code),
	}
	if input.Output != "" {
		if err := fileutil.WriteFile(input.Output, []byte(code), fileutil.ReadableByAll); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), generateOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Code = code
	}

	return nil, output, nil
}

// buildRendererOptions translates the MCP input into renderer options,
// falling back to the server defaults for omitted fields.
func buildRendererOptions(input generateInput) ([]renderer.Option, error) {
	opts := []renderer.Option{renderer.WithFormat(cfg.GenerateFormat)}
	if input.Format != "" {
		opts = append(opts, renderer.WithFormatName(input.Format))
	}

	comments := cfg.IncludeComments
	if input.IncludeComments != nil {
		comments = *input.IncludeComments
	}
	opts = append(opts, renderer.WithIncludeComments(comments))

	if input.Export != "" {
		mode, err := renderer.ParseExportMode(input.Export)
		if err != nil {
			return nil, err
		}
		opts = append(opts, renderer.WithExportMode(mode))
	}
	if input.PackageName != "" {
		opts = append(opts, renderer.WithPackageName(input.PackageName))
	}
	return opts, nil
}
