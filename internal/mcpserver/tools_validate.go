package mcpserver

import (
	"context"

	"github.com/erraggy/apitypes/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The schema document to validate"`
	Strict     *bool     `json:"strict,omitempty"      jsonschema:"Treat a missing paths object as an error"`
	NoWarnings *bool     `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Dialect      string          `json:"dialect"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	data, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(
		validator.WithContent(data),
		validator.WithSourceName(input.Spec.source()),
		validator.WithStrictMode(strict),
		validator.WithIncludeWarnings(!noWarnings),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		Dialect:      result.DialectName,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
	}
	output.Errors = makeSlice[validateIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, validateIssue{Path: e.Path, Message: e.Message})
	}
	output.Warnings = makeSlice[validateIssue](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, validateIssue{Path: w.Path, Message: w.Message})
	}

	return nil, output, nil
}
