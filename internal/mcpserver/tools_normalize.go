package mcpserver

import (
	"context"

	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/typemap"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type normalizeInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The schema document to normalize"`
	Remote          bool      `json:"remote,omitempty"           jsonschema:"Use the lenient remote rules: look under components.schemas, then definitions, then schemas, and default title and version"`
	IncludeDocument bool      `json:"include_document,omitempty" jsonschema:"Include the canonical JSON document in output"`
}

type normalizedDefinition struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type normalizeOutput struct {
	Dialect         string                 `json:"dialect"`
	Title           string                 `json:"title,omitempty"`
	Version         string                 `json:"version,omitempty"`
	DefinitionCount int                    `json:"definition_count"`
	Definitions     []normalizedDefinition `json:"definitions,omitempty"`
	HasPaths        bool                   `json:"has_paths"`
	Document        string                 `json:"document,omitempty"`
}

func handleNormalize(ctx context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	data, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	var s *schema.CanonicalSchema
	if input.Remote {
		doc, err := jsondoc.Decode(data)
		if err != nil {
			return errResult(err), normalizeOutput{}, nil
		}
		s = schema.NormalizeRemote(doc)
	} else {
		s, err = schema.Normalize(data, schema.WithSourceName(input.Spec.source()))
		if err != nil {
			return errResult(err), normalizeOutput{}, nil
		}
	}

	output := normalizeOutput{
		Dialect:         s.Dialect.String(),
		DefinitionCount: len(s.Definitions),
		HasPaths:        s.Paths != nil,
	}
	if s.Title != nil {
		output.Title = *s.Title
	}
	if s.Version != nil {
		output.Version = *s.Version
	}
	output.Definitions = makeSlice[normalizedDefinition](len(s.Definitions))
	for _, def := range s.Definitions {
		output.Definitions = append(output.Definitions, normalizedDefinition{
			Name: def.Name,
			Type: typemap.Map(def.Schema).String(),
		})
	}

	if input.IncludeDocument {
		doc, err := jsondoc.MarshalIndent(s.ToValue(), "", "  ")
		if err != nil {
			return errResult(err), normalizeOutput{}, nil
		}
		output.Document = string(doc)
	}

	return nil, output, nil
}
