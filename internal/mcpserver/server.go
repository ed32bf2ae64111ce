// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apitypes capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/apitypes"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `apitypes MCP server: validates and normalizes JSON Schema and OpenAPI documents and generates TypeScript, JSDoc, canonical JSON or Go types from them.

Every tool takes a spec with exactly one of file, url or content. URLs resolving to private or loopback addresses are refused unless APITYPES_ALLOW_PRIVATE_IPS=true.

Configuration: defaults come from APITYPES_* environment variables set in your MCP client config.
- APITYPES_VALIDATE_STRICT (default: false): treat a missing paths object as an error
- APITYPES_VALIDATE_NO_WARNINGS (default: false): suppress warnings by default
- APITYPES_GENERATE_FORMAT (default: ts): ts, js, json or go
- APITYPES_INCLUDE_COMMENTS (default: true): emit banners and descriptions
- APITYPES_MAX_INLINE_SIZE (default: 10485760): inline content limit in bytes
- APITYPES_FETCH_TIMEOUT (default: 30s): timeout for url inputs`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apitypes", Version: apitypes.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a JSON Schema or OpenAPI document. OpenAPI documents must carry info.title, info.version and paths; JSON Schema documents get advisory warnings for a missing $schema or an empty document. Returns errors and warnings with JSON path locations. Strict mode and warning suppression defaults are configurable via APITYPES_VALIDATE_STRICT and APITYPES_VALIDATE_NO_WARNINGS env vars.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate type declarations from a JSON Schema or OpenAPI document. Formats: ts (TypeScript interfaces and aliases), js (JSDoc typedefs), json (canonical schema JSON), go (Go structs). Use output to write to a file instead of returning the code inline.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalize a JSON Schema or OpenAPI document into its canonical form: dialect, title, version and the ordered list of named definitions with a summary of each mapped type. Use remote=true for documents fetched from an API whose definitions may live under schemas. Use include_document=true to get the canonical JSON.",
	}, handleNormalize)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
