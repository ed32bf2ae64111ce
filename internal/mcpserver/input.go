package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/erraggy/apitypes/internal/fetch"
	"github.com/erraggy/apitypes/internal/options"
)

// specInput represents the three ways a schema document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON Schema or OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a JSON Schema or OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON document content"`
}

// source names the input for diagnostics.
func (s specInput) source() string {
	switch {
	case s.File != "":
		return s.File
	case s.URL != "":
		return s.URL
	default:
		return "content"
	}
}

// resolve returns the raw document bytes from whichever input was provided.
func (s specInput) resolve(ctx context.Context) ([]byte, error) {
	err := options.ValidateSingleInputSource("spec",
		"exactly one of file, url, or content must be provided (got 0)",
		"exactly one of file, url, or content must be provided (got more than 1)",
		s.File != "", s.URL != "", s.Content != "")
	if err != nil {
		return nil, err
	}

	switch {
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.File, err)
		}
		return data, nil
	case s.URL != "":
		f := &fetch.Fetcher{Client: httpClient()}
		return f.Fetch(ctx, s.URL, nil)
	default:
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set APITYPES_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return []byte(s.Content), nil
	}
}

// httpClient returns the SSRF-safe client unless private IPs are allowed.
func httpClient() *http.Client {
	if cfg.AllowPrivateIPs {
		return fetch.NewClient(cfg.FetchTimeout)
	}
	return fetch.NewSafeClient(cfg.FetchTimeout)
}
