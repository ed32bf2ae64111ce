package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/erraggy/apitypes"
	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/schemaerrors"
)

// Defaults for a zero Fetcher.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 50 << 20
)

// ErrNoData is returned when the server answers with an empty body.
var ErrNoData = errors.New("no data received")

// Fetcher downloads schema documents.
// The zero value uses a plain client with DefaultTimeout.
type Fetcher struct {
	// Client performs the requests (nil means NewClient(DefaultTimeout))
	Client *http.Client
	// UserAgent overrides apitypes.UserAgent()
	UserAgent string
	// MaxBytes caps the response body size (0 means DefaultMaxBytes)
	MaxBytes int64
	// Logger receives debug output (nil means no logging)
	Logger schema.Logger
}

// Fetch performs a GET request and returns the response body.
// Failures are reported as *schemaerrors.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &schemaerrors.FetchError{URL: url, Message: "invalid request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger := schema.LoggerOrNop(f.Logger)
	logger.Debug("fetching schema", "url", url, "headers", len(headers))

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, &schemaerrors.FetchError{URL: url, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &schemaerrors.FetchError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	limit := f.maxBytes()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &schemaerrors.FetchError{URL: url, Message: "reading response", Cause: err}
	}
	if int64(len(body)) > limit {
		return nil, &schemaerrors.FetchError{URL: url, Message: fmt.Sprintf("response exceeds %d bytes", limit)}
	}
	if len(body) == 0 {
		return nil, &schemaerrors.FetchError{URL: url, Cause: ErrNoData}
	}

	logger.Debug("fetched schema", "url", url, "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}

// FetchDocument fetches url and decodes the body into the ordered value
// model. Undecodable bodies fail with a *schemaerrors.SyntaxError naming url.
func (f *Fetcher) FetchDocument(ctx context.Context, url string, headers map[string]string) (any, []byte, error) {
	body, err := f.Fetch(ctx, url, headers)
	if err != nil {
		return nil, nil, err
	}
	doc, err := jsondoc.Decode(body)
	if err != nil {
		var synErr *schemaerrors.SyntaxError
		if errors.As(err, &synErr) {
			synErr.Source = url
		}
		return nil, nil, err
	}
	return doc, body, nil
}

// ParseHeaders decodes a JSON object of header names to values, as given on
// the command line. Empty input yields no headers.
func ParseHeaders(text string) (map[string]string, error) {
	if text == "" {
		return nil, nil
	}
	var headers map[string]string
	if err := json.Unmarshal([]byte(text), &headers); err != nil {
		return nil, &schemaerrors.ConfigError{
			Option:  "headers",
			Message: `must be a JSON object of strings, e.g. {"Authorization": "Bearer token"}`,
			Cause:   err,
		}
	}
	return headers, nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return NewClient(DefaultTimeout)
}

func (f *Fetcher) userAgent() string {
	if f.UserAgent != "" {
		return f.UserAgent
	}
	return apitypes.UserAgent()
}

func (f *Fetcher) maxBytes() int64 {
	if f.MaxBytes > 0 {
		return f.MaxBytes
	}
	return DefaultMaxBytes
}
