// Package fetch retrieves remote schema documents over HTTP.
//
// Requests carry the apitypes User-Agent plus any caller-supplied headers.
// A non-2xx response fails with a *schemaerrors.FetchError carrying the
// status, and an empty body fails with "no data received".
//
// NewSafeClient returns a client that refuses to connect to private,
// loopback, link-local or unspecified addresses, including after redirects.
// It is used wherever the URL comes from an untrusted caller such as an MCP
// client.
package fetch
