package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/apitypes/internal/fetch"
	"github.com/erraggy/apitypes/renderer"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Validate tool defaults.
	ValidateStrict     bool
	ValidateNoWarnings bool

	// Generate tool defaults.
	GenerateFormat  renderer.Format
	IncludeComments bool

	// Input limits.
	MaxInlineSize   int64
	FetchTimeout    time.Duration
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APITYPES_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ValidateStrict:     envBool("APITYPES_VALIDATE_STRICT", false),
		ValidateNoWarnings: envBool("APITYPES_VALIDATE_NO_WARNINGS", false),
		GenerateFormat:     envFormat("APITYPES_GENERATE_FORMAT", renderer.FormatStructural),
		IncludeComments:    envBool("APITYPES_INCLUDE_COMMENTS", true),
		MaxInlineSize:      int64(envInt("APITYPES_MAX_INLINE_SIZE", 10*1024*1024)),
		FetchTimeout:       envDuration("APITYPES_FETCH_TIMEOUT", fetch.DefaultTimeout),
		AllowPrivateIPs:    envBool("APITYPES_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFormat(key string, fallback renderer.Format) renderer.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := renderer.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback.String()) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
