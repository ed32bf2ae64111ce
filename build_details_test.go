package apitypes

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	userAgent := UserAgent()
	assert.Equal(t, "apitypes/"+Version(), userAgent)

	// Must be safe to place in an HTTP header.
	assert.NotContains(t, userAgent, " ")
	assert.NotContains(t, userAgent, "\n")
	assert.NotContains(t, userAgent, "\r")
}

func TestBuildInfo(t *testing.T) {
	result := BuildInfo()
	assert.Contains(t, result, "Version: "+Version())
	assert.Contains(t, result, "Commit: "+Commit())
	assert.Contains(t, result, "Go Version: "+GoVersion())
}
