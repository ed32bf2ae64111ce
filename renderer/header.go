package renderer

import (
	"strings"

	"github.com/erraggy/apitypes/schema"
)

const (
	// defaultBannerTitle stands in for a missing schema title.
	defaultBannerTitle = "API Types"
	// timestampLayout is ISO 8601 in UTC with milliseconds.
	timestampLayout = "2006-01-02T15:04:05.000Z"
	generatorName   = "apitypes"
)

// bannerLines returns the banner text lines shared by every format.
func (r *Renderer) bannerLines(s *schema.CanonicalSchema) []string {
	lines := []string{foldLines(s.TitleOr(defaultBannerTitle))}
	if s.Version != nil && *s.Version != "" {
		lines = append(lines, "Version: "+foldLines(*s.Version))
	}
	lines = append(lines,
		"Generated on: "+r.now().UTC().Format(timestampLayout),
		"",
		"This file was automatically generated by "+generatorName+".",
		"Do not edit this file directly.",
	)
	return lines
}

// blockBanner renders the banner as a /** */ comment followed by a blank line.
func (r *Renderer) blockBanner(s *schema.CanonicalSchema) string {
	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range r.bannerLines(s) {
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * ")
		b.WriteString(escapeCommentEnd(line))
		b.WriteByte('\n')
	}
	b.WriteString(" */\n\n")
	return b.String()
}
