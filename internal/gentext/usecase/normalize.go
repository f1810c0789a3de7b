package usecase

import (
	"regexp"
	"strings"
)

var (
	bulletGlyphs  = regexp.MustCompile(`[•*-]\s+`)
	numberedPoint = regexp.MustCompile(`(\d+\.)\s+`)
	newlineRuns   = regexp.MustCompile(`\n{3,}`)
)

// normalizeSummary canonicalizes the model's raw output: every bullet glyph
// becomes "• ", numbered points get a preceding newline, runs of 3+ newlines
// collapse to one blank line, and bullet lines are indented three spaces.
// The transform is purely lexical and idempotent (the newline collapse
// absorbs the extra newline a re-run would insert before numbered points).
func normalizeSummary(s string) string {
	s = bulletGlyphs.ReplaceAllString(s, "• ")
	s = numberedPoint.ReplaceAllString(s, "\n$1 ")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	s = strings.ReplaceAll(s, "\n•", "\n   •")
	return strings.TrimSpace(s)
}
