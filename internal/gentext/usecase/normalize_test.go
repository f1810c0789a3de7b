package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSummary_BulletGlyphs(t *testing.T) {
	in := "* first\n- second\n• third"
	want := "• first\n   • second\n   • third"
	assert.Equal(t, want, normalizeSummary(in))
}

func TestNormalizeSummary_NumberedPoints(t *testing.T) {
	in := "MAIN POINTS:\n1. Topic one\n2. Topic two"
	want := "MAIN POINTS:\n\n1. Topic one\n\n2. Topic two"
	assert.Equal(t, want, normalizeSummary(in))
}

func TestNormalizeSummary_CollapsesNewlineRuns(t *testing.T) {
	in := "KEY POINTS:\n\n\n\n• one\n\n\n• two"
	got := normalizeSummary(in)
	assert.NotContains(t, got, "\n\n\n")
	assert.Equal(t, "KEY POINTS:\n\n   • one\n\n   • two", got)
}

func TestNormalizeSummary_IndentsBullets(t *testing.T) {
	in := "Heading\n• point"
	assert.Equal(t, "Heading\n   • point", normalizeSummary(in))
}

func TestNormalizeSummary_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "text", normalizeSummary("  \n\ntext\n\n  "))
	assert.Equal(t, "", normalizeSummary("   \n\t\n  "))
}

func TestNormalizeSummary_Idempotent(t *testing.T) {
	inputs := []string{
		"MAIN POINTS:\n1. Key Topic\n    • Core Concept: brief\n    • Main Insight: key\n\n2. Details\n\nKEY POINTS:\n• one\n• two\n\n\n\nADDITIONAL INSIGHTS:\n* finding\n- implication",
		"plain text with no structure",
		"1. first point\n\n2. second point\n\n3. third point",
		"* bullets\n* everywhere\n* here",
	}
	for _, in := range inputs {
		once := normalizeSummary(in)
		twice := normalizeSummary(once)
		assert.Equal(t, once, twice, "normalization must be idempotent for %q", in)
	}
}
