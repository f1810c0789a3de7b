package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"textwiz-backend/internal/apperrors"
	"textwiz-backend/pkg/cache"
	"textwiz-backend/pkg/gemini"
)

const (
	// maxChars matches the frontend limit
	maxChars         = 25000
	summarizeTimeout = 10 * time.Second
)

var summaryGenerationConfig = gemini.GenerationConfig{
	Temperature:     0.4,
	MaxOutputTokens: 800,
	TopP:            0.8,
	TopK:            40,
}

var paragraphGenerationConfig = gemini.GenerationConfig{
	Temperature:     0.5,
	MaxOutputTokens: 500,
}

const summaryPromptTemplate = `Summarize the following text into a concise and meaningful format. Capture the key points and provide an overall understanding of the content. Ensure the summary is directly related to the input, avoids unnecessary details, and highlights the most critical aspects of the text.

MAIN POINTS:
1. [Key Topic]
    • Core Concept: [Brief explanation]
    • Main Insight: [Key understanding]

2. [Important Details]
    • Primary Point: [Main aspect]
    • Secondary Point: [Supporting detail]

KEY POINTS:
• [Critical point 1]
• [Critical point 2]
• [Critical point 3]

ADDITIONAL INSIGHTS:
• [Important finding]
• [Significant implication]

Note: Keep each point brief and clear. Prioritize clarity over completeness.

Text to analyze: %s`

// gentextUsecase implements GentextUsecase interface
type gentextUsecase struct {
	generator    TextGenerator
	summaryCache *cache.Cache
}

// NewGentextUsecase creates a new instance of gentextUsecase. The cache is
// constructed once at process start and shared by reference.
func NewGentextUsecase(generator TextGenerator, summaryCache *cache.Cache) GentextUsecase {
	return &gentextUsecase{
		generator:    generator,
		summaryCache: summaryCache,
	}
}

func (u *gentextUsecase) Summarize(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.New(apperrors.Validation, "Please provide text to summarize")
	}
	if len(text) > maxChars {
		return "", apperrors.New(apperrors.Validation,
			fmt.Sprintf("Text is too long. Maximum %d characters allowed.", maxChars))
	}

	// Cache key is the trimmed text verbatim. A hit returns the stored
	// summary without touching the model.
	if summary, ok := u.summaryCache.Get(trimmed); ok {
		return summary, nil
	}

	raw, err := u.generateWithTimeout(ctx, fmt.Sprintf(summaryPromptTemplate, text))
	if err != nil {
		return "", err
	}

	summary := normalizeSummary(raw)
	if summary == "" {
		return "", apperrors.New(apperrors.NotFound, "No summary generated")
	}

	u.summaryCache.Set(trimmed, summary)
	return summary, nil
}

// generateWithTimeout races the model call against a fixed deadline. The
// deferred cancel aborts the losing branch's HTTP request, so nothing
// lingers past the race.
func (u *gentextUsecase) generateWithTimeout(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := u.generator.GenerateContent(ctx, prompt, summaryGenerationConfig)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", mapSummaryError(res.err)
		}
		return res.text, nil
	case <-ctx.Done():
		return "", apperrors.Wrap(apperrors.UpstreamTimeout, "Request timeout", ctx.Err())
	}
}

func mapSummaryError(err error) error {
	switch {
	case errors.Is(err, gemini.ErrSafetyBlocked):
		return apperrors.Wrap(apperrors.UpstreamSafety,
			"Content flagged for safety. Please modify your text and try again.", err)
	case errors.Is(err, gemini.ErrNoContent):
		return apperrors.Wrap(apperrors.NotFound, "No summary generated", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(apperrors.UpstreamTimeout, "Request timeout", err)
	default:
		return apperrors.Wrap(apperrors.Upstream,
			"Error in generating summary. Please try again later.", err)
	}
}

func (u *gentextUsecase) GenerateParagraph(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperrors.New(apperrors.Validation, "Text prompt is required.")
	}

	prompt := fmt.Sprintf("Write a detailed paragraph about: \n%s", text)
	generated, err := u.generator.GenerateContent(ctx, prompt, paragraphGenerationConfig)
	if err != nil {
		if errors.Is(err, gemini.ErrNoContent) {
			return "", apperrors.Wrap(apperrors.Upstream,
				"Failed to generate text. No output received.", err)
		}
		// Pass the provider's message through when there is one.
		return "", apperrors.Wrap(apperrors.Upstream, err.Error(), err)
	}

	return strings.TrimSpace(generated), nil
}
