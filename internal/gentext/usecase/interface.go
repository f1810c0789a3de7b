package usecase

import (
	"context"

	"textwiz-backend/pkg/gemini"
)

// TextGenerator is the slice of the model client the gateway depends on.
// Tests stub it with call counters.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (string, error)
}

type GentextUsecase interface {
	Summarize(ctx context.Context, text string) (string, error)
	GenerateParagraph(ctx context.Context, text string) (string, error)
}
