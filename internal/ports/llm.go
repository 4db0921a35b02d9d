package ports

import (
	"context"

	"github.com/randomtoy/fortune-go/internal/domain"
)

// Generator sends one prompt to an LLM and classifies what came back.
// Implementations never return a Go error: every failure is an Outcome variant.
type Generator interface {
	Generate(ctx context.Context, prompt string) domain.Outcome
}
