package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/randomtoy/fortune-go/internal/config"
	"github.com/randomtoy/fortune-go/internal/domain"
	"github.com/randomtoy/fortune-go/internal/ports"
)

// FortuneRequest is the application-level input (no HTTP types).
type FortuneRequest struct {
	Extra string
}

// FortuneService composes the prompt and hands it to the generator.
type FortuneService struct {
	cfg       config.Config
	generator ports.Generator
	logger    *slog.Logger
}

func NewFortuneService(cfg config.Config, gen ports.Generator, logger *slog.Logger) *FortuneService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FortuneService{
		cfg:       cfg,
		generator: gen,
		logger:    logger,
	}
}

// Tell returns the classified outcome for one fortune request.
// Its only error is domain.ErrAPIKeyNotConfigured, returned without calling
// the generator when no usable API key is configured.
func (s *FortuneService) Tell(ctx context.Context, req FortuneRequest) (domain.Outcome, error) {
	if !s.cfg.APIKeyConfigured() {
		return domain.Outcome{}, domain.ErrAPIKeyNotConfigured
	}

	prompt := domain.ComposePrompt(s.cfg.BasePrompt, req.Extra)

	start := time.Now()
	out := s.generator.Generate(ctx, prompt)
	s.logger.DebugContext(ctx, "fortune generated",
		"outcome", out.Kind().String(),
		"latency_ms", time.Since(start).Milliseconds(),
	)

	return out, nil
}
