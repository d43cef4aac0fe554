package generate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ai-app-builder-backend/internal/models"
)

// Completer is the single upstream call the pipeline depends on.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrInvalidRequest reports a request outside the schema. The wrapped
// message names the offending field.
var ErrInvalidRequest = errors.New("invalid generation request")

// Service orchestrates validate -> call -> normalize -> respond, with the
// template library as the deterministic fallback. A nil completer means no
// upstream credential is configured and every request is served locally.
type Service struct {
	upstream Completer
	log      *zap.SugaredLogger
}

func NewService(upstream Completer, log *zap.SugaredLogger) *Service {
	return &Service{upstream: upstream, log: log}
}

// Validate rejects requests outside the closed schema.
func Validate(req models.GenerateRequest) error {
	if len(req.Prompt) < 5 {
		return fmt.Errorf("%w: prompt must be at least 5 characters", ErrInvalidRequest)
	}
	if !models.ValidAppType(req.AppType) {
		return fmt.Errorf("%w: unknown appType %q", ErrInvalidRequest, req.AppType)
	}
	if !models.ValidTemplate(req.Template) {
		return fmt.Errorf("%w: unknown template %q", ErrInvalidRequest, req.Template)
	}
	return nil
}

// Generate produces a files bundle for the request. The response source
// names the actual producer of the bundle: "openrouter" only when the
// upstream output was used, "fallback" when the template library supplied
// the files (including the case where a transport-level success returned
// unparseable output). Transport failure is an error, never a silent
// fallback.
func (s *Service) Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
	if err := Validate(req); err != nil {
		return models.GenerateResponse{}, err
	}

	if s.upstream == nil {
		s.log.Infow("upstream not configured, serving fallback", "template", req.Template)
		return models.GenerateResponse{Source: models.SourceFallback, Files: Fallback(req)}, nil
	}

	raw, err := s.upstream.Complete(ctx, SystemPrompt, UserMessage(req))
	if err != nil {
		return models.GenerateResponse{}, fmt.Errorf("upstream call failed: %w", err)
	}

	files, err := ParseBundle(raw)
	if err != nil {
		s.log.Warnw("unparseable upstream output, serving fallback", "template", req.Template)
		return models.GenerateResponse{Source: models.SourceFallback, Files: Fallback(req)}, nil
	}

	return models.GenerateResponse{Source: models.SourceOpenRouter, Files: files}, nil
}
