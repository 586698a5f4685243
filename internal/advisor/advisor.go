// Package advisor translates feature-level intents into single calls to
// the generative model and back into typed, feature-shaped results. It
// is stateless: inputs are plain data, outputs are parsed results, and
// persistence is the caller's concern.
package advisor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
)

// Default model identifiers and pacing.
const (
	defaultTextModel  = "gemini-3-flash-preview"
	defaultImageModel = "gemini-2.5-flash-image"
	defaultTTSModel   = "gemini-2.5-flash-preview-tts"

	// defaultPlanStepDelay paces the full-plan chain to stay under the
	// provider's request-rate limits. Tunable, not a contract.
	defaultPlanStepDelay = 2 * time.Second

	// ttsVoice is the prebuilt voice used for all spoken replies.
	ttsVoice = "Kore"
)

// Config configures the advisor service.
type Config struct {
	// TextModel handles prompts and structured generation.
	TextModel string

	// ImageModel handles logo generation.
	ImageModel string

	// TTSModel handles speech synthesis.
	TTSModel string

	// PlanStepDelay is the pause between full-plan steps. Zero selects
	// the default; a negative value disables pacing.
	PlanStepDelay time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		TextModel:     defaultTextModel,
		ImageModel:    defaultImageModel,
		TTSModel:      defaultTTSModel,
		PlanStepDelay: defaultPlanStepDelay,
	}
}

func (c *Config) applyDefaults() {
	if c.TextModel == "" {
		c.TextModel = defaultTextModel
	}
	if c.ImageModel == "" {
		c.ImageModel = defaultImageModel
	}
	if c.TTSModel == "" {
		c.TTSModel = defaultTTSModel
	}
	if c.PlanStepDelay == 0 {
		c.PlanStepDelay = defaultPlanStepDelay
	}
}

// Service is the model-invocation layer: one method per feature.
type Service struct {
	client genai.Client
	cfg    Config
	logger *zap.Logger

	// sleep is swapped in tests to skip the plan pacing delay.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService creates the advisor over a provider client.
func NewService(client genai.Client, cfg Config, logger *zap.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("genai client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.applyDefaults()
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		sleep: func(ctx context.Context, d time.Duration) error {
			select {
			case <-time.After(d):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}, nil
}

// generateText runs a free-text generation on the text model.
func (s *Service) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Generate(ctx, &genai.Request{
		Model:  s.cfg.TextModel,
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// generateJSON runs a schema-constrained generation on the text model
// and parses the result into out.
func (s *Service) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	resp, err := s.client.Generate(ctx, &genai.Request{
		Model:  s.cfg.TextModel,
		Prompt: prompt,
		Schema: schema,
	})
	if err != nil {
		return err
	}
	return genai.ParseJSON(s.logger, resp.Text(), out)
}
