package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Defaults for the Gemini client.
const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	defaultTimeout     = 120 * time.Second
	defaultMaxAttempts = 3
	defaultBackoff     = 2 * time.Second
	defaultRateLimit   = 2 // requests per second
	defaultBurst       = 4
)

// Config configures the Gemini client.
type Config struct {
	// APIKey is the provider credential. An empty key makes every call
	// fail fast with ErrMissingAPIKey; no network I/O is attempted.
	APIKey string

	// BaseURL overrides the API endpoint, e.g. for a proxy or tests.
	BaseURL string

	// MaxAttempts bounds total call attempts (initial + retries).
	MaxAttempts int

	// RetryBackoff is the first retry delay; it doubles per attempt.
	// Only rate-limit failures are retried.
	RetryBackoff time.Duration

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// applyDefaults fills zero values.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.RetryBackoff == 0 {
		c.RetryBackoff = defaultBackoff
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// GeminiClient calls the Gemini generateContent API over REST.
type GeminiClient struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger

	// sleep is swapped in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGeminiClient creates a client. A missing API key is not an error
// here; calls surface ErrMissingAPIKey so the configuration failure is
// distinguishable from runtime failures at the point of use.
func NewGeminiClient(cfg Config, logger *zap.Logger) *GeminiClient {
	cfg.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		logger:     logger,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Generate performs one generation call with the bounded retry policy:
// rate-limit failures are retried up to MaxAttempts total attempts with
// exponential backoff starting at RetryBackoff; every other failure
// propagates immediately.
func (g *GeminiClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := g.cfg.RetryBackoff * time.Duration(1<<(attempt-1))
			g.logger.Warn("rate limited, backing off",
				zap.Duration("backoff", backoff),
				zap.Int("attempt", attempt+1),
				zap.String("model", req.Model))
			if err := g.sleep(ctx, backoff); err != nil {
				return nil, err
			}
		}

		resp, err := g.doRequest(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !IsRateLimit(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("retries exhausted: %w", lastErr)
}

// IsRateLimit reports whether the error is a transient quota signal.
func IsRateLimit(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// Wire types for the generateContent endpoint.

type wirePart struct {
	Text       string    `json:"text,omitempty"`
	InlineData *wireBlob `json:"inlineData,omitempty"`
}

type wireBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type wireContent struct {
	Parts []wirePart `json:"parts"`
}

type wireGenerationConfig struct {
	ResponseMIMEType   string            `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema           `json:"responseSchema,omitempty"`
	ResponseModalities []string          `json:"responseModalities,omitempty"`
	SpeechConfig       *wireSpeechConfig `json:"speechConfig,omitempty"`
	ImageConfig        *wireImageConfig  `json:"imageConfig,omitempty"`
}

type wireSpeechConfig struct {
	VoiceConfig wireVoiceConfig `json:"voiceConfig"`
}

type wireVoiceConfig struct {
	PrebuiltVoiceConfig wirePrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type wirePrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type wireImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type wireRequest struct {
	Contents         []wireContent         `json:"contents"`
	GenerationConfig *wireGenerationConfig `json:"generationConfig,omitempty"`
}

type wireCandidate struct {
	Content wireContent `json:"content"`
}

type wireResponse struct {
	Candidates []wireCandidate `json:"candidates"`
}

type wireError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func buildWireRequest(req *Request) *wireRequest {
	w := &wireRequest{
		Contents: []wireContent{{Parts: []wirePart{{Text: req.Prompt}}}},
	}

	gc := &wireGenerationConfig{}
	used := false
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = req.Schema
		used = true
	}
	if len(req.Modalities) > 0 {
		for _, m := range req.Modalities {
			gc.ResponseModalities = append(gc.ResponseModalities, string(m))
		}
		used = true
	}
	if req.Voice != "" {
		gc.SpeechConfig = &wireSpeechConfig{
			VoiceConfig: wireVoiceConfig{
				PrebuiltVoiceConfig: wirePrebuiltVoice{VoiceName: req.Voice},
			},
		}
		used = true
	}
	if req.AspectRatio != "" {
		gc.ImageConfig = &wireImageConfig{AspectRatio: req.AspectRatio}
		used = true
	}
	if used {
		w.GenerationConfig = gc
	}
	return w
}

func (g *GeminiClient) doRequest(ctx context.Context, req *Request) (*Response, error) {
	payload, err := json.Marshal(buildWireRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.cfg.BaseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyAPIError(resp.StatusCode, body)
	}

	var wr wireResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(wr.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API")
	}

	out := &Response{}
	for _, p := range wr.Candidates[0].Content.Parts {
		part := Part{Text: p.Text}
		if p.InlineData != nil {
			part.InlineData = &Blob{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data}
		}
		out.Parts = append(out.Parts, part)
	}
	return out, nil
}

// classifyAPIError maps provider failures onto the package sentinels.
// HTTP 429 and quota/RESOURCE_EXHAUSTED signals are rate limits; every
// other status is a permanent failure.
func classifyAPIError(status int, body []byte) error {
	var we wireError
	msg := string(body)
	apiStatus := ""
	if err := json.Unmarshal(body, &we); err == nil && we.Error.Message != "" {
		msg = we.Error.Message
		apiStatus = we.Error.Status
	}

	if status == http.StatusTooManyRequests ||
		apiStatus == "RESOURCE_EXHAUSTED" ||
		strings.Contains(strings.ToLower(msg), "quota") {
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	}
	return fmt.Errorf("API error (%d): %s", status, msg)
}

var _ Client = (*GeminiClient)(nil)
