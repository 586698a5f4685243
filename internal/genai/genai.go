// Package genai is the provider client for the remote generative model
// API. It owns credential checking, rate limiting, the bounded retry
// policy for rate-limit errors, structured-output schema declarations,
// and parsing of model responses.
package genai

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors. Callers discriminate with errors.Is.
var (
	// ErrMissingAPIKey is returned before any network I/O when no
	// credential is configured.
	ErrMissingAPIKey = errors.New("generative API key missing")

	// ErrRateLimited marks transient quota failures; these are the only
	// errors the client retries.
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrMalformedResponse marks model output that was required to be
	// JSON but could not be parsed or validated.
	ErrMalformedResponse = errors.New("could not parse model response")
)

// Modality selects the kind of content the model should return.
type Modality string

// Response modalities.
const (
	ModalityText  Modality = "TEXT"
	ModalityImage Modality = "IMAGE"
	ModalityAudio Modality = "AUDIO"
)

// Request is a single generation call.
type Request struct {
	// Model is the provider model identifier.
	Model string

	// Prompt is the natural-language instruction.
	Prompt string

	// Schema, when set, constrains the response to JSON of this shape.
	Schema *Schema

	// Modalities requests non-text output (image or audio bytes).
	Modalities []Modality

	// Voice selects the prebuilt TTS voice for audio responses.
	Voice string

	// AspectRatio applies to image generation, e.g. "1:1".
	AspectRatio string
}

// Blob is inline binary content, base64-encoded.
type Blob struct {
	MIMEType string
	Data     string
}

// Part is one piece of model output.
type Part struct {
	Text       string
	InlineData *Blob
}

// Response is the model output of one call.
type Response struct {
	Parts []Part
}

// Text concatenates all text parts.
func (r *Response) Text() string {
	var b strings.Builder
	for _, p := range r.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// InlineData returns the first inline blob, or nil.
func (r *Response) InlineData() *Blob {
	for _, p := range r.Parts {
		if p.InlineData != nil {
			return p.InlineData
		}
	}
	return nil
}

// Client is the generation contract the feature layer depends on.
type Client interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
}
