package genai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Validator is implemented by result types that check their own shape
// after decoding. Structured model calls are parse-then-validated so a
// schema-noncompliant response surfaces as an explicit error instead of
// a silent zero value.
type Validator interface {
	Validate() error
}

// Models sometimes wrap JSON in markdown code fences despite the MIME
// constraint.
var fenceRE = regexp.MustCompile("```(?:json)?\n?|\n?```")

// ParseJSON decodes a structured model response into v, stripping code
// fences first. Parse or validation failures return ErrMalformedResponse
// with the raw text logged, since the model's non-conformant output is
// the root cause to diagnose.
func ParseJSON(logger *zap.Logger, raw string, v any) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	cleaned := strings.TrimSpace(fenceRE.ReplaceAllString(raw, ""))
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		logger.Error("model returned malformed JSON",
			zap.String("raw", raw),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if val, ok := v.(Validator); ok {
		if err := val.Validate(); err != nil {
			logger.Error("model response failed validation",
				zap.String("raw", raw),
				zap.Error(err))
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	return nil
}
