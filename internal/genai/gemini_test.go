package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestClient points a client at a test server and records backoff
// sleeps instead of waiting them out.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*GeminiClient, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGeminiClient(Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())
	var sleeps []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return c, &sleeps
}

func textResponse(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return body
}

func TestGenerate_MissingAPIKeyFailsFast(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewGeminiClient(Config{BaseURL: srv.URL}, zap.NewNop())
	_, err := c.Generate(context.Background(), &Request{Model: "m", Prompt: "p"})

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, calls, "no network call may be attempted without a credential")
}

func TestGenerate_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, r.URL.Path, "models/gemini-test:generateContent")
		w.Write(textResponse("hello founder"))
	})

	resp, err := c.Generate(context.Background(), &Request{Model: "gemini-test", Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello founder", resp.Text())
}

func TestGenerate_RetryBoundOnRateLimit(t *testing.T) {
	calls := 0
	c, sleeps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	})

	_, err := c.Generate(context.Background(), &Request{Model: "m", Prompt: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 3, calls, "1 initial + 2 retries, then give up")
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *sleeps)
}

func TestGenerate_FailFastOnOtherErrors(t *testing.T) {
	calls := 0
	c, sleeps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "invalid argument", "status": "INVALID_ARGUMENT"}}`))
	})

	_, err := c.Generate(context.Background(), &Request{Model: "m", Prompt: "p"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, calls, "non-rate-limit errors are not retried")
	assert.Empty(t, *sleeps)
}

func TestGenerate_RecoversAfterRateLimit(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}}`))
			return
		}
		w.Write(textResponse("ok"))
	})

	resp, err := c.Generate(context.Background(), &Request{Model: "m", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text())
	assert.Equal(t, 2, calls)
}

func TestGenerate_StructuredRequestCarriesSchema(t *testing.T) {
	var got wireRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write(textResponse(`{"names": ["Plantly"]}`))
	})

	schema := Object(map[string]*Schema{"names": Array(String())})
	_, err := c.Generate(context.Background(), &Request{Model: "m", Prompt: "p", Schema: schema})
	require.NoError(t, err)

	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, got.GenerationConfig.ResponseSchema)
	assert.Equal(t, TypeObject, got.GenerationConfig.ResponseSchema.Type)
}

func TestGenerate_AudioRequestCarriesVoice(t *testing.T) {
	var got wireRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": "audio/pcm", "data": "AAAA"}},
				}}},
			},
		})
		w.Write(body)
	})

	resp, err := c.Generate(context.Background(), &Request{
		Model:      "tts",
		Prompt:     "say hi",
		Modalities: []Modality{ModalityAudio},
		Voice:      "Kore",
	})
	require.NoError(t, err)

	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, []string{"AUDIO"}, got.GenerationConfig.ResponseModalities)
	require.NotNil(t, got.GenerationConfig.SpeechConfig)
	assert.Equal(t, "Kore", got.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)

	blob := resp.InlineData()
	require.NotNil(t, blob)
	assert.Equal(t, "audio/pcm", blob.MIMEType)
}
