package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// fakeClient replays a scripted queue of responses, one per Generate
// call, and records every request it saw.
type fakeClient struct {
	queue []func() (*genai.Response, error)
	calls []*genai.Request
}

func (f *fakeClient) Generate(_ context.Context, req *genai.Request) (*genai.Response, error) {
	f.calls = append(f.calls, req)
	if len(f.queue) == 0 {
		return nil, errors.New("fake client: unexpected call")
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next()
}

func textResp(text string) func() (*genai.Response, error) {
	return func() (*genai.Response, error) {
		return &genai.Response{Parts: []genai.Part{{Text: text}}}, nil
	}
}

func blobResp(mime, data string) func() (*genai.Response, error) {
	return func() (*genai.Response, error) {
		return &genai.Response{Parts: []genai.Part{{InlineData: &genai.Blob{MIMEType: mime, Data: data}}}}, nil
	}
}

func failResp(err error) func() (*genai.Response, error) {
	return func() (*genai.Response, error) { return nil, err }
}

func newTestService(t *testing.T, client genai.Client) *Service {
	t.Helper()
	svc, err := NewService(client, Config{}, zap.NewNop())
	require.NoError(t, err)
	// Pacing is covered separately; skip the real delays here.
	svc.sleep = func(context.Context, time.Duration) error { return nil }
	return svc
}

var testIdea = venture.IdeaPhase{
	Description:     "An app that waters your plants",
	TargetAudience:  "Forgetful plant owners",
	UniqueValueProp: "Hands-free watering",
	Industry:        "Consumer IoT",
	IsComplete:      true,
}

func TestGenerateNames(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{"names": ["Plantly", "Sproutly"], "rationale": "friendly and green"}`),
	}}
	svc := newTestService(t, client)

	result, err := svc.GenerateNames(context.Background(), testIdea)
	require.NoError(t, err)
	assert.Equal(t, []string{"Plantly", "Sproutly"}, result.Names)
	assert.Equal(t, "friendly and green", result.Rationale)

	require.Len(t, client.calls, 1)
	assert.NotNil(t, client.calls[0].Schema, "naming must be schema-constrained")
}

func TestGenerateLogo_TwoStep(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp("A minimalist green leaf inside a water drop"),
		blobResp("image/png", "aW1n"),
	}}
	svc := newTestService(t, client)

	logo, err := svc.GenerateLogo(context.Background(), testIdea, "Plantly", venture.LogoStyleMinimal)
	require.NoError(t, err)
	assert.Equal(t, "A minimalist green leaf inside a water drop", logo.Prompt)
	assert.Equal(t, "data:image/png;base64,aW1n", logo.ImageURL)

	require.Len(t, client.calls, 2)
	assert.Empty(t, client.calls[0].AspectRatio)
	assert.Equal(t, "1:1", client.calls[1].AspectRatio)
	assert.Equal(t, logo.Prompt, client.calls[1].Prompt, "image call uses the synthesized prompt")
}

func TestGenerateFullPlan_LogoFailureDoesNotAbort(t *testing.T) {
	// Naming succeeds, logo prompt synthesis fails, website and
	// marketing must still run and succeed.
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{"names": ["Plantly", "Sproutly"], "rationale": "green"}`),
		failResp(errors.New("boom")),
		textResp(`{"sitemap": "Hero, Features", "heroCopy": "Never kill a plant again", "colorPalette": ["#00FF00"]}`),
		textResp(`{"strategy": "Go viral", "socialPosts": ["post"], "checklist": ["launch"]}`),
	}}
	svc := newTestService(t, client)

	plan, err := svc.GenerateFullPlan(context.Background(), testIdea, "")
	require.NoError(t, err)

	assert.Equal(t, "Plantly", plan.Naming.SelectedName)
	assert.Empty(t, plan.Logo.ImageURL, "failed step stays at its empty default")
	assert.Empty(t, plan.Logo.Prompt)
	assert.Equal(t, "Hero, Features", plan.Website.Sitemap)
	assert.Equal(t, "Go viral", plan.Marketing.Strategy)
	assert.Len(t, client.calls, 4)
}

func TestGenerateFullPlan_NamingFailureFallsBack(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		failResp(errors.New("boom")),
		textResp("A logo prompt"),
		blobResp("image/png", "aW1n"),
		textResp(`{"sitemap": "Hero", "heroCopy": "copy", "colorPalette": []}`),
		textResp(`{"strategy": "plan", "socialPosts": [], "checklist": []}`),
	}}
	svc := newTestService(t, client)

	plan, err := svc.GenerateFullPlan(context.Background(), testIdea, venture.LogoStyleTech)
	require.NoError(t, err)

	assert.Empty(t, plan.Naming.SelectedName, "fallback name is never persisted as chosen")
	assert.Empty(t, plan.Naming.Suggestions)
	assert.Equal(t, venture.LogoStyleTech, plan.Logo.Style)
	assert.Contains(t, client.calls[1].Prompt, fallbackName, "later steps use the fallback name")
}

func TestConfigDefaultsPlanPacing(t *testing.T) {
	svc, err := NewService(&fakeClient{}, Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, defaultPlanStepDelay, svc.cfg.PlanStepDelay,
		"a bare config must still pace the full plan")
}

func TestGenerateFullPlan_PacesBetweenSteps(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{"names": ["Plantly"], "rationale": "r"}`),
		textResp("prompt"),
		blobResp("image/png", "aW1n"),
		textResp(`{"sitemap": "s", "heroCopy": "h", "colorPalette": []}`),
		textResp(`{"strategy": "m", "socialPosts": [], "checklist": []}`),
	}}
	svc, err := NewService(client, Config{PlanStepDelay: 2 * time.Second}, zap.NewNop())
	require.NoError(t, err)

	var slept []time.Duration
	svc.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	_, err = svc.GenerateFullPlan(context.Background(), testIdea, "")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}, slept)
}

func TestGenerateFullPlan_ContextCancelAborts(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{"names": ["Plantly"], "rationale": "r"}`),
	}}
	svc, err := NewService(client, Config{PlanStepDelay: time.Second}, zap.NewNop())
	require.NoError(t, err)
	svc.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	plan, err := svc.GenerateFullPlan(context.Background(), testIdea, "")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Plantly", plan.Naming.SelectedName, "completed steps are returned")
	assert.Len(t, client.calls, 1)
}

func TestRunFocusGroupSession_ResponseMap(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{
			"responses": [
				{"personaId": "p1", "text": "I would use this daily."},
				{"personaId": "p2", "text": "Seems gimmicky."}
			],
			"analysis": "Mixed reception."
		}`),
	}}
	svc := newTestService(t, client)

	personas := []venture.Persona{
		{ID: "p1", Name: "Ana", Age: 34, Occupation: "Designer"},
		{ID: "p2", Name: "Bo", Age: 61, Occupation: "Retired teacher"},
	}
	result, err := svc.RunFocusGroupSession(context.Background(), testIdea, personas, "Would you pay for this?")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"p1": "I would use this daily.",
		"p2": "Seems gimmicky.",
	}, result.ResponseMap())
	assert.Equal(t, "Mixed reception.", result.Analysis)
}

func TestRunFocusGroupSession_RequiresPersonas(t *testing.T) {
	svc := newTestService(t, &fakeClient{})
	_, err := svc.RunFocusGroupSession(context.Background(), testIdea, nil, "q")
	require.Error(t, err)
}

func TestGenerateWargameEvent_CarriesRound(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{"event": "GrowCorp raised $5M and is undercutting your prices."}`),
	}}
	svc := newTestService(t, client)

	nemesis := venture.Nemesis{Name: "GrowCorp", Tagline: "Growth at any cost", Strength: "Capital"}
	result, err := svc.GenerateWargameEvent(context.Background(), testIdea, "Plantly", nemesis, 3)
	require.NoError(t, err)
	assert.Equal(t, "GrowCorp raised $5M and is undercutting your prices.", result.Event)

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].Prompt, "Round 3")
}

func TestRunGauntletTurn_TermSheetCollapse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSheet  bool
		wantStatus string
	}{
		{
			name: "win carries a term sheet",
			raw: `{
				"responseText": "We're in.", "nextSpeakerName": "Rex",
				"interestChange": 20, "isGameOver": true, "feedback": "Strong pitch.",
				"termSheet": {"valuation": "$5M", "investment": "$1M", "equity": "20%"}
			}`,
			wantSheet:  true,
			wantStatus: venture.GauntletFunded,
		},
		{
			name: "loss collapses N/A to no sheet",
			raw: `{
				"responseText": "We'll pass.", "nextSpeakerName": "Rex",
				"interestChange": -10, "isGameOver": true, "feedback": "Too vague.",
				"termSheet": {"valuation": "N/A", "investment": "N/A", "equity": "N/A"}
			}`,
			wantSheet:  false,
			wantStatus: venture.GauntletRejected,
		},
		{
			name: "mid-game ignores the sheet entirely",
			raw: `{
				"responseText": "Tell me about churn.", "nextSpeakerName": "Rex",
				"interestChange": 5, "isGameOver": false, "feedback": "",
				"termSheet": {"valuation": "$5M", "investment": "$1M", "equity": "20%"}
			}`,
			wantSheet:  false,
			wantStatus: venture.GauntletActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{queue: []func() (*genai.Response, error){textResp(tt.raw)}}
			svc := newTestService(t, client)

			outcome, err := svc.RunGauntletTurn(context.Background(), testIdea, "Plantly", nil, 50, "Our churn is 2%.")
			require.NoError(t, err)

			if tt.wantSheet {
				require.NotNil(t, outcome.TermSheet)
				assert.Equal(t, "$5M", outcome.TermSheet.Valuation)
			} else {
				assert.Nil(t, outcome.TermSheet)
			}

			phase := venture.GauntletPhase{Status: venture.GauntletActive, InterestLevel: 50}
			venture.ApplyGauntletTurn(&phase, "Our churn is 2%.", *outcome)
			assert.Equal(t, tt.wantStatus, phase.Status)
		})
	}
}

func TestGenerateSpeech(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		blobResp("audio/pcm", "cGNt"),
	}}
	svc := newTestService(t, client)

	data, err := svc.GenerateSpeech(context.Background(), "Hello founder")
	require.NoError(t, err)
	assert.Equal(t, "cGNt", data)

	require.Len(t, client.calls, 1)
	req := client.calls[0]
	assert.Equal(t, defaultTTSModel, req.Model)
	assert.Equal(t, []genai.Modality{genai.ModalityAudio}, req.Modalities)
	assert.Equal(t, ttsVoice, req.Voice)
}

func TestGenerateSpeech_NoAudio(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp("sorry, text only"),
	}}
	svc := newTestService(t, client)

	_, err := svc.GenerateSpeech(context.Background(), "Hello")
	require.Error(t, err)
}

func TestAnalyzeCompetitors_PhaseConversion(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp(`{
			"competitors": [{
				"name": "GrowCorp", "type": "Direct", "description": "Big incumbent",
				"strengths": ["brand"], "weaknesses": ["slow"],
				"marketShareEst": 40, "differentiator": "Move faster"
			}],
			"marketSummary": "Crowded but sleepy."
		}`),
	}}
	svc := newTestService(t, client)

	result, err := svc.AnalyzeCompetitors(context.Background(), testIdea, "Plantly")
	require.NoError(t, err)

	phase := result.Phase()
	require.Len(t, phase.Competitors, 1)
	assert.Equal(t, venture.CompetitorDirect, phase.Competitors[0].Type)
	assert.Equal(t, 40, phase.Competitors[0].MarketShareEst)
	assert.Equal(t, "Crowded but sleepy.", phase.MarketSummary)
}

func TestMalformedStructuredResponse(t *testing.T) {
	client := &fakeClient{queue: []func() (*genai.Response, error){
		textResp("Sure! Here are some great names for you:"),
	}}
	svc := newTestService(t, client)

	_, err := svc.GenerateNames(context.Background(), testIdea)
	require.Error(t, err)
	assert.ErrorIs(t, err, genai.ErrMalformedResponse)
}
