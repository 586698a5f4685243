package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/media"
	"github.com/fyrsmithlabs/launchpad/internal/session"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// dispatch runs a generation task tied to the project in the URL and
// returns the updated project. A result arriving after the user
// switched projects is discarded with a 409.
func (s *Server) dispatch(c echo.Context, feature string, task session.Task) error {
	p, err := s.session.Dispatch(c.Request().Context(), c.Param("id"), task)
	s.metrics.ObserveGeneration(feature, err)
	if err != nil {
		s.logger.Warn("generation failed",
			zap.String("feature", feature),
			zap.String("project_id", c.Param("id")),
			zap.Error(err))
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// brandName returns the chosen name, falling back to the project name
// until one is picked.
func brandName(p *venture.Project) string {
	if p.Data.Naming.SelectedName != "" {
		return p.Data.Naming.SelectedName
	}
	return p.Name
}

// GenerateIdeaRequest seeds the idea generator. All fields optional.
type GenerateIdeaRequest struct {
	Topic    string `json:"topic"`
	Industry string `json:"industry"`
	Audience string `json:"audience"`
}

func (s *Server) handleGenerateIdea(c echo.Context) error {
	var req GenerateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	return s.dispatch(c, "idea", func(ctx context.Context, _ *venture.Project) (venture.DataPatch, error) {
		idea, err := s.advisor.GenerateStartupIdea(ctx, req.Topic, req.Industry, req.Audience)
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{Idea: &venture.IdeaPhase{
			Description:     idea.Description,
			TargetAudience:  idea.TargetAudience,
			UniqueValueProp: idea.UniqueValueProp,
			Industry:        idea.Industry,
			Skills:          idea.Skills,
			Budget:          idea.Budget,
			IsComplete:      true,
		}}, nil
	})
}

func (s *Server) handleGenerateNames(c echo.Context) error {
	return s.dispatch(c, "naming", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateNames(ctx, p.Data.Idea)
		if err != nil {
			return venture.DataPatch{}, err
		}
		naming := p.Data.Naming
		naming.Suggestions = result.Names
		naming.Rationale = result.Rationale
		return venture.DataPatch{Naming: &naming}, nil
	})
}

// GenerateLogoRequest selects the logo style.
type GenerateLogoRequest struct {
	Style string `json:"style"`
}

func (s *Server) handleGenerateLogo(c echo.Context) error {
	var req GenerateLogoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Style == "" {
		req.Style = venture.LogoStyleModern
	}

	return s.dispatch(c, "logo", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		logo, err := s.advisor.GenerateLogo(ctx, p.Data.Idea, brandName(p), req.Style)
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{Logo: &venture.LogoPhase{
			Prompt:   logo.Prompt,
			ImageURL: logo.ImageURL,
			Style:    req.Style,
		}}, nil
	})
}

func (s *Server) handleGenerateWebsite(c echo.Context) error {
	return s.dispatch(c, "website", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateWebsitePlan(ctx, p.Data.Idea, brandName(p))
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{Website: &venture.WebsitePhase{
			Sitemap:      result.Sitemap,
			HeroCopy:     result.HeroCopy,
			ColorPalette: result.ColorPalette,
		}}, nil
	})
}

func (s *Server) handleGenerateMarketing(c echo.Context) error {
	return s.dispatch(c, "marketing", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateMarketing(ctx, p.Data.Idea, brandName(p))
		if err != nil {
			return venture.DataPatch{}, err
		}
		marketing := p.Data.Marketing
		marketing.Strategy = result.Strategy
		marketing.SocialPosts = result.SocialPosts
		marketing.Checklist = result.Checklist
		return venture.DataPatch{Marketing: &marketing}, nil
	})
}

// CampaignTypeRequest selects the campaign type to work on.
type CampaignTypeRequest struct {
	Type    string `json:"type"`
	Concept string `json:"concept"`
}

func (s *Server) handleBrainstormCampaigns(c echo.Context) error {
	var req CampaignTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "campaign type is required")
	}

	return s.dispatch(c, "campaign_concepts", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.BrainstormCampaigns(ctx, p.Data.Idea, req.Type)
		if err != nil {
			return venture.DataPatch{}, err
		}
		marketing := p.Data.Marketing
		for _, concept := range result.Concepts {
			marketing.Concepts = append(marketing.Concepts, venture.CampaignConcept{
				ID:          uuid.New().String(),
				Type:        req.Type,
				Title:       concept.Title,
				Description: concept.Description,
				Impact:      concept.Impact,
			})
		}
		return venture.DataPatch{Marketing: &marketing}, nil
	})
}

func (s *Server) handleGenerateCampaign(c echo.Context) error {
	var req CampaignTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "campaign type is required")
	}

	return s.dispatch(c, "campaign", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateCampaign(ctx, p.Data.Idea, brandName(p), req.Type, req.Concept)
		if err != nil {
			return venture.DataPatch{}, err
		}
		marketing := p.Data.Marketing
		marketing.Campaigns = append(marketing.Campaigns, venture.Campaign{
			ID:        uuid.New().String(),
			Type:      req.Type,
			Title:     result.Title,
			Objective: result.Objective,
			Tactics:   result.Tactics,
			Channels:  result.Channels,
			Timeline:  result.Timeline,
		})
		return venture.DataPatch{Marketing: &marketing}, nil
	})
}

func (s *Server) handleGeneratePitchDeck(c echo.Context) error {
	return s.dispatch(c, "pitch_deck", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GeneratePitchDeck(ctx, p.Data.Idea, brandName(p))
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{PitchDeck: &venture.PitchDeckPhase{Slides: result.Slides}}, nil
	})
}

func (s *Server) handleGeneratePivots(c echo.Context) error {
	return s.dispatch(c, "pivots", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GeneratePivots(ctx, p.Data.Idea)
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{Pivot: &venture.PivotPhase{Pivots: result.Pivots}}, nil
	})
}

func (s *Server) handleGenerateMockup(c echo.Context) error {
	return s.dispatch(c, "mockup", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateLandingPage(ctx, p.Data.Idea, brandName(p), p.Data.Website.ColorPalette)
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{Mockup: &venture.MockupPhase{
			HTML:          result.HTML,
			LastGenerated: s.now(),
		}}, nil
	})
}

// FullPlanRequest selects the logo style for the one-click plan.
type FullPlanRequest struct {
	LogoStyle string `json:"logoStyle"`
}

func (s *Server) handleGenerateFullPlan(c echo.Context) error {
	var req FullPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	return s.dispatch(c, "full_plan", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		plan, err := s.advisor.GenerateFullPlan(ctx, p.Data.Idea, req.LogoStyle)
		if err != nil {
			return venture.DataPatch{}, err
		}

		// Only steps that produced something land in the patch; failed
		// steps keep whatever the project already had.
		var patch venture.DataPatch
		if len(plan.Naming.Suggestions) > 0 {
			patch.Naming = &plan.Naming
		}
		if plan.Logo.Prompt != "" || plan.Logo.ImageURL != "" {
			patch.Logo = &plan.Logo
		}
		if plan.Website.Sitemap != "" {
			patch.Website = &plan.Website
		}
		if plan.Marketing.Strategy != "" {
			marketing := p.Data.Marketing
			marketing.Strategy = plan.Marketing.Strategy
			marketing.SocialPosts = plan.Marketing.SocialPosts
			marketing.Checklist = plan.Marketing.Checklist
			patch.Marketing = &marketing
		}
		return patch, nil
	})
}

// QuestionRequest carries a single free-form question.
type QuestionRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleBoardroom(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question is required")
	}

	return s.dispatch(c, "boardroom", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.AskBoardroom(ctx, p.Data.Idea, brandName(p), req.Question)
		if err != nil {
			return venture.DataPatch{}, err
		}
		boardroom := p.Data.Boardroom
		venture.AppendBoardroomEntry(&boardroom, req.Question, result.Responses(), s.now())
		return venture.DataPatch{Boardroom: &boardroom}, nil
	})
}

func (s *Server) handleFocusGroupPersonas(c echo.Context) error {
	return s.dispatch(c, "focus_group_personas", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateFocusGroupPersonas(ctx, p.Data.Idea)
		if err != nil {
			return venture.DataPatch{}, err
		}
		focusGroup := p.Data.FocusGroup
		focusGroup.Personas = make([]venture.Persona, 0, len(result.Personas))
		for _, persona := range result.Personas {
			focusGroup.Personas = append(focusGroup.Personas, venture.Persona{
				ID:         uuid.New().String(),
				Name:       persona.Name,
				Age:        persona.Age,
				Occupation: persona.Occupation,
				Bio:        persona.Bio,
				PainPoints: persona.PainPoints,
			})
		}
		return venture.DataPatch{FocusGroup: &focusGroup}, nil
	})
}

func (s *Server) handleFocusGroupSession(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question is required")
	}

	return s.dispatch(c, "focus_group_session", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.RunFocusGroupSession(ctx, p.Data.Idea, p.Data.FocusGroup.Personas, req.Question)
		if err != nil {
			return venture.DataPatch{}, err
		}
		focusGroup := p.Data.FocusGroup
		venture.AppendFocusGroupEntry(&focusGroup, req.Question, result.ResponseMap(), result.Analysis, s.now())
		return venture.DataPatch{FocusGroup: &focusGroup}, nil
	})
}

func (s *Server) handleGenerateNemesis(c echo.Context) error {
	return s.dispatch(c, "nemesis", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.GenerateNemesis(ctx, p.Data.Idea, brandName(p))
		if err != nil {
			return venture.DataPatch{}, err
		}
		competitor := p.Data.Competitor
		competitor.Nemesis = result.Nemesis()
		return venture.DataPatch{Competitor: &competitor}, nil
	})
}

// WargameEventResponse is the next event to respond to. Events are not
// persisted on their own; the round lands when the turn is resolved.
type WargameEventResponse struct {
	Event string `json:"event"`
}

func (s *Server) handleWargameEvent(c echo.Context) error {
	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if p.Data.Competitor.Nemesis == nil {
		return echo.NewHTTPError(http.StatusConflict, "generate a nemesis first")
	}

	round := len(p.Data.Competitor.Rounds) + 1
	result, err := s.advisor.GenerateWargameEvent(c.Request().Context(), p.Data.Idea, brandName(p), *p.Data.Competitor.Nemesis, round)
	s.metrics.ObserveGeneration("wargame_event", err)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, WargameEventResponse{Event: result.Event})
}

// WargameTurnRequest carries the event and the player's counter-move.
type WargameTurnRequest struct {
	Event  string `json:"event"`
	Action string `json:"action"`
}

func (s *Server) handleWargameTurn(c echo.Context) error {
	var req WargameTurnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Event == "" || req.Action == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event and action are required")
	}

	return s.dispatch(c, "wargame_turn", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		competitor := p.Data.Competitor
		if competitor.Nemesis == nil {
			return venture.DataPatch{}, echo.NewHTTPError(http.StatusConflict, "generate a nemesis first")
		}
		result, err := s.advisor.ResolveWargameTurn(ctx, p.Data.Idea, brandName(p), *competitor.Nemesis, req.Event, req.Action, competitor.MarketShare)
		if err != nil {
			return venture.DataPatch{}, err
		}
		venture.ApplyWargameRound(&competitor, venture.WargameRound{
			Event:             req.Event,
			PlayerAction:      req.Action,
			Outcome:           result.Outcome,
			MarketShareChange: result.MarketShareChange,
		})
		return venture.DataPatch{Competitor: &competitor}, nil
	})
}

func (s *Server) handleAnalyzeCompetitors(c echo.Context) error {
	return s.dispatch(c, "competitor_analysis", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.AnalyzeCompetitors(ctx, p.Data.Idea, brandName(p))
		if err != nil {
			return venture.DataPatch{}, err
		}
		phase := result.Phase()
		return venture.DataPatch{CompetitorAnalysis: &phase}, nil
	})
}

func (s *Server) handleGauntletStart(c echo.Context) error {
	return s.dispatch(c, "gauntlet_start", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		result, err := s.advisor.StartGauntlet(ctx, p.Data.Idea, brandName(p))
		if err != nil {
			return venture.DataPatch{}, err
		}
		return venture.DataPatch{Gauntlet: &venture.GauntletPhase{
			Status:        venture.GauntletActive,
			InterestLevel: venture.DefaultInterestLevel,
			History: []venture.GauntletTurn{{
				Speaker: venture.GauntletSpeakerVC,
				Name:    result.SpeakerName,
				Text:    result.Text,
			}},
		}}, nil
	})
}

// GauntletTurnRequest carries the founder's answer.
type GauntletTurnRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleGauntletTurn(c echo.Context) error {
	var req GauntletTurnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	return s.dispatch(c, "gauntlet_turn", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		gauntlet := p.Data.Gauntlet
		if gauntlet.Status != venture.GauntletActive {
			return venture.DataPatch{}, echo.NewHTTPError(http.StatusConflict, "no active gauntlet session")
		}
		outcome, err := s.advisor.RunGauntletTurn(ctx, p.Data.Idea, brandName(p), gauntlet.History, gauntlet.InterestLevel, req.Message)
		if err != nil {
			return venture.DataPatch{}, err
		}
		venture.ApplyGauntletTurn(&gauntlet, req.Message, *outcome)
		return venture.DataPatch{Gauntlet: &gauntlet}, nil
	})
}

// MentorChatRequest carries the founder's message to the mentor.
type MentorChatRequest struct {
	Mentor  string `json:"mentor"`
	Message string `json:"message"`
	Speak   bool   `json:"speak"`
}

func (s *Server) handleMentorChat(c echo.Context) error {
	var req MentorChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	return s.dispatch(c, "mentor", func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		reply, err := s.advisor.ChatWithMentor(ctx, p, req.Mentor, p.Data.Mentor.Messages, req.Message)
		if err != nil {
			return venture.DataPatch{}, err
		}

		// Speech is optional garnish on the reply; a failed synthesis
		// does not fail the chat.
		audioURL := ""
		if req.Speak {
			audio, err := s.advisor.GenerateSpeech(ctx, reply)
			if err != nil {
				s.logger.Warn("mentor speech synthesis failed", zap.Error(err))
			} else {
				audioURL = "data:audio/pcm;base64," + audio
			}
		}

		now := s.now()
		mentor := p.Data.Mentor
		mentor.Messages = append(mentor.Messages,
			venture.MentorMessage{
				ID:        uuid.New().String(),
				Role:      venture.MentorRoleUser,
				Text:      req.Message,
				Timestamp: now,
			},
			venture.MentorMessage{
				ID:        uuid.New().String(),
				Role:      venture.MentorRoleMentor,
				Text:      reply,
				AudioURL:  audioURL,
				Timestamp: now,
			},
		)
		return venture.DataPatch{Mentor: &mentor}, nil
	})
}

// AssistantChatRequest carries a free-form message to the co-founder
// assistant. Replies are not persisted.
type AssistantChatRequest struct {
	Message string `json:"message"`
}

// AssistantChatResponse is the assistant's reply.
type AssistantChatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleAssistantChat(c echo.Context) error {
	var req AssistantChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	reply, err := s.advisor.ChatWithAssistant(c.Request().Context(), p, req.Message)
	s.metrics.ObserveGeneration("assistant", err)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, AssistantChatResponse{Reply: reply})
}

// SpeechRequest carries text to synthesize.
type SpeechRequest struct {
	Text string `json:"text"`
}

// SpeechResponse carries the synthesized audio as base64 PCM16.
type SpeechResponse struct {
	Audio      string `json:"audio"`
	SampleRate int    `json:"sampleRate"`
}

func (s *Server) handleSpeech(c echo.Context) error {
	var req SpeechRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	audio, err := s.advisor.GenerateSpeech(c.Request().Context(), req.Text)
	if err == nil {
		// The payload must decode as playable PCM16 before it reaches a
		// client.
		if _, decErr := media.DecodePCM16(audio); decErr != nil {
			err = fmt.Errorf("%w: %v", genai.ErrMalformedResponse, decErr)
		}
	}
	s.metrics.ObserveGeneration("speech", err)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, SpeechResponse{
		Audio:      audio,
		SampleRate: media.SampleRate,
	})
}
