package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/media"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// IdeaResult is a generated startup idea, shaped like the intake form.
type IdeaResult struct {
	Description     string `json:"description"`
	TargetAudience  string `json:"targetAudience"`
	UniqueValueProp string `json:"uniqueValueProp"`
	Industry        string `json:"industry"`
	Skills          string `json:"skills"`
	Budget          string `json:"budget"`
}

// Validate implements genai.Validator.
func (r *IdeaResult) Validate() error {
	if r.Description == "" {
		return errors.New("idea description is empty")
	}
	return nil
}

// GenerateStartupIdea produces a viable startup idea, optionally seeded
// with a topic, industry, or audience. All-empty inputs yield a trending
// idea.
func (s *Service) GenerateStartupIdea(ctx context.Context, topic, industry, audience string) (*IdeaResult, error) {
	seed := "Generate a detailed, viable startup idea"
	if topic != "" {
		seed += fmt.Sprintf(" based on the topic/problem: %q", topic)
	}
	if industry != "" {
		seed += fmt.Sprintf(" within the %q industry", industry)
	}
	if audience != "" {
		seed += fmt.Sprintf(" targeting %q", audience)
	}
	if topic == "" && industry == "" && audience == "" {
		seed += " that is currently trending, unique, and high-potential"
	}

	prompt := fmt.Sprintf(`Act as a startup ideator.
%s.

Provide the full description (2-3 sentences), the specific target audience,
the killer feature / main differentiator, the industry niche, the required
skills (e.g. Dev, Sales), and an estimated MVP budget.`, seed)

	schema := genai.Object(map[string]*genai.Schema{
		"description":     genai.String(),
		"targetAudience":  genai.String(),
		"uniqueValueProp": genai.String(),
		"industry":        genai.String(),
		"skills":          genai.String(),
		"budget":          genai.String(),
	})

	var out IdeaResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NamingResult is a batch of business name suggestions.
type NamingResult struct {
	Names     []string `json:"names"`
	Rationale string   `json:"rationale"`
}

// Validate implements genai.Validator.
func (r *NamingResult) Validate() error {
	if len(r.Names) == 0 {
		return errors.New("no names returned")
	}
	return nil
}

// GenerateNames produces five business name candidates plus a rationale
// for the naming direction.
func (s *Service) GenerateNames(ctx context.Context, idea venture.IdeaPhase) (*NamingResult, error) {
	prompt := fmt.Sprintf(`You are a creative branding expert.
I have a startup idea:
Description: %s
Target Audience: %s
Industry: %s
USP: %s

Please generate 5 creative, memorable, and available-sounding business names.
Also provide a 1-sentence rationale for the overall naming direction.`,
		idea.Description, idea.TargetAudience, idea.Industry, idea.UniqueValueProp)

	schema := genai.Object(map[string]*genai.Schema{
		"names":     genai.Array(genai.String()),
		"rationale": genai.String(),
	})

	var out NamingResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LogoResult is a generated logo: the synthesized image prompt and the
// image as a data URL (empty when the model returned no image).
type LogoResult struct {
	Prompt   string
	ImageURL string
}

// GenerateLogo runs the two-step logo flow: synthesize a detailed
// text-to-image prompt, then generate the image itself.
func (s *Service) GenerateLogo(ctx context.Context, idea venture.IdeaPhase, name, style string) (*LogoResult, error) {
	promptReq := fmt.Sprintf(`Create a detailed text-to-image prompt for a modern startup logo.
Startup Name: %s
Description: %s
Industry: %s
Style: %s (e.g. minimalist, bold, abstract)

The prompt should be descriptive, mentioning colors, shapes, and composition.
Keep it under 50 words. Output ONLY the prompt text.`,
		name, idea.Description, idea.Industry, style)

	imagePrompt, err := s.generateText(ctx, promptReq)
	if err != nil {
		return nil, err
	}
	imagePrompt = strings.TrimSpace(imagePrompt)

	resp, err := s.client.Generate(ctx, &genai.Request{
		Model:       s.cfg.ImageModel,
		Prompt:      imagePrompt,
		AspectRatio: "1:1",
	})
	if err != nil {
		return nil, err
	}

	result := &LogoResult{Prompt: imagePrompt}
	if blob := resp.InlineData(); blob != nil {
		result.ImageURL = media.ImageDataURL(blob.MIMEType, blob.Data)
	}
	return result, nil
}

// WebsiteResult is a website plan.
type WebsiteResult struct {
	Sitemap      string   `json:"sitemap"`
	HeroCopy     string   `json:"heroCopy"`
	ColorPalette []string `json:"colorPalette"`
}

// Validate implements genai.Validator.
func (r *WebsiteResult) Validate() error {
	if r.Sitemap == "" {
		return errors.New("sitemap is empty")
	}
	return nil
}

// GenerateWebsitePlan produces a sitemap, hero copy, and color palette.
func (s *Service) GenerateWebsitePlan(ctx context.Context, idea venture.IdeaPhase, name string) (*WebsiteResult, error) {
	prompt := fmt.Sprintf(`Act as a web strategist.
Project: %s
Context: %s
Industry: %s

1. Create a simple 5-section sitemap (e.g. Hero, Features, Testimonials...).
2. Write compelling Hero Section copy (Headline & Subheadline).
3. Suggest a color palette (3 hex codes with names).`,
		name, idea.Description, idea.Industry)

	schema := genai.Object(map[string]*genai.Schema{
		"sitemap":      genai.StringDesc("Markdown list of sections"),
		"heroCopy":     genai.String(),
		"colorPalette": genai.Array(genai.String()),
	})

	var out WebsiteResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarketingResult is a launch marketing package.
type MarketingResult struct {
	Strategy    string   `json:"strategy"`
	SocialPosts []string `json:"socialPosts"`
	Checklist   []string `json:"checklist"`
}

// Validate implements genai.Validator.
func (r *MarketingResult) Validate() error {
	if r.Strategy == "" {
		return errors.New("strategy is empty")
	}
	return nil
}

// GenerateMarketing produces a strategy, sample social posts, and a
// prioritized launch checklist.
func (s *Service) GenerateMarketing(ctx context.Context, idea venture.IdeaPhase, name string) (*MarketingResult, error) {
	prompt := fmt.Sprintf(`Act as a digital marketing expert for %s.
Audience: %s
Industry: %s
Budget: %s

1. Write a 3-point High Level Strategy (Markdown).
2. Write 3 example social media posts (LinkedIn/Twitter style).
3. Create a 5-item prioritized Launch Checklist.`,
		name, idea.TargetAudience, idea.Industry, idea.Budget)

	schema := genai.Object(map[string]*genai.Schema{
		"strategy":    genai.String(),
		"socialPosts": genai.Array(genai.String()),
		"checklist":   genai.Array(genai.StringDesc("A list of actionable launch steps.")),
	})

	var out MarketingResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConceptsResult is a batch of brainstormed campaign concepts.
type ConceptsResult struct {
	Concepts []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Impact      string `json:"impact"`
	} `json:"concepts"`
}

// Validate implements genai.Validator.
func (r *ConceptsResult) Validate() error {
	if len(r.Concepts) == 0 {
		return errors.New("no concepts returned")
	}
	return nil
}

// BrainstormCampaigns produces three creative campaign concepts of the
// given type (e.g. Launch, Viral, Influencer).
func (s *Service) BrainstormCampaigns(ctx context.Context, idea venture.IdeaPhase, campaignType string) (*ConceptsResult, error) {
	prompt := fmt.Sprintf(`Act as a creative marketing director.
Startup Description: %s
Target Audience: %s

Brainstorm 3 distinct, creative, and actionable %q campaign concepts.
For each provide a catchy title, a one-sentence pitch, and an impact
rating (High/Medium/Low).`,
		idea.Description, idea.TargetAudience, campaignType)

	schema := genai.Object(map[string]*genai.Schema{
		"concepts": genai.Array(genai.Object(map[string]*genai.Schema{
			"title":       genai.String(),
			"description": genai.String(),
			"impact":      genai.String(),
		})),
	})

	var out ConceptsResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CampaignResult is a fully-planned campaign.
type CampaignResult struct {
	Title     string   `json:"title"`
	Objective string   `json:"objective"`
	Tactics   []string `json:"tactics"`
	Channels  []string `json:"channels"`
	Timeline  string   `json:"timeline"`
}

// Validate implements genai.Validator.
func (r *CampaignResult) Validate() error {
	if r.Title == "" {
		return errors.New("campaign title is empty")
	}
	return nil
}

// GenerateCampaign produces a detailed, ready-to-execute campaign plan,
// optionally focused on a previously brainstormed concept.
func (s *Service) GenerateCampaign(ctx context.Context, idea venture.IdeaPhase, name, campaignType, concept string) (*CampaignResult, error) {
	brief := fmt.Sprintf(`Startup: %s
Description: %s
Target Audience: %s`, name, idea.Description, idea.TargetAudience)
	if concept != "" {
		brief += "\nFocus specifically on this creative concept: " + concept
	}

	prompt := fmt.Sprintf(`Act as a marketing director. Create a specific, actionable %s campaign plan.
%s

The plan should be detailed and ready to execute: a creative title, the
main objective, step-by-step tactics, the best channels, and a timeline
(e.g. 2 Weeks).`, campaignType, brief)

	schema := genai.Object(map[string]*genai.Schema{
		"title":     genai.String(),
		"objective": genai.String(),
		"tactics":   genai.Array(genai.String()),
		"channels":  genai.Array(genai.String()),
		"timeline":  genai.String(),
	})

	var out CampaignResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PitchDeckResult is a slide outline.
type PitchDeckResult struct {
	Slides []venture.Slide `json:"slides"`
}

// Validate implements genai.Validator.
func (r *PitchDeckResult) Validate() error {
	if len(r.Slides) == 0 {
		return errors.New("no slides returned")
	}
	return nil
}

// GeneratePitchDeck produces a 10-slide investor deck outline.
func (s *Service) GeneratePitchDeck(ctx context.Context, idea venture.IdeaPhase, name string) (*PitchDeckResult, error) {
	prompt := fmt.Sprintf(`Act as a venture capital consultant.
Create a 10-slide investor pitch deck outline for:
Startup Name: %s
Description: %s
Target Audience: %s
Industry: %s

For each slide, provide a Title, Key Content Points (as a short markdown
list), and a Visual Cue (what image/chart should go there).
Standard Flow: Problem, Solution, Market, Product, Business Model, etc.`,
		name, idea.Description, idea.TargetAudience, idea.Industry)

	schema := genai.Object(map[string]*genai.Schema{
		"slides": genai.Array(genai.Object(map[string]*genai.Schema{
			"title":     genai.String(),
			"content":   genai.String(),
			"visualCue": genai.String(),
		})),
	})

	var out PitchDeckResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PivotsResult is a batch of pivot directions.
type PivotsResult struct {
	Pivots []venture.PivotSuggestion `json:"pivots"`
}

// Validate implements genai.Validator.
func (r *PivotsResult) Validate() error {
	if len(r.Pivots) == 0 {
		return errors.New("no pivots returned")
	}
	return nil
}

// GeneratePivots produces three pivot directions: the moonshot, the
// niche, and the wildcard.
func (s *Service) GeneratePivots(ctx context.Context, idea venture.IdeaPhase) (*PivotsResult, error) {
	prompt := fmt.Sprintf(`Act as a disruptive startup mentor.
Take this idea:
Description: %s
Industry: %s

Generate 3 distinct "Pivot" directions to spark inspiration:
1. 'The Moonshot': How to scale this to a billion-dollar company (high risk/reward).
2. 'The Niche': How to focus on a tiny, underserved hyper-specific market.
3. 'The Wildcard': A completely unexpected angle (e.g. change the business model, medium, or core mechanic).`,
		idea.Description, idea.Industry)

	schema := genai.Object(map[string]*genai.Schema{
		"pivots": genai.Array(genai.Object(map[string]*genai.Schema{
			"type":        genai.String(),
			"title":       genai.String(),
			"description": genai.String(),
		})),
	})

	var out PivotsResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LandingPageResult is a complete single-page HTML mockup.
type LandingPageResult struct {
	HTML string `json:"html"`
}

// Validate implements genai.Validator.
func (r *LandingPageResult) Validate() error {
	if r.HTML == "" {
		return errors.New("no html returned")
	}
	return nil
}

// GenerateLandingPage produces a polished, self-contained landing page.
func (s *Service) GenerateLandingPage(ctx context.Context, idea venture.IdeaPhase, name string, colors []string) (*LandingPageResult, error) {
	colorInstruction := "Use a modern, professional color scheme."
	if len(colors) > 0 {
		colorInstruction = "Use these colors if appropriate: " + strings.Join(colors, ", ") + "."
	}

	prompt := fmt.Sprintf(`Act as a senior Frontend Developer and UI Designer.
Create a high-converting, single-page Landing Page for a startup.

Startup Name: %s
Description: %s
Target Audience: %s
Industry: %s
Design Instructions: %s

Requirements:
1. Use HTML5 and Tailwind CSS (loaded via CDN).
2. Include these sections: Navbar, Hero (with headline/CTA), Features (3-grid), Testimonials, Pricing (optional), Footer.
3. Use placeholder images with keywords related to the idea.
4. Make it look fully polished, responsive, and ready to publish.
5. Return ONLY the raw HTML string, no markdown code fences.`,
		name, idea.Description, idea.TargetAudience, idea.Industry, colorInstruction)

	schema := genai.Object(map[string]*genai.Schema{
		"html": genai.String(),
	})

	var out LandingPageResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
