package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// BoardroomResult is one round of advisory board answers.
type BoardroomResult struct {
	Visionary string `json:"visionary"`
	Growth    string `json:"growth"`
	Skeptic   string `json:"skeptic"`
}

// Validate implements genai.Validator.
func (r *BoardroomResult) Validate() error {
	if r.Visionary == "" && r.Growth == "" && r.Skeptic == "" {
		return errors.New("all board responses are empty")
	}
	return nil
}

// Responses converts the result into the persisted shape.
func (r *BoardroomResult) Responses() venture.BoardResponses {
	return venture.BoardResponses{
		Visionary: r.Visionary,
		Growth:    r.Growth,
		Skeptic:   r.Skeptic,
	}
}

// AskBoardroom puts a question to the three advisory personas at once.
func (s *Service) AskBoardroom(ctx context.Context, idea venture.IdeaPhase, name, question string) (*BoardroomResult, error) {
	prompt := fmt.Sprintf(`You are simulating a startup advisory board meeting for %q (%s).
The founder asks: %q

Respond as three distinct personas:
1. The Visionary (optimistic, big-picture, focuses on potential).
2. The Growth Hacker (practical, data-driven, focuses on acquisition and revenue).
3. The Skeptic (critical, risk-averse, plays devil's advocate).

Keep each response concise (2-3 sentences) and in character.`,
		name, idea.Description, question)

	schema := genai.Object(map[string]*genai.Schema{
		"visionary": genai.String(),
		"growth":    genai.String(),
		"skeptic":   genai.String(),
	})

	var out BoardroomResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PersonasResult is a recruited focus group.
type PersonasResult struct {
	Personas []struct {
		Name       string `json:"name"`
		Age        int    `json:"age"`
		Occupation string `json:"occupation"`
		Bio        string `json:"bio"`
		PainPoints string `json:"painPoints"`
	} `json:"personas"`
}

// Validate implements genai.Validator.
func (r *PersonasResult) Validate() error {
	if len(r.Personas) == 0 {
		return errors.New("no personas returned")
	}
	return nil
}

// GenerateFocusGroupPersonas recruits four synthetic target customers.
// Identifiers are assigned by the caller, not the model.
func (s *Service) GenerateFocusGroupPersonas(ctx context.Context, idea venture.IdeaPhase) (*PersonasResult, error) {
	prompt := fmt.Sprintf(`Generate 4 distinct user personas for a focus group testing this startup:
Description: %s
Target Audience: %s

Make them diverse in age, occupation, and attitude. One should be slightly
skeptical of new technology. For each provide a name, age, occupation, a
short bio, and their main pain points related to this problem space.`,
		idea.Description, idea.TargetAudience)

	schema := genai.Object(map[string]*genai.Schema{
		"personas": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":       genai.String(),
			"age":        genai.Integer(),
			"occupation": genai.String(),
			"bio":        genai.String(),
			"painPoints": genai.String(),
		})),
	})

	var out PersonasResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FocusGroupResult is one moderated session: per-persona answers plus
// the moderator's synthesis.
type FocusGroupResult struct {
	Responses []struct {
		PersonaID string `json:"personaId"`
		Text      string `json:"text"`
	} `json:"responses"`
	Analysis string `json:"analysis"`
}

// Validate implements genai.Validator.
func (r *FocusGroupResult) Validate() error {
	if len(r.Responses) == 0 {
		return errors.New("no persona responses returned")
	}
	return nil
}

// ResponseMap collapses the response list into the persisted
// persona-id-keyed map.
func (r *FocusGroupResult) ResponseMap() map[string]string {
	m := make(map[string]string, len(r.Responses))
	for _, resp := range r.Responses {
		m[resp.PersonaID] = resp.Text
	}
	return m
}

// RunFocusGroupSession asks the recruited personas a question and has
// the moderator synthesize the takeaways.
func (s *Service) RunFocusGroupSession(ctx context.Context, idea venture.IdeaPhase, personas []venture.Persona, question string) (*FocusGroupResult, error) {
	if len(personas) == 0 {
		return nil, errors.New("no personas recruited")
	}

	var roster strings.Builder
	for _, p := range personas {
		fmt.Fprintf(&roster, "- id=%s: %s (%d, %s). Bio: %s Pain points: %s\n",
			p.ID, p.Name, p.Age, p.Occupation, p.Bio, p.PainPoints)
	}

	prompt := fmt.Sprintf(`You are moderating a focus group about this startup:
%s

Participants:
%s
The moderator asks: %q

Have EACH participant answer in character (2-3 sentences, reference their
bio and pain points). Then write a short moderator's analysis of the key
takeaways. In each response, personaId must be the participant's id
exactly as listed above.`,
		idea.Description, roster.String(), question)

	schema := genai.Object(map[string]*genai.Schema{
		"responses": genai.Array(genai.Object(map[string]*genai.Schema{
			"personaId": genai.String(),
			"text":      genai.String(),
		})),
		"analysis": genai.String(),
	})

	var out FocusGroupResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NemesisResult is the generated arch-competitor.
type NemesisResult struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
	Bio      string `json:"bio"`
}

// Validate implements genai.Validator.
func (r *NemesisResult) Validate() error {
	if r.Name == "" {
		return errors.New("nemesis name is empty")
	}
	return nil
}

// Nemesis converts the result into the persisted shape.
func (r *NemesisResult) Nemesis() *venture.Nemesis {
	return &venture.Nemesis{
		Name:     r.Name,
		Tagline:  r.Tagline,
		Strength: r.Strength,
		Weakness: r.Weakness,
		Bio:      r.Bio,
	}
}

// GenerateNemesis invents a fictional arch-rival for the wargames
// simulation.
func (s *Service) GenerateNemesis(ctx context.Context, idea venture.IdeaPhase, name string) (*NemesisResult, error) {
	prompt := fmt.Sprintf(`Create a fictional "Arch-Nemesis" competitor company for this startup:
Startup: %s (%s)
Industry: %s

The nemesis should be a formidable, slightly evil-sounding corporate rival.
Give it a name, a corporate tagline, its key strength, its hidden weakness,
and a short dramatic bio.`,
		name, idea.Description, idea.Industry)

	schema := genai.Object(map[string]*genai.Schema{
		"name":     genai.String(),
		"tagline":  genai.String(),
		"strength": genai.String(),
		"weakness": genai.String(),
		"bio":      genai.String(),
	})

	var out NemesisResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WargameEventResult is a new market event to react to.
type WargameEventResult struct {
	Event string `json:"event"`
}

// Validate implements genai.Validator.
func (r *WargameEventResult) Validate() error {
	if r.Event == "" {
		return errors.New("event is empty")
	}
	return nil
}

// GenerateWargameEvent produces the next hostile market event driven by
// the nemesis. The round number escalates the stakes as the game runs.
func (s *Service) GenerateWargameEvent(ctx context.Context, idea venture.IdeaPhase, name string, nemesis venture.Nemesis, round int) (*WargameEventResult, error) {
	prompt := fmt.Sprintf(`Market Wargames simulation. Round %d.
Player startup: %s (%s)
Nemesis: %s - %s (Strength: %s)

Generate a single dramatic market event where the nemesis makes an
aggressive move against the player (e.g. undercutting prices, poaching
talent, a smear campaign, a copycat feature launch). Escalate with the
round number. 2-3 sentences, ending with a clear threat the player must
respond to.`,
		round, name, idea.Description, nemesis.Name, nemesis.Tagline, nemesis.Strength)

	schema := genai.Object(map[string]*genai.Schema{
		"event": genai.String(),
	})

	var out WargameEventResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WargameOutcomeResult is the adjudicated result of a player action.
type WargameOutcomeResult struct {
	Outcome           string `json:"outcome"`
	MarketShareChange int    `json:"marketShareChange"`
}

// Validate implements genai.Validator.
func (r *WargameOutcomeResult) Validate() error {
	if r.Outcome == "" {
		return errors.New("outcome is empty")
	}
	return nil
}

// ResolveWargameTurn judges the player's counter-move against the
// current event and returns the narrative outcome and market share
// swing. Clamping is the caller's job.
func (s *Service) ResolveWargameTurn(ctx context.Context, idea venture.IdeaPhase, name string, nemesis venture.Nemesis, event, playerAction string, marketShare int) (*WargameOutcomeResult, error) {
	prompt := fmt.Sprintf(`Market Wargames simulation. Adjudicate this turn.
Player startup: %s (%s). Current market share: %d%%.
Nemesis: %s (Strength: %s, Weakness: %s)

Event: %s
Player's response: %q

Judge how effective the response is. Reward creative moves that exploit
the nemesis's weakness; punish passive or generic ones. Write a dramatic
2-3 sentence outcome and a marketShareChange between -15 and +15
(positive means the player gains share).`,
		name, idea.Description, marketShare,
		nemesis.Name, nemesis.Strength, nemesis.Weakness,
		event, playerAction)

	schema := genai.Object(map[string]*genai.Schema{
		"outcome":           genai.String(),
		"marketShareChange": genai.Integer(),
	})

	var out WargameOutcomeResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompetitorAnalysisResult is the competitive landscape report.
type CompetitorAnalysisResult struct {
	Competitors []struct {
		Name           string   `json:"name"`
		Type           string   `json:"type"`
		Description    string   `json:"description"`
		Strengths      []string `json:"strengths"`
		Weaknesses     []string `json:"weaknesses"`
		MarketShareEst int      `json:"marketShareEst"`
		Differentiator string   `json:"differentiator"`
	} `json:"competitors"`
	MarketSummary string `json:"marketSummary"`
}

// Validate implements genai.Validator.
func (r *CompetitorAnalysisResult) Validate() error {
	if len(r.Competitors) == 0 {
		return errors.New("no competitors returned")
	}
	return nil
}

// Phase converts the result into the persisted shape.
func (r *CompetitorAnalysisResult) Phase() venture.CompetitorAnalysisPhase {
	phase := venture.CompetitorAnalysisPhase{
		Competitors:   make([]venture.Competitor, 0, len(r.Competitors)),
		MarketSummary: r.MarketSummary,
	}
	for _, c := range r.Competitors {
		phase.Competitors = append(phase.Competitors, venture.Competitor{
			Name:           c.Name,
			Type:           c.Type,
			Description:    c.Description,
			Strengths:      c.Strengths,
			Weaknesses:     c.Weaknesses,
			MarketShareEst: c.MarketShareEst,
			Differentiator: c.Differentiator,
		})
	}
	return phase
}

// AnalyzeCompetitors maps the realistic competitive landscape: direct,
// indirect, and future threats.
func (s *Service) AnalyzeCompetitors(ctx context.Context, idea venture.IdeaPhase, name string) (*CompetitorAnalysisResult, error) {
	prompt := fmt.Sprintf(`Act as a market research analyst.
Startup: %s
Description: %s
Industry: %s
USP: %s

Identify 3-4 realistic competitors (they can be real archetypes of
companies in this space). Classify each as Direct, Indirect, or Future.
For each, give a description, 2-3 strengths, 2-3 weaknesses, an estimated
market share percentage, and how the startup can differentiate against it.
Finish with a 2-3 sentence market summary.`,
		name, idea.Description, idea.Industry, idea.UniqueValueProp)

	schema := genai.Object(map[string]*genai.Schema{
		"competitors": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":           genai.String(),
			"type":           genai.StringEnum(venture.CompetitorDirect, venture.CompetitorIndirect, venture.CompetitorFuture),
			"description":    genai.String(),
			"strengths":      genai.Array(genai.String()),
			"weaknesses":     genai.Array(genai.String()),
			"marketShareEst": genai.Integer(),
			"differentiator": genai.String(),
		})),
		"marketSummary": genai.String(),
	})

	var out CompetitorAnalysisResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GauntletOpenResult is the VC's opening challenge.
type GauntletOpenResult struct {
	SpeakerName string `json:"speakerName"`
	Text        string `json:"text"`
}

// Validate implements genai.Validator.
func (r *GauntletOpenResult) Validate() error {
	if r.Text == "" {
		return errors.New("opening challenge is empty")
	}
	return nil
}

// StartGauntlet opens the investor gauntlet with the lead VC's first
// hard question.
func (s *Service) StartGauntlet(ctx context.Context, idea venture.IdeaPhase, name string) (*GauntletOpenResult, error) {
	prompt := fmt.Sprintf(`"The Gauntlet" investor pitch simulation.
The founder of %s (%s) walks into a room of tough venture capitalists.

You are the lead VC. Invent a fitting VC name for yourself and open with
a skeptical, pointed first question about the business. Keep it sharp,
2-3 sentences.`,
		name, idea.Description)

	schema := genai.Object(map[string]*genai.Schema{
		"speakerName": genai.String(),
		"text":        genai.String(),
	})

	var out GauntletOpenResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// gauntletTurnResult is the wire shape of a judged gauntlet exchange.
// The term sheet comes back as strings with "N/A" standing in for
// no-offer, collapsed to a nil sheet before persisting.
type gauntletTurnResult struct {
	ResponseText    string `json:"responseText"`
	NextSpeakerName string `json:"nextSpeakerName"`
	InterestChange  int    `json:"interestChange"`
	IsGameOver      bool   `json:"isGameOver"`
	Feedback        string `json:"feedback"`
	TermSheet       struct {
		Valuation  string `json:"valuation"`
		Investment string `json:"investment"`
		Equity     string `json:"equity"`
	} `json:"termSheet"`
}

// Validate implements genai.Validator.
func (r *gauntletTurnResult) Validate() error {
	if r.ResponseText == "" {
		return errors.New("vc response is empty")
	}
	return nil
}

func isNA(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed == "" || strings.EqualFold(trimmed, "N/A")
}

func (r *gauntletTurnResult) outcome() venture.GauntletOutcome {
	out := venture.GauntletOutcome{
		ResponseText:    r.ResponseText,
		NextSpeakerName: r.NextSpeakerName,
		InterestChange:  r.InterestChange,
		IsGameOver:      r.IsGameOver,
		Feedback:        r.Feedback,
	}
	if r.IsGameOver && !isNA(r.TermSheet.Valuation) {
		out.TermSheet = &venture.TermSheet{
			Valuation:  r.TermSheet.Valuation,
			Investment: r.TermSheet.Investment,
			Equity:     r.TermSheet.Equity,
		}
	}
	return out
}

// RunGauntletTurn judges the founder's answer: the VC responds, interest
// shifts, and when the pitch ends the result carries the feedback and,
// on a win, the term sheet.
func (s *Service) RunGauntletTurn(ctx context.Context, idea venture.IdeaPhase, name string, history []venture.GauntletTurn, interestLevel int, founderMessage string) (*venture.GauntletOutcome, error) {
	var transcript strings.Builder
	for _, turn := range history {
		speaker := turn.Speaker
		if turn.Name != "" {
			speaker = turn.Name
		}
		fmt.Fprintf(&transcript, "%s: %s\n", speaker, turn.Text)
	}

	prompt := fmt.Sprintf(`"The Gauntlet" investor pitch simulation. You are a panel of tough VCs.
Startup: %s (%s)
Current investor interest: %d/100.

Transcript so far:
%s
Founder's latest answer: %q

Judge the answer. Respond as a VC (the same one or a new panel member -
set nextSpeakerName accordingly) with a follow-up question or reaction.
Set interestChange between -20 and +20 based on the answer's quality.
If interest would reach 100 or the pitch has clearly run its course
(roughly 5+ exchanges), set isGameOver true and provide final feedback.
On a winning pitch also fill in the term sheet (valuation, investment,
equity); otherwise set all term sheet fields to "N/A".`,
		name, idea.Description, interestLevel, transcript.String(), founderMessage)

	schema := genai.Object(map[string]*genai.Schema{
		"responseText":    genai.String(),
		"nextSpeakerName": genai.String(),
		"interestChange":  genai.Integer(),
		"isGameOver":      genai.Boolean(),
		"feedback":        genai.String(),
		"termSheet": genai.Object(map[string]*genai.Schema{
			"valuation":  genai.StringDesc(`The agreed valuation, or "N/A" when no offer is made.`),
			"investment": genai.String(),
			"equity":     genai.String(),
		}),
	})

	var out gauntletTurnResult
	if err := s.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	outcome := out.outcome()
	return &outcome, nil
}
