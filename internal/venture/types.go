package venture

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmptyProjectName = errors.New("project name cannot be empty")
	ErrInvalidProjectID = errors.New("invalid project ID")
)

// Project represents one startup venture.
type Project struct {
	// ID is the unique project identifier (UUID).
	ID string `json:"id"`

	// Name is the human-readable project name.
	Name string `json:"name"`

	// SchemaVersion tracks which data-shape upgrades have been applied.
	// Documents written before versioning was introduced carry 0.
	SchemaVersion int `json:"schemaVersion"`

	// CreatedAt is when the project was created.
	CreatedAt time.Time `json:"createdAt"`

	// LastUpdated is refreshed on every mutation.
	LastUpdated time.Time `json:"lastUpdated"`

	// Data aggregates all feature phases.
	Data ProjectData `json:"data"`
}

// NewProject creates a project with a generated UUID and all-default data.
func NewProject(name string, now time.Time) (*Project, error) {
	if name == "" {
		return nil, ErrEmptyProjectName
	}
	return &Project{
		ID:            uuid.New().String(),
		Name:          name,
		SchemaVersion: CurrentSchemaVersion,
		CreatedAt:     now,
		LastUpdated:   now,
		Data:          DefaultData(),
	}, nil
}

// ProjectData is the fixed-shape record of all feature phases.
type ProjectData struct {
	Idea               IdeaPhase               `json:"idea"`
	Naming             NamingPhase             `json:"naming"`
	Logo               LogoPhase               `json:"logo"`
	Website            WebsitePhase            `json:"website"`
	Marketing          MarketingPhase          `json:"marketing"`
	PitchDeck          PitchDeckPhase          `json:"pitchDeck"`
	Boardroom          BoardroomPhase          `json:"boardroom"`
	FocusGroup         FocusGroupPhase         `json:"focusGroup"`
	Competitor         CompetitorPhase         `json:"competitor"`
	CompetitorAnalysis CompetitorAnalysisPhase `json:"competitorAnalysis"`
	Pivot              PivotPhase              `json:"pivot"`
	Mockup             MockupPhase             `json:"mockup"`
	Mentor             MentorPhase             `json:"mentor"`
	Gauntlet           GauntletPhase           `json:"gauntlet"`
	Badges             []string                `json:"badges"`
}

// IdeaPhase holds the intake form answers.
type IdeaPhase struct {
	Description     string `json:"description"`
	TargetAudience  string `json:"targetAudience"`
	UniqueValueProp string `json:"uniqueValueProp"`
	Industry        string `json:"industry"`
	Skills          string `json:"skills"`
	Budget          string `json:"budget"`
	IsComplete      bool   `json:"isComplete"`
}

// NamingPhase holds generated name suggestions and the chosen name.
// An empty SelectedName means no name has been chosen yet.
type NamingPhase struct {
	Suggestions  []string `json:"suggestions"`
	SelectedName string   `json:"selectedName"`
	Rationale    string   `json:"rationale"`
}

// Logo styles accepted by the logo generator.
const (
	LogoStyleMinimal = "minimal"
	LogoStyleModern  = "modern"
	LogoStylePlayful = "playful"
	LogoStyleTech    = "tech"
)

// LogoPhase holds the generated image prompt and the image as a data URL.
// An empty ImageURL means no logo has been generated.
type LogoPhase struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"imageUrl"`
	Style    string `json:"style"`
}

// WebsitePhase holds the website plan.
type WebsitePhase struct {
	Sitemap      string   `json:"sitemap"` // markdown
	HeroCopy     string   `json:"heroCopy"`
	ColorPalette []string `json:"colorPalette"`
}

// Campaign is a fully-planned marketing campaign.
type Campaign struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"` // e.g. Launch, Viral, Influencer
	Title     string   `json:"title"`
	Objective string   `json:"objective"`
	Tactics   []string `json:"tactics"`
	Channels  []string `json:"channels"`
	Timeline  string   `json:"timeline"`
}

// CampaignConcept is a brainstormed campaign pitch, not yet planned out.
type CampaignConcept struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// MarketingPhase holds strategy, sample posts, and campaigns.
type MarketingPhase struct {
	Strategy    string            `json:"strategy"` // markdown
	SocialPosts []string          `json:"socialPosts"`
	Checklist   []string          `json:"checklist"`
	Campaigns   []Campaign        `json:"campaigns"`
	Concepts    []CampaignConcept `json:"concepts"`
}

// Slide is one pitch deck slide outline.
type Slide struct {
	Title     string `json:"title"`
	Content   string `json:"content"` // markdown or bullet points
	VisualCue string `json:"visualCue"`
}

// PitchDeckPhase holds the deck outline.
type PitchDeckPhase struct {
	Slides []Slide `json:"slides"`
}

// BoardResponses holds one answer per advisory persona.
type BoardResponses struct {
	Visionary string `json:"visionary"`
	Growth    string `json:"growth"`
	Skeptic   string `json:"skeptic"`
}

// BoardroomEntry records one advisory board exchange.
type BoardroomEntry struct {
	Question  string         `json:"question"`
	Responses BoardResponses `json:"responses"`
	Timestamp time.Time      `json:"timestamp"`
}

// BoardroomPhase is the append-only boardroom transcript.
type BoardroomPhase struct {
	History []BoardroomEntry `json:"history"`
}

// Persona is one synthetic focus group participant.
type Persona struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Occupation string `json:"occupation"`
	Bio        string `json:"bio"`
	PainPoints string `json:"painPoints"`
}

// FocusGroupEntry records one moderated session: per-persona responses
// keyed by persona id plus the moderator's analysis.
type FocusGroupEntry struct {
	Question  string            `json:"question"`
	Responses map[string]string `json:"responses"`
	Analysis  string            `json:"analysis"`
	Timestamp time.Time         `json:"timestamp"`
}

// FocusGroupPhase holds the recruited personas and session history.
type FocusGroupPhase struct {
	Personas []Persona         `json:"personas"`
	History  []FocusGroupEntry `json:"history"`
}

// Nemesis is the generated arch-competitor for the wargames simulation.
type Nemesis struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
	Bio      string `json:"bio"`
}

// WargameRound records one event/action/outcome turn.
type WargameRound struct {
	Event             string `json:"event"`
	PlayerAction      string `json:"playerAction"`
	Outcome           string `json:"outcome"`
	MarketShareChange int    `json:"marketShareChange"`
}

// CompetitorPhase is the wargames state. MarketShare starts at 50 and is
// clamped to [0,100] by callers at the point of update.
type CompetitorPhase struct {
	Nemesis     *Nemesis       `json:"nemesis"`
	MarketShare int            `json:"marketShare"`
	Rounds      []WargameRound `json:"rounds"`
}

// Competitor type classifications.
const (
	CompetitorDirect   = "Direct"
	CompetitorIndirect = "Indirect"
	CompetitorFuture   = "Future"
)

// Competitor is one entry in the landscape analysis.
type Competitor struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	MarketShareEst int      `json:"marketShareEst"`
	Differentiator string   `json:"differentiator"`
}

// CompetitorAnalysisPhase holds the landscape analysis results.
type CompetitorAnalysisPhase struct {
	Competitors   []Competitor `json:"competitors"`
	MarketSummary string       `json:"marketSummary"`
}

// PivotSuggestion is one generated pivot direction.
type PivotSuggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PivotPhase holds pivot suggestions.
type PivotPhase struct {
	Pivots []PivotSuggestion `json:"pivots"`
}

// MockupPhase holds the generated landing page HTML.
// An empty HTML means no mockup has been generated.
type MockupPhase struct {
	HTML          string    `json:"html"`
	LastGenerated time.Time `json:"lastGenerated"`
}

// Mentor message roles.
const (
	MentorRoleUser   = "user"
	MentorRoleMentor = "mentor"
)

// MentorMessage is one line of the mentor chat transcript. AudioURL is
// set when a spoken rendition was generated for the message.
type MentorMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	AudioURL  string    `json:"audioUrl,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// MentorPhase is the mentor chat transcript.
type MentorPhase struct {
	Messages []MentorMessage `json:"messages"`
}

// Gauntlet statuses.
const (
	GauntletIdle     = "idle"
	GauntletActive   = "active"
	GauntletFunded   = "funded"
	GauntletRejected = "rejected"
)

// Gauntlet speakers.
const (
	GauntletSpeakerVC   = "VC"
	GauntletSpeakerUser = "User"
)

// GauntletTurn is one line of the investor gauntlet conversation.
type GauntletTurn struct {
	Speaker string `json:"speaker"`
	Name    string `json:"name,omitempty"`
	Text    string `json:"text"`
}

// TermSheet is the offer extended when the gauntlet is won.
type TermSheet struct {
	Valuation  string `json:"valuation"`
	Investment string `json:"investment"`
	Equity     string `json:"equity"`
}

// GauntletPhase is the investor gauntlet simulation state. InterestLevel
// starts at 50 and is clamped to [0,100] by callers.
type GauntletPhase struct {
	Status        string         `json:"status"`
	InterestLevel int            `json:"interestLevel"`
	History       []GauntletTurn `json:"history"`
	Feedback      string         `json:"feedback"`
	TermSheet     *TermSheet     `json:"termSheet"`
}
