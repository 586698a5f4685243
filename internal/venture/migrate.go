package venture

// CurrentSchemaVersion is the newest document shape. Bump it and append
// an upgrade func whenever a phase gains a field that needs backfill.
const CurrentSchemaVersion = 1

// upgrades[i] upgrades a document from version i to version i+1. The
// chain is append-only; each step must be idempotent.
var upgrades = []func(*ProjectData){
	upgradeToV1,
}

// Migrate upgrades a project document to the current schema version,
// returning true if anything changed. Documents already at the current
// version are left untouched, so a value that is legitimately empty is
// never re-initialized.
func Migrate(p *Project) bool {
	if p.SchemaVersion >= CurrentSchemaVersion {
		return false
	}
	for v := p.SchemaVersion; v < CurrentSchemaVersion; v++ {
		upgrades[v](&p.Data)
	}
	p.SchemaVersion = CurrentSchemaVersion
	return true
}

// upgradeToV1 backfills every phase that older documents may lack. This
// replaces the pre-versioning behavior of presence-checking each field
// on every read: it runs once per legacy document.
func upgradeToV1(d *ProjectData) {
	if d.Naming.Suggestions == nil {
		d.Naming.Suggestions = []string{}
	}
	if d.Logo.Style == "" {
		d.Logo.Style = LogoStyleModern
	}
	if d.Website.ColorPalette == nil {
		d.Website.ColorPalette = []string{}
	}
	if d.Marketing.SocialPosts == nil {
		d.Marketing.SocialPosts = []string{}
	}
	if d.Marketing.Checklist == nil {
		d.Marketing.Checklist = []string{}
	}
	if d.Marketing.Campaigns == nil {
		d.Marketing.Campaigns = []Campaign{}
	}
	if d.Marketing.Concepts == nil {
		d.Marketing.Concepts = []CampaignConcept{}
	}
	if d.PitchDeck.Slides == nil {
		d.PitchDeck.Slides = []Slide{}
	}
	if d.Boardroom.History == nil {
		d.Boardroom.History = []BoardroomEntry{}
	}
	if d.FocusGroup.Personas == nil {
		d.FocusGroup.Personas = []Persona{}
	}
	if d.FocusGroup.History == nil {
		d.FocusGroup.History = []FocusGroupEntry{}
	}
	// A legacy document with no wargame activity at all gets the
	// starting market share; one with recorded state keeps its value.
	if d.Competitor.Nemesis == nil && d.Competitor.Rounds == nil && d.Competitor.MarketShare == 0 {
		d.Competitor.MarketShare = DefaultMarketShare
	}
	if d.Competitor.Rounds == nil {
		d.Competitor.Rounds = []WargameRound{}
	}
	if d.CompetitorAnalysis.Competitors == nil {
		d.CompetitorAnalysis.Competitors = []Competitor{}
	}
	if d.Pivot.Pivots == nil {
		d.Pivot.Pivots = []PivotSuggestion{}
	}
	if d.Mentor.Messages == nil {
		d.Mentor.Messages = []MentorMessage{}
	}
	if d.Gauntlet.Status == "" {
		d.Gauntlet.Status = GauntletIdle
		if d.Gauntlet.InterestLevel == 0 && len(d.Gauntlet.History) == 0 {
			d.Gauntlet.InterestLevel = DefaultInterestLevel
		}
	}
	if d.Gauntlet.History == nil {
		d.Gauntlet.History = []GauntletTurn{}
	}
	if d.Badges == nil {
		d.Badges = []string{}
	}
}
