package venture

// DataPatch is a partial ProjectData update. Only non-nil phases are
// applied, and each applied phase replaces the stored phase wholesale:
// a caller updating one field of a phase must carry the phase's other
// fields to avoid clobbering them.
type DataPatch struct {
	Idea               *IdeaPhase               `json:"idea,omitempty"`
	Naming             *NamingPhase             `json:"naming,omitempty"`
	Logo               *LogoPhase               `json:"logo,omitempty"`
	Website            *WebsitePhase            `json:"website,omitempty"`
	Marketing          *MarketingPhase          `json:"marketing,omitempty"`
	PitchDeck          *PitchDeckPhase          `json:"pitchDeck,omitempty"`
	Boardroom          *BoardroomPhase          `json:"boardroom,omitempty"`
	FocusGroup         *FocusGroupPhase         `json:"focusGroup,omitempty"`
	Competitor         *CompetitorPhase         `json:"competitor,omitempty"`
	CompetitorAnalysis *CompetitorAnalysisPhase `json:"competitorAnalysis,omitempty"`
	Pivot              *PivotPhase              `json:"pivot,omitempty"`
	Mockup             *MockupPhase             `json:"mockup,omitempty"`
	Mentor             *MentorPhase             `json:"mentor,omitempty"`
	Gauntlet           *GauntletPhase           `json:"gauntlet,omitempty"`
	Badges             *[]string                `json:"badges,omitempty"`
}

// IsEmpty reports whether the patch carries no phases.
func (p *DataPatch) IsEmpty() bool {
	return p == nil || *p == (DataPatch{})
}

// ApplyTo shallow-merges the patch into d, phase by phase.
func (p *DataPatch) ApplyTo(d *ProjectData) {
	if p == nil {
		return
	}
	if p.Idea != nil {
		d.Idea = *p.Idea
	}
	if p.Naming != nil {
		d.Naming = *p.Naming
	}
	if p.Logo != nil {
		d.Logo = *p.Logo
	}
	if p.Website != nil {
		d.Website = *p.Website
	}
	if p.Marketing != nil {
		d.Marketing = *p.Marketing
	}
	if p.PitchDeck != nil {
		d.PitchDeck = *p.PitchDeck
	}
	if p.Boardroom != nil {
		d.Boardroom = *p.Boardroom
	}
	if p.FocusGroup != nil {
		d.FocusGroup = *p.FocusGroup
	}
	if p.Competitor != nil {
		d.Competitor = *p.Competitor
	}
	if p.CompetitorAnalysis != nil {
		d.CompetitorAnalysis = *p.CompetitorAnalysis
	}
	if p.Pivot != nil {
		d.Pivot = *p.Pivot
	}
	if p.Mockup != nil {
		d.Mockup = *p.Mockup
	}
	if p.Mentor != nil {
		d.Mentor = *p.Mentor
	}
	if p.Gauntlet != nil {
		d.Gauntlet = *p.Gauntlet
	}
	if p.Badges != nil {
		d.Badges = *p.Badges
	}
}
