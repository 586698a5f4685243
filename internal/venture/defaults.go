package venture

// Starting values for the simulation gauges.
const (
	DefaultMarketShare   = 50
	DefaultInterestLevel = 50
)

// DefaultData returns a ProjectData with every phase at its empty default.
func DefaultData() ProjectData {
	return ProjectData{
		Idea:               IdeaPhase{},
		Naming:             DefaultNaming(),
		Logo:               DefaultLogo(),
		Website:            DefaultWebsite(),
		Marketing:          DefaultMarketing(),
		PitchDeck:          DefaultPitchDeck(),
		Boardroom:          DefaultBoardroom(),
		FocusGroup:         DefaultFocusGroup(),
		Competitor:         DefaultCompetitor(),
		CompetitorAnalysis: DefaultCompetitorAnalysis(),
		Pivot:              DefaultPivot(),
		Mockup:             MockupPhase{},
		Mentor:             DefaultMentor(),
		Gauntlet:           DefaultGauntlet(),
		Badges:             []string{},
	}
}

// DefaultNaming returns the empty naming phase.
func DefaultNaming() NamingPhase {
	return NamingPhase{Suggestions: []string{}}
}

// DefaultLogo returns the empty logo phase with the default style.
func DefaultLogo() LogoPhase {
	return LogoPhase{Style: LogoStyleModern}
}

// DefaultWebsite returns the empty website phase.
func DefaultWebsite() WebsitePhase {
	return WebsitePhase{ColorPalette: []string{}}
}

// DefaultMarketing returns the empty marketing phase.
func DefaultMarketing() MarketingPhase {
	return MarketingPhase{
		SocialPosts: []string{},
		Checklist:   []string{},
		Campaigns:   []Campaign{},
		Concepts:    []CampaignConcept{},
	}
}

// DefaultPitchDeck returns the empty pitch deck phase.
func DefaultPitchDeck() PitchDeckPhase {
	return PitchDeckPhase{Slides: []Slide{}}
}

// DefaultBoardroom returns the empty boardroom phase.
func DefaultBoardroom() BoardroomPhase {
	return BoardroomPhase{History: []BoardroomEntry{}}
}

// DefaultFocusGroup returns the empty focus group phase.
func DefaultFocusGroup() FocusGroupPhase {
	return FocusGroupPhase{Personas: []Persona{}, History: []FocusGroupEntry{}}
}

// DefaultCompetitor returns the wargames phase at its starting state.
func DefaultCompetitor() CompetitorPhase {
	return CompetitorPhase{MarketShare: DefaultMarketShare, Rounds: []WargameRound{}}
}

// DefaultCompetitorAnalysis returns the empty analysis phase.
func DefaultCompetitorAnalysis() CompetitorAnalysisPhase {
	return CompetitorAnalysisPhase{Competitors: []Competitor{}}
}

// DefaultPivot returns the empty pivot phase.
func DefaultPivot() PivotPhase {
	return PivotPhase{Pivots: []PivotSuggestion{}}
}

// DefaultMentor returns the empty mentor phase.
func DefaultMentor() MentorPhase {
	return MentorPhase{Messages: []MentorMessage{}}
}

// DefaultGauntlet returns the gauntlet phase at its starting state.
func DefaultGauntlet() GauntletPhase {
	return GauntletPhase{
		Status:        GauntletIdle,
		InterestLevel: DefaultInterestLevel,
		History:       []GauntletTurn{},
	}
}
