package venture

// Badge names awarded for phase completion.
const (
	BadgeVisionary   = "Visionary"
	BadgeNamed       = "Named"
	BadgeBranded     = "Branded"
	BadgeWebmaster   = "Webmaster"
	BadgeStrategist  = "Strategist"
	BadgeFounderMode = "Founder Mode"
)

// Badges derives the earned badge list from the project data.
func Badges(d *ProjectData) []string {
	b := []string{}
	if d.Idea.IsComplete {
		b = append(b, BadgeVisionary)
	}
	if d.Naming.SelectedName != "" {
		b = append(b, BadgeNamed)
	}
	if d.Logo.ImageURL != "" {
		b = append(b, BadgeBranded)
	}
	if d.Website.Sitemap != "" {
		b = append(b, BadgeWebmaster)
	}
	if d.Marketing.Strategy != "" {
		b = append(b, BadgeStrategist)
	}
	if len(b) >= 5 {
		b = append(b, BadgeFounderMode)
	}
	return b
}

// progressSteps are the core build steps counted toward completion; the
// ongoing advisory tools (boardroom, focus group, wargames, mentor,
// gauntlet, pivots) are excluded.
const progressSteps = 6

// Progress returns the completion percentage over the core steps:
// idea, naming, logo, website, marketing, pitch deck.
func Progress(d *ProjectData) int {
	done := 0
	if d.Idea.IsComplete {
		done++
	}
	if d.Naming.SelectedName != "" {
		done++
	}
	if d.Logo.ImageURL != "" {
		done++
	}
	if d.Website.Sitemap != "" {
		done++
	}
	if d.Marketing.Strategy != "" {
		done++
	}
	if len(d.PitchDeck.Slides) > 0 {
		done++
	}
	pct := done * 100 / progressSteps
	if pct > 100 {
		pct = 100
	}
	return pct
}
