package venture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeData() ProjectData {
	d := DefaultData()
	d.Idea.IsComplete = true
	d.Naming.SelectedName = "Plantly"
	d.Logo.ImageURL = "data:image/png;base64,xxxx"
	d.Website.Sitemap = "- Hero\n- Features"
	d.Marketing.Strategy = "Go narrow, then wide."
	d.PitchDeck.Slides = []Slide{{Title: "Problem"}}
	return d
}

func TestBadges(t *testing.T) {
	d := DefaultData()
	assert.Empty(t, Badges(&d))

	d.Idea.IsComplete = true
	assert.Equal(t, []string{BadgeVisionary}, Badges(&d))

	full := completeData()
	got := Badges(&full)
	assert.Contains(t, got, BadgeFounderMode, "five badges unlock Founder Mode")
	assert.Len(t, got, 6)
}

func TestProgress(t *testing.T) {
	d := DefaultData()
	assert.Equal(t, 0, Progress(&d))

	d.Idea.IsComplete = true
	d.Naming.SelectedName = "Plantly"
	d.Logo.ImageURL = "data:image/png;base64,xxxx"
	assert.Equal(t, 50, Progress(&d))

	full := completeData()
	assert.Equal(t, 100, Progress(&full))
}
