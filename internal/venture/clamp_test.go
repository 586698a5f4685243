package venture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"within range", 42, 42},
		{"upper bound", 100, 100},
		{"lower bound", 0, 0},
		{"overflow", 115, 100},
		{"underflow", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.in))
		})
	}
}

func TestApplyWargameRound_ClampsMarketShare(t *testing.T) {
	phase := DefaultCompetitor()
	phase.MarketShare = 95

	ApplyWargameRound(&phase, WargameRound{
		Event:             "Nemesis ships a broken release",
		PlayerAction:      "press launch",
		Outcome:           "users flock over",
		MarketShareChange: 20,
	})

	assert.Equal(t, 100, phase.MarketShare, "95 + 20 clamps to 100, not 115")
	assert.Len(t, phase.Rounds, 1)

	ApplyWargameRound(&phase, WargameRound{MarketShareChange: -150})
	assert.Equal(t, 0, phase.MarketShare)
}

func TestApplyGauntletTurn_Funded(t *testing.T) {
	phase := DefaultGauntlet()

	ApplyGauntletTurn(&phase, "we have 10k paying users", GauntletOutcome{
		ResponseText:    "Impressive traction. We're in.",
		NextSpeakerName: "The Shark",
		InterestChange:  60,
		IsGameOver:      true,
		Feedback:        "Strong metrics carried the pitch.",
		TermSheet:       &TermSheet{Valuation: "$5M", Investment: "$1M", Equity: "20%"},
	})

	assert.Equal(t, GauntletFunded, phase.Status)
	assert.Equal(t, 100, phase.InterestLevel, "50 + 60 clamps to 100")
	assert.Len(t, phase.History, 2)
	assert.Equal(t, GauntletSpeakerUser, phase.History[0].Speaker)
	assert.Equal(t, GauntletSpeakerVC, phase.History[1].Speaker)
}

func TestApplyGauntletTurn_RejectedWithoutTermSheet(t *testing.T) {
	phase := DefaultGauntlet()

	ApplyGauntletTurn(&phase, "we will figure out revenue later", GauntletOutcome{
		ResponseText:   "That's not a business, that's a hobby.",
		InterestChange: -80,
		IsGameOver:     true,
		Feedback:       "No path to revenue.",
	})

	assert.Equal(t, GauntletRejected, phase.Status)
	assert.Equal(t, 0, phase.InterestLevel)
	assert.Nil(t, phase.TermSheet)
}

func TestApplyGauntletTurn_OngoingStaysActive(t *testing.T) {
	phase := DefaultGauntlet()

	ApplyGauntletTurn(&phase, "our CAC is $12", GauntletOutcome{
		ResponseText:    "And your LTV?",
		NextSpeakerName: "The Analyst",
		InterestChange:  10,
	})

	assert.Equal(t, GauntletActive, phase.Status)
	assert.Equal(t, 60, phase.InterestLevel)
}
