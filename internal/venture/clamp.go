package venture

import "time"

// Clamp bounds a percentage to [0, 100]. The storage layer does not
// clamp; callers apply this at the point of update.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ApplyWargameRound appends a resolved round and shifts the market
// share by its change, clamped.
func ApplyWargameRound(phase *CompetitorPhase, round WargameRound) {
	phase.Rounds = append(phase.Rounds, round)
	phase.MarketShare = Clamp(phase.MarketShare + round.MarketShareChange)
}

// GauntletOutcome is the judged result of one gauntlet exchange.
type GauntletOutcome struct {
	ResponseText    string
	NextSpeakerName string
	InterestChange  int
	IsGameOver      bool
	Feedback        string
	TermSheet       *TermSheet
}

// ApplyGauntletTurn records the founder's message and the VC response,
// shifts the interest level (clamped), and settles the final status when
// the simulation ends: funded when a term sheet was extended, rejected
// otherwise.
func ApplyGauntletTurn(phase *GauntletPhase, founderMessage string, outcome GauntletOutcome) {
	phase.History = append(phase.History,
		GauntletTurn{Speaker: GauntletSpeakerUser, Text: founderMessage},
		GauntletTurn{Speaker: GauntletSpeakerVC, Name: outcome.NextSpeakerName, Text: outcome.ResponseText},
	)
	phase.InterestLevel = Clamp(phase.InterestLevel + outcome.InterestChange)
	if !outcome.IsGameOver {
		phase.Status = GauntletActive
		return
	}
	phase.Feedback = outcome.Feedback
	phase.TermSheet = outcome.TermSheet
	if outcome.TermSheet != nil {
		phase.Status = GauntletFunded
	} else {
		phase.Status = GauntletRejected
	}
}

// AppendBoardroomEntry records one advisory board exchange.
func AppendBoardroomEntry(phase *BoardroomPhase, question string, responses BoardResponses, now time.Time) {
	phase.History = append(phase.History, BoardroomEntry{
		Question:  question,
		Responses: responses,
		Timestamp: now,
	})
}

// AppendFocusGroupEntry records one moderated session.
func AppendFocusGroupEntry(phase *FocusGroupPhase, question string, responses map[string]string, analysis string, now time.Time) {
	phase.History = append(phase.History, FocusGroupEntry{
		Question:  question,
		Responses: responses,
		Analysis:  analysis,
		Timestamp: now,
	})
}
