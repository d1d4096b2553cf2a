// Package match implements the rules of a two-player memory-matching game:
// card selection, pair evaluation, scoring, turn rotation and the round
// lifecycle. It has no knowledge of rendering or input devices.
package match

// Phase represents where the current round is in its selection cycle.
type Phase int

const (
	// PhaseIdle - no cards selected, the current player may pick a card
	PhaseIdle Phase = iota
	// PhaseOneSelected - one card is face up, waiting for the second
	PhaseOneSelected
	// PhaseAwaitingHide - a mismatched pair is face up and must be hidden before play continues
	PhaseAwaitingHide
	// PhaseRoundOver - every pair has been matched
	PhaseRoundOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneSelected:
		return "one_selected"
	case PhaseAwaitingHide:
		return "awaiting_hide"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// CanSelect reports whether cards may be selected in this phase.
func (p Phase) CanSelect() bool {
	return p == PhaseIdle || p == PhaseOneSelected
}

// Outcome describes what a selection did.
type Outcome int

const (
	// OutcomeIgnored - the selection was not allowed and nothing changed
	OutcomeIgnored Outcome = iota
	// OutcomeSelected - first card of a pair turned face up
	OutcomeSelected
	// OutcomeMatch - second card matched the first
	OutcomeMatch
	// OutcomeMismatch - second card did not match, selection is now blocked
	OutcomeMismatch
	// OutcomeRoundOver - second card matched the last remaining pair
	OutcomeRoundOver
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Evaluated reports whether the outcome came from comparing two cards.
func (o Outcome) Evaluated() bool {
	return o == OutcomeMatch || o == OutcomeMismatch || o == OutcomeRoundOver
}
