package match

import (
	"math/rand"
	"time"
)

// Session holds the full state of a sequence of rounds between two players.
// It is not safe for concurrent use; the owner drives it from one goroutine.
type Session struct {
	pairs     []Pair
	rng       *rand.Rand
	cards     []Card
	players   [2]*Player
	current   int
	selected  []int
	remaining int
	phase     Phase
	round     int
	attempts  int
	history   []RoundResult
}

// NewSession validates the pairs, seats two players and deals the first
// round. The starting player is chosen at random. A nil rng uses a
// time-seeded source.
func NewSession(pairs []Pair, names [2]string, rng *rand.Rand) (*Session, error) {
	if err := ValidatePairs(pairs); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		pairs: append([]Pair(nil), pairs...),
		rng:   rng,
		players: [2]*Player{
			{Name: names[0]},
			{Name: names[1]},
		},
		selected: make([]int, 0, 2),
	}
	s.setCurrent(rng.Intn(2))
	s.deal()
	return s, nil
}

// deal lays out a fresh shuffled round and discards any selection.
func (s *Session) deal() {
	s.cards = Deal(s.pairs, s.rng)
	s.selected = s.selected[:0]
	s.remaining = len(s.pairs)
	s.attempts = 0
	s.phase = PhaseIdle
	s.round++
	for _, p := range s.players {
		p.Score = 0
	}
}

func (s *Session) setCurrent(i int) {
	s.current = i
	for n, p := range s.players {
		p.Active = n == i
	}
}

// SelectCard turns the card at index face up for the current player. It is
// ignored when the index is out of range, the card is already selected or
// matched, or selection is blocked. The second card of a selection is
// evaluated immediately.
func (s *Session) SelectCard(index int) Outcome {
	if index < 0 || index >= len(s.cards) {
		return OutcomeIgnored
	}
	if !s.phase.CanSelect() {
		return OutcomeIgnored
	}
	c := &s.cards[index]
	if !c.Selectable() {
		return OutcomeIgnored
	}

	c.Selected = true
	s.selected = append(s.selected, index)
	if len(s.selected) == 1 {
		s.phase = PhaseOneSelected
		return OutcomeSelected
	}
	return s.evaluate()
}

// evaluate compares the two selected cards.
func (s *Session) evaluate() Outcome {
	s.attempts++
	first, second := &s.cards[s.selected[0]], &s.cards[s.selected[1]]
	if first.Pair != second.Index {
		s.phase = PhaseAwaitingHide
		return OutcomeMismatch
	}

	for _, c := range []*Card{first, second} {
		c.Selected = false
		c.Matched = true
		c.Owner = s.current
	}
	s.players[s.current].Score++
	s.remaining--
	s.selected = s.selected[:0]
	s.phase = PhaseIdle

	if s.remaining == 0 {
		s.EndRound()
		return OutcomeRoundOver
	}
	return OutcomeMatch
}

// HideSelected turns a mismatched pair face down again and passes the turn.
// It reports false when there is nothing to hide.
func (s *Session) HideSelected() bool {
	if s.phase != PhaseAwaitingHide {
		return false
	}
	for _, i := range s.selected {
		s.cards[i].Selected = false
	}
	s.selected = s.selected[:0]
	s.setCurrent(s.other())
	s.phase = PhaseIdle
	return true
}

// EndRound closes a round whose pairs are all matched. The higher score
// wins a game, a tie awards one to both. Scores are recorded and reset, and
// the loser opens the next round; after a tie the turn simply switches.
// It reports false if the round still has pairs or was already closed.
func (s *Session) EndRound() (RoundResult, bool) {
	if s.remaining != 0 || s.phase == PhaseRoundOver {
		return RoundResult{}, false
	}

	p0, p1 := s.players[0], s.players[1]
	result := RoundResult{
		Round:    s.round,
		Scores:   [2]int{p0.Score, p1.Score},
		Attempts: s.attempts,
	}

	switch {
	case p0.Score > p1.Score:
		p0.GamesWon++
		result.Winners = []int{0}
		s.setCurrent(1)
	case p1.Score > p0.Score:
		p1.GamesWon++
		result.Winners = []int{1}
		s.setCurrent(0)
	default:
		p0.GamesWon++
		p1.GamesWon++
		result.Winners = []int{0, 1}
		s.setCurrent(s.other())
	}
	result.NextStarter = s.current

	p0.Score = 0
	p1.Score = 0
	s.history = append(s.history, result)
	s.phase = PhaseRoundOver
	return result, true
}

// NextRound deals a new shuffled layout after a round is over. Games won
// carry over.
func (s *Session) NextRound() bool {
	if s.phase != PhaseRoundOver {
		return false
	}
	s.deal()
	return true
}

// Continue performs the single table action: hide a mismatched pair, or
// start the next round once the current one is over.
func (s *Session) Continue() bool {
	switch s.phase {
	case PhaseAwaitingHide:
		return s.HideSelected()
	case PhaseRoundOver:
		return s.NextRound()
	default:
		return false
	}
}

func (s *Session) other() int {
	return 1 - s.current
}

// Cards returns a copy of the current layout.
func (s *Session) Cards() []Card {
	return append([]Card(nil), s.cards...)
}

// Card returns the card at index.
func (s *Session) Card(index int) (Card, bool) {
	if index < 0 || index >= len(s.cards) {
		return Card{}, false
	}
	return s.cards[index], true
}

// Players returns copies of both players.
func (s *Session) Players() [2]Player {
	return [2]Player{*s.players[0], *s.players[1]}
}

// Current returns the index of the player whose turn it is.
func (s *Session) Current() int {
	return s.current
}

// CurrentPlayer returns a copy of the player whose turn it is.
func (s *Session) CurrentPlayer() Player {
	return *s.players[s.current]
}

// Selected returns the layout indices of the face-up selection.
func (s *Session) Selected() []int {
	return append([]int(nil), s.selected...)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Remaining returns the number of unmatched pairs.
func (s *Session) Remaining() int {
	return s.remaining
}

// PairCount returns the number of pairs dealt each round.
func (s *Session) PairCount() int {
	return len(s.pairs)
}

// Round returns the 1-based number of the current round.
func (s *Session) Round() int {
	return s.round
}

// Attempts returns the pairs evaluated so far this round.
func (s *Session) Attempts() int {
	return s.attempts
}

// History returns the results of all finished rounds, oldest first.
func (s *Session) History() []RoundResult {
	return append([]RoundResult(nil), s.history...)
}

// LastResult returns the most recent round result, if any.
func (s *Session) LastResult() (RoundResult, bool) {
	if len(s.history) == 0 {
		return RoundResult{}, false
	}
	return s.history[len(s.history)-1], true
}

// GamesPlayed returns the number of finished rounds.
func (s *Session) GamesPlayed() int {
	return len(s.history)
}
