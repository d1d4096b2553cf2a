package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SessionSuite struct {
	suite.Suite
	session *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.session = s.newSession(
		Pair{First: "a", Second: "a"},
		Pair{First: "b", Second: "b"},
	)
}

func (s *SessionSuite) newSession(pairs ...Pair) *Session {
	session, err := NewSession(pairs, [2]string{"Ada", "Bob"}, rand.New(rand.NewSource(42)))
	s.Require().NoError(err)
	return session
}

// indexOf returns the layout position of the card with the given face.
func (s *SessionSuite) indexOf(session *Session, face string) int {
	for _, c := range session.Cards() {
		if c.Face == face {
			return c.Index
		}
	}
	s.FailNow("card not found", face)
	return -1
}

// mismatchFor returns a card that is unmatched and not the partner of index.
func (s *SessionSuite) mismatchFor(session *Session, index int) int {
	card, _ := session.Card(index)
	for _, c := range session.Cards() {
		if c.Index != index && c.Index != card.Pair && !c.Matched {
			return c.Index
		}
	}
	s.FailNow("no mismatching card available")
	return -1
}

func (s *SessionSuite) matchPairAt(session *Session, index int) Outcome {
	card, _ := session.Card(index)
	s.Require().Equal(OutcomeSelected, session.SelectCard(index))
	return session.SelectCard(card.Pair)
}

func (s *SessionSuite) TestNewSession() {
	s.Len(s.session.Cards(), 4)
	s.Equal(2, s.session.Remaining())
	s.Equal(2, s.session.PairCount())
	s.Equal(1, s.session.Round())
	s.Equal(PhaseIdle, s.session.Phase())
	s.Empty(s.session.History())

	active := 0
	for i, p := range s.session.Players() {
		s.Zero(p.Score)
		s.Zero(p.GamesWon)
		if p.Active {
			active++
			s.Equal(i, s.session.Current())
		}
	}
	s.Equal(1, active)
}

func (s *SessionSuite) TestNewSessionRejectsEmptyPairs() {
	_, err := NewSession(nil, [2]string{"Ada", "Bob"}, nil)
	s.ErrorIs(err, ErrNoPairs)
}

func (s *SessionSuite) TestSelectSameCardTwiceIsNoOp() {
	s.Equal(OutcomeSelected, s.session.SelectCard(0))
	s.Equal(OutcomeIgnored, s.session.SelectCard(0))

	s.Equal(PhaseOneSelected, s.session.Phase())
	s.Equal([]int{0}, s.session.Selected())
}

func (s *SessionSuite) TestSelectOutOfRangeIsIgnored() {
	s.Equal(OutcomeIgnored, s.session.SelectCard(-1))
	s.Equal(OutcomeIgnored, s.session.SelectCard(4))
	s.Equal(PhaseIdle, s.session.Phase())
}

func (s *SessionSuite) TestMatchDisablesPairAndScoresCurrentPlayer() {
	starter := s.session.Current()
	card, _ := s.session.Card(0)

	s.Equal(OutcomeMatch, s.matchPairAt(s.session, 0))

	for _, i := range []int{0, card.Pair} {
		c, _ := s.session.Card(i)
		s.True(c.Matched)
		s.False(c.Selected)
		s.Equal(starter, c.Owner)
		s.Equal(MatchedByPlayer(starter), s.session.Visual(i, true))
	}

	players := s.session.Players()
	s.Equal(1, players[starter].Score)
	s.Equal(0, players[1-starter].Score)
	s.Equal(1, s.session.Remaining())
	s.Equal(starter, s.session.Current(), "a match keeps the turn")
	s.Empty(s.session.Selected())

	s.Equal(OutcomeIgnored, s.session.SelectCard(0))
	s.Equal(OutcomeIgnored, s.session.SelectCard(card.Pair))
}

func (s *SessionSuite) TestMismatchBlocksUntilHidden() {
	session := s.newSession(
		Pair{First: "a1", Second: "a2"},
		Pair{First: "b1", Second: "b2"},
		Pair{First: "c1", Second: "c2"},
	)
	starter := session.Current()
	first := s.indexOf(session, "a1")
	second := s.indexOf(session, "b1")

	s.Equal(OutcomeSelected, session.SelectCard(first))
	s.Equal(OutcomeMismatch, session.SelectCard(second))
	s.Equal(PhaseAwaitingHide, session.Phase())
	s.Equal(starter, session.Current(), "turn passes only when hidden")

	s.Equal(OutcomeIgnored, session.SelectCard(s.indexOf(session, "c1")))
	s.Equal(Visual{Kind: VisualSelected, Player: NoOwner}, session.Visual(first, false))
	s.Equal(Visual{Kind: VisualHidden, Player: NoOwner}, session.Visual(s.indexOf(session, "c1"), true),
		"no hover while selection is blocked")

	s.True(session.HideSelected())
	s.Equal(PhaseIdle, session.Phase())
	s.Equal(1-starter, session.Current())
	s.True(session.Players()[1-starter].Active)
	s.False(session.Players()[starter].Active)
	for _, i := range []int{first, second} {
		c, _ := session.Card(i)
		s.False(c.FaceUp())
	}

	s.False(session.HideSelected())
	s.Equal(OutcomeSelected, session.SelectCard(first), "hidden card is selectable again")
}

func (s *SessionSuite) TestSameFaceFromDifferentPairsDoesNotMatch() {
	session := s.newSession(
		Pair{First: "x", Second: "x"},
		Pair{First: "x", Second: "x"},
	)
	first := 0
	card, _ := session.Card(first)
	other := s.mismatchFor(session, first)

	s.Equal(OutcomeSelected, session.SelectCard(first))
	s.Equal(OutcomeMismatch, session.SelectCard(other))
	s.NotEqual(card.Pair, other)
}

func (s *SessionSuite) TestRoundEndsAfterAllPairsMatched() {
	starter := s.session.Current()

	s.Equal(OutcomeMatch, s.matchPairAt(s.session, 0))
	var next int
	for _, c := range s.session.Cards() {
		if !c.Matched {
			next = c.Index
			break
		}
	}
	s.Equal(OutcomeRoundOver, s.matchPairAt(s.session, next))

	s.Equal(PhaseRoundOver, s.session.Phase())
	s.Zero(s.session.Remaining())
	s.Equal(1, s.session.GamesPlayed())

	result, ok := s.session.LastResult()
	s.Require().True(ok)
	s.Equal(1, result.Round)
	s.Equal(2, result.Scores[starter])
	s.Equal([]int{starter}, result.Winners)
	s.False(result.Tie())
	s.Equal(2, result.Attempts)
	s.Equal(1-starter, result.NextStarter)

	players := s.session.Players()
	s.Equal(1, players[starter].GamesWon)
	s.Equal(0, players[1-starter].GamesWon)
	s.Zero(players[0].Score)
	s.Zero(players[1].Score)
	s.Equal(1-starter, s.session.Current(), "loser opens the next round")

	s.Equal(OutcomeIgnored, s.session.SelectCard(0))
	_, closed := s.session.EndRound()
	s.False(closed, "round cannot be closed twice")
}

func (s *SessionSuite) TestEndRoundWithPairsRemaining() {
	_, ok := s.session.EndRound()
	s.False(ok)
	s.Equal(PhaseIdle, s.session.Phase())
	s.Zero(s.session.GamesPlayed())
}

func (s *SessionSuite) TestTieAwardsBothAndSwitchesStarter() {
	session := s.newSession(
		Pair{First: "a1", Second: "a2"},
		Pair{First: "b1", Second: "b2"},
		Pair{First: "c1", Second: "c2"},
		Pair{First: "d1", Second: "d2"},
	)
	starter := session.Current()

	s.Equal(OutcomeMatch, s.matchPairAt(session, s.indexOf(session, "a1")))
	s.Equal(OutcomeMatch, s.matchPairAt(session, s.indexOf(session, "b1")))
	s.Equal(OutcomeSelected, session.SelectCard(s.indexOf(session, "c1")))
	s.Equal(OutcomeMismatch, session.SelectCard(s.indexOf(session, "d1")))
	s.True(session.HideSelected())

	s.Equal(OutcomeMatch, s.matchPairAt(session, s.indexOf(session, "c1")))
	s.Equal(OutcomeRoundOver, s.matchPairAt(session, s.indexOf(session, "d1")))

	result, ok := session.LastResult()
	s.Require().True(ok)
	s.True(result.Tie())
	s.Equal([2]int{2, 2}, result.Scores)
	s.Equal(starter, result.NextStarter, "tie switches away from the last player")

	for _, p := range session.Players() {
		s.Equal(1, p.GamesWon)
	}
}

func (s *SessionSuite) TestNextRound() {
	s.False(s.session.NextRound(), "round still in progress")

	s.playOut(s.session)
	s.Require().Equal(PhaseRoundOver, s.session.Phase())
	won := s.session.Players()

	s.True(s.session.NextRound())
	s.Equal(2, s.session.Round())
	s.Equal(PhaseIdle, s.session.Phase())
	s.Equal(2, s.session.Remaining())
	s.Zero(s.session.Attempts())
	s.Empty(s.session.Selected())
	for _, c := range s.session.Cards() {
		s.False(c.FaceUp())
		s.Equal(NoOwner, c.Owner)
	}
	for i, p := range s.session.Players() {
		s.Equal(won[i].GamesWon, p.GamesWon)
		s.Zero(p.Score)
	}
}

func (s *SessionSuite) TestContinue() {
	session := s.newSession(
		Pair{First: "a1", Second: "a2"},
		Pair{First: "b1", Second: "b2"},
		Pair{First: "c1", Second: "c2"},
	)
	s.False(session.Continue(), "nothing to do while idle")

	session.SelectCard(s.indexOf(session, "a1"))
	s.False(session.Continue(), "nothing to do with one card up")
	session.SelectCard(s.indexOf(session, "b1"))
	s.True(session.Continue())
	s.Equal(PhaseIdle, session.Phase())

	s.playOut(session)
	s.True(session.Continue())
	s.Equal(2, session.Round())
}

// playOut matches every remaining pair.
func (s *SessionSuite) playOut(session *Session) {
	for session.Phase() != PhaseRoundOver {
		for _, c := range session.Cards() {
			if !c.Matched {
				s.matchPairAt(session, c.Index)
				break
			}
		}
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	pairs := []Pair{
		{First: "a", Second: "a"},
		{First: "b", Second: "b"},
		{First: "c", Second: "c"},
		{First: "d", Second: "d"},
		{First: "e", Second: "e"},
	}

	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		session, err := NewSession(pairs, [2]string{"Ada", "Bob"}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		for round := 0; round < 3; round++ {
			before := totalGamesWon(session)
			for session.Phase() != PhaseRoundOver {
				if session.Phase() == PhaseAwaitingHide {
					session.HideSelected()
					continue
				}
				scores := totalScore(session)
				outcome := session.SelectCard(rng.Intn(len(session.Cards())))
				switch outcome {
				case OutcomeMatch:
					if got := totalScore(session); got != scores+1 {
						t.Fatalf("seed %d: score total = %d after match, want %d", seed, got, scores+1)
					}
				case OutcomeIgnored, OutcomeSelected, OutcomeMismatch:
					if got := totalScore(session); got != scores {
						t.Fatalf("seed %d: score total changed on %v", seed, outcome)
					}
				}
				if n := len(session.Selected()); n > 2 {
					t.Fatalf("seed %d: %d cards selected", seed, n)
				}
			}

			delta := totalGamesWon(session) - before
			if delta != 1 && delta != 2 {
				t.Errorf("seed %d round %d: games won grew by %d, want 1 or 2", seed, round, delta)
			}
			session.NextRound()
		}
	}
}

func totalScore(s *Session) int {
	p := s.Players()
	return p[0].Score + p[1].Score
}

func totalGamesWon(s *Session) int {
	p := s.Players()
	return p[0].GamesWon + p[1].GamesWon
}
