package match

// VisualKind is the presentation state of a card, independent of any toolkit.
type VisualKind int

const (
	VisualHidden VisualKind = iota
	VisualHover
	VisualSelected
	VisualMatched
)

// String returns a human-readable visual kind.
func (k VisualKind) String() string {
	switch k {
	case VisualHidden:
		return "hidden"
	case VisualHover:
		return "hover"
	case VisualSelected:
		return "selected"
	case VisualMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Visual is what a renderer needs to draw one card. Player is only
// meaningful for VisualMatched.
type Visual struct {
	Kind   VisualKind
	Player int
}

// MatchedByPlayer returns the visual for a card matched by player n.
func MatchedByPlayer(n int) Visual {
	return Visual{Kind: VisualMatched, Player: n}
}

// Visual returns the presentation state of the card at index. hovered is
// whether a pointer or cursor is over it; hover only shows on cards that
// could be selected right now.
func (s *Session) Visual(index int, hovered bool) Visual {
	if index < 0 || index >= len(s.cards) {
		return Visual{Kind: VisualHidden, Player: NoOwner}
	}
	c := s.cards[index]
	switch {
	case c.Matched:
		return MatchedByPlayer(c.Owner)
	case c.Selected:
		return Visual{Kind: VisualSelected, Player: NoOwner}
	case hovered && s.phase.CanSelect():
		return Visual{Kind: VisualHover, Player: NoOwner}
	default:
		return Visual{Kind: VisualHidden, Player: NoOwner}
	}
}
