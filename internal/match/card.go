package match

import (
	"fmt"
	"math/rand"
	"strings"
)

// NoOwner marks a card that no player has matched yet.
const NoOwner = -1

// Pair is two card faces sharing a match identity. Two pairs with the same
// text are still distinct pairs.
type Pair struct {
	First  string
	Second string
}

// Card is a single card in the round layout.
type Card struct {
	Index    int    // Position in the layout
	Face     string // Text shown when face up
	Pair     int    // Layout index of the matching card
	Selected bool   // Face up as part of the current selection
	Matched  bool   // Permanently face up and out of play
	Owner    int    // Player index that matched it, NoOwner otherwise
}

// Selectable reports whether the card can join a selection.
func (c Card) Selectable() bool {
	return !c.Selected && !c.Matched
}

// FaceUp reports whether the card's face is visible.
func (c Card) FaceUp() bool {
	return c.Selected || c.Matched
}

// ValidatePairs checks that a pair list can be dealt.
func ValidatePairs(pairs []Pair) error {
	if len(pairs) == 0 {
		return ErrNoPairs
	}
	for i, p := range pairs {
		if strings.TrimSpace(p.First) == "" || strings.TrimSpace(p.Second) == "" {
			return fmt.Errorf("pair %d: %w", i+1, ErrEmptyFace)
		}
	}
	return nil
}

// Deal builds two cards per pair, links them to each other and shuffles
// them into a layout. The returned slice always has 2 × len(pairs) cards.
func Deal(pairs []Pair, rng *rand.Rand) []Card {
	cards := make([]Card, 0, len(pairs)*2)
	for _, p := range pairs {
		cards = append(cards,
			Card{Face: p.First, Owner: NoOwner},
			Card{Face: p.Second, Owner: NoOwner},
		)
	}

	// Cards 2i and 2i+1 are partners before the shuffle
	partner := make([]int, len(cards))
	for i := range partner {
		partner[i] = i ^ 1
	}

	perm := rng.Perm(len(cards))
	position := make([]int, len(cards))
	for pos, orig := range perm {
		position[orig] = pos
	}

	dealt := make([]Card, len(cards))
	for orig, c := range cards {
		pos := position[orig]
		c.Index = pos
		c.Pair = position[partner[orig]]
		dealt[pos] = c
	}
	return dealt
}
