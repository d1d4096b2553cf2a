package match

import "fmt"

// Player is one of the two people at the table.
type Player struct {
	Name     string
	Score    int  // Pairs matched this round
	GamesWon int  // Rounds won this session, ties count for both
	Active   bool // True while it is this player's turn
}

// Label returns the player panel text, e.g. "Ada: 3".
func (p Player) Label() string {
	return fmt.Sprintf("%s: %d", p.Name, p.Score)
}

// RoundResult records how a finished round ended.
type RoundResult struct {
	Round       int
	Scores      [2]int
	Winners     []int // One index, or both on a tie
	Attempts    int   // Pairs evaluated during the round
	NextStarter int   // Player who opens the following round
}

// Tie reports whether both players shared the win.
func (r RoundResult) Tie() bool {
	return len(r.Winners) == 2
}
