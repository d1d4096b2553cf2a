package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/memorymatch/internal/match"
)

// Button labels.
const (
	LabelFlip      = "Flip selected cards"
	LabelPlayAgain = "Play again"
	HelpText       = "arrows/hjkl move  enter select  f flip  q quit"
)

// Pointer is what the cursor or mouse is currently over.
type Pointer struct {
	Card   int // Card index, -1 for none
	Button bool
}

// ButtonState returns the action button label and whether it can be pressed.
func ButtonState(phase match.Phase) (string, bool) {
	switch phase {
	case match.PhaseAwaitingHide:
		return LabelFlip, true
	case match.PhaseRoundOver:
		return LabelPlayAgain, true
	default:
		return LabelFlip, false
	}
}

// Renderer handles drawing the game to a canvas.
type Renderer struct {
	canvas  Canvas
	palette *Palette
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, palette *Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the session as seen with the given pointer position.
func (r *Renderer) Render(session *match.Session, layout *Layout, pointer Pointer, status string) {
	r.canvas.Clear()

	for i, card := range session.Cards() {
		visual := session.Visual(i, pointer.Card == i)
		r.drawCard(layout.Cards[i], card, visual)
	}

	r.drawPlayers(session, layout)
	r.drawButton(session.Phase(), layout.Button, pointer.Button)

	r.drawText(Margin, layout.StatusY, layout.Width(), status, r.palette.Text)
	r.drawText(Margin, layout.HelpY, layout.Width(), HelpText, r.palette.Dim)

	r.canvas.Show()
}

// drawCard fills the card rect and centers its label.
func (r *Renderer) drawCard(rect Rect, card match.Card, visual match.Visual) {
	style := r.palette.CardStyle(visual)
	r.fill(rect, style)

	label := "?"
	if visual.Kind == match.VisualSelected || visual.Kind == match.VisualMatched {
		label = card.Face
	}
	r.drawCentered(rect, label, style)
}

func (r *Renderer) drawPlayers(session *match.Session, layout *Layout) {
	for i, p := range session.Players() {
		style := r.palette.Dim
		marker := "  "
		if p.Active {
			style = r.palette.Players[i]
			marker = "> "
		}
		text := fmt.Sprintf("%s%s  won %d", marker, p.Label(), p.GamesWon)
		rect := layout.Players[i]
		r.fill(rect, style)
		r.drawText(rect.X, rect.Y, rect.Width, text, style)
	}
}

func (r *Renderer) drawButton(phase match.Phase, rect Rect, hovered bool) {
	label, enabled := ButtonState(phase)
	style := r.palette.ButtonDisabled
	if enabled {
		style = r.palette.Button
		if hovered {
			style = style.Reverse(true)
		}
	}
	r.fill(rect, style)
	r.drawCentered(rect, label, style)
}

func (r *Renderer) fill(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			r.canvas.SetContent(x, y, ' ', style)
		}
	}
}

// drawCentered writes text on the middle row of rect, truncated to fit.
func (r *Renderer) drawCentered(rect Rect, text string, style tcell.Style) {
	runes := []rune(text)
	if len(runes) > rect.Width {
		runes = runes[:rect.Width]
	}
	cx, cy := rect.Center()
	r.drawText(cx-len(runes)/2, cy, len(runes), string(runes), style)
}

// drawText writes text from (x, y), stopping after maxWidth cells.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= maxWidth {
			return
		}
		r.canvas.SetContent(x+i, y, ch, style)
		i++
	}
}

// StatusLine describes the state of play for the line under the board.
func StatusLine(session *match.Session) string {
	players := session.Players()
	current := session.CurrentPlayer()

	switch session.Phase() {
	case match.PhaseRoundOver:
		result, ok := session.LastResult()
		if !ok {
			return ""
		}
		if result.Tie() {
			return fmt.Sprintf("Round %d is a tie, %d-%d. %s starts next.",
				result.Round, result.Scores[0], result.Scores[1], players[result.NextStarter].Name)
		}
		winner := result.Winners[0]
		return fmt.Sprintf("%s wins round %d, %d-%d. %s starts next.",
			players[winner].Name, result.Round, result.Scores[winner], result.Scores[1-winner],
			players[result.NextStarter].Name)
	case match.PhaseAwaitingHide:
		return fmt.Sprintf("No match. %s, flip the cards back.", current.Name)
	default:
		return fmt.Sprintf("Round %d, %s to play. %d pairs left.",
			session.Round(), current.Name, session.Remaining())
	}
}
