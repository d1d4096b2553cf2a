package ui

// Board geometry in terminal cells.
const (
	Columns    = 4
	CardWidth  = 18
	CardHeight = 3
	Gap        = 1
	Margin     = 1
)

// Rect is an axis-aligned block of terminal cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the rect.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this rect overlaps with another rect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Layout positions every element of the table for a given card count.
type Layout struct {
	Cards   []Rect
	Rows    int
	Players [2]Rect
	Button  Rect
	StatusY int
	HelpY   int
}

// NewLayout lays cards out left to right in rows of Columns, followed by
// the player panel, the action button and the status lines.
func NewLayout(cardCount int) *Layout {
	rows := cardCount / Columns
	if cardCount%Columns != 0 {
		rows++
	}

	l := &Layout{
		Cards: make([]Rect, cardCount),
		Rows:  rows,
	}
	for i := range l.Cards {
		col, row := i%Columns, i/Columns
		l.Cards[i] = Rect{
			X:      Margin + col*(CardWidth+Gap),
			Y:      Margin + row*(CardHeight+Gap),
			Width:  CardWidth,
			Height: CardHeight,
		}
	}

	bottom := Margin + rows*(CardHeight+Gap)
	span := 2*CardWidth + Gap
	l.Players[0] = Rect{X: Margin, Y: bottom, Width: span, Height: 1}
	l.Players[1] = Rect{X: Margin + 2*(CardWidth+Gap), Y: bottom, Width: span, Height: 1}

	// The button sits under the two middle columns
	l.Button = Rect{X: Margin + CardWidth + Gap, Y: bottom + 2, Width: span, Height: 1}
	l.StatusY = l.Button.Y + 2
	l.HelpY = l.StatusY + 1
	return l
}

// Width returns the number of columns the layout occupies.
func (l *Layout) Width() int {
	return 2*Margin + Columns*CardWidth + (Columns-1)*Gap
}

// Height returns the number of rows the layout occupies.
func (l *Layout) Height() int {
	return l.HelpY + 1 + Margin
}

// CardAt returns the card under the given cell, or -1.
func (l *Layout) CardAt(x, y int) int {
	for i, r := range l.Cards {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// ButtonAt reports whether the given cell is on the action button.
func (l *Layout) ButtonAt(x, y int) bool {
	return l.Button.Contains(x, y)
}

// Move returns the card index reached by stepping dx columns and dy rows
// from index. Steps that would leave the board are ignored.
func (l *Layout) Move(index, dx, dy int) int {
	n := len(l.Cards)
	if n == 0 {
		return -1
	}
	if index < 0 || index >= n {
		return 0
	}

	col, row := index%Columns, index/Columns
	col += dx
	row += dy
	if col < 0 || col >= Columns || row < 0 || row >= l.Rows {
		return index
	}
	next := row*Columns + col
	if next >= n {
		return index
	}
	return next
}
