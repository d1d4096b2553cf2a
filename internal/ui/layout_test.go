package ui

import "testing"

func TestNewLayoutRows(t *testing.T) {
	tests := []struct {
		cards int
		rows  int
	}{
		{4, 1},
		{5, 2},
		{8, 2},
		{16, 4},
		{18, 5},
	}

	for _, tt := range tests {
		l := NewLayout(tt.cards)
		if l.Rows != tt.rows {
			t.Errorf("NewLayout(%d).Rows = %d, want %d", tt.cards, l.Rows, tt.rows)
		}
		if len(l.Cards) != tt.cards {
			t.Errorf("NewLayout(%d) has %d card rects", tt.cards, len(l.Cards))
		}
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := NewLayout(10)
	rects := append([]Rect{}, l.Cards...)
	rects = append(rects, l.Players[0], l.Players[1], l.Button)

	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Errorf("rect %d %+v overlaps rect %d %+v", i, rects[i], j, rects[j])
			}
		}
	}
}

func TestLayoutHitTesting(t *testing.T) {
	l := NewLayout(8)

	for i, r := range l.Cards {
		x, y := r.Center()
		if got := l.CardAt(x, y); got != i {
			t.Errorf("CardAt(center of %d) = %d", i, got)
		}
	}

	// Gap between the first two cards
	if got := l.CardAt(Margin+CardWidth, Margin); got != -1 {
		t.Errorf("CardAt(gap) = %d, want -1", got)
	}

	bx, by := l.Button.Center()
	if !l.ButtonAt(bx, by) {
		t.Error("ButtonAt(center of button) = false")
	}
	if l.ButtonAt(0, 0) {
		t.Error("ButtonAt(0, 0) = true")
	}
}

func TestLayoutMove(t *testing.T) {
	l := NewLayout(6) // Two rows, the second has two cards

	tests := []struct {
		name     string
		index    int
		dx, dy   int
		expected int
	}{
		{"right", 0, 1, 0, 1},
		{"left edge", 0, -1, 0, 0},
		{"right edge", 3, 1, 0, 3},
		{"down", 1, 0, 1, 5},
		{"down into empty slot", 2, 0, 1, 2},
		{"up edge", 1, 0, -1, 1},
		{"up", 4, 0, -1, 0},
		{"no cursor yet", -1, 1, 0, 0},
	}

	for _, tt := range tests {
		if got := l.Move(tt.index, tt.dx, tt.dy); got != tt.expected {
			t.Errorf("%s: Move(%d, %d, %d) = %d, want %d", tt.name, tt.index, tt.dx, tt.dy, got, tt.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Contains() should include both corners")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("Contains() should exclude the far edges")
	}
}
