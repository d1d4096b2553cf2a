package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/memorymatch/internal/match"
)

// Colors are the configurable hex colours of the table.
type Colors struct {
	Card     string
	Hover    string
	Selected string
	Players  [2]string
}

// DefaultColors returns the standard table colours.
func DefaultColors() Colors {
	return Colors{
		Card:     "#00B299",
		Hover:    "#009279",
		Selected: "#00D2B9",
		Players:  [2]string{"#3A7BD5", "#E94E77"},
	}
}

// Palette holds the tcell styles for each visual state.
type Palette struct {
	Background     tcell.Style
	Hidden         tcell.Style
	Hover          tcell.Style
	Selected       tcell.Style
	Players        [2]tcell.Style
	Text           tcell.Style
	Dim            tcell.Style
	Button         tcell.Style
	ButtonDisabled tcell.Style
}

// NewPalette builds styles from hex colours.
func NewPalette(c Colors) (*Palette, error) {
	card, err := ParseHexColor(c.Card)
	if err != nil {
		return nil, fmt.Errorf("card colour: %w", err)
	}
	hover, err := ParseHexColor(c.Hover)
	if err != nil {
		return nil, fmt.Errorf("hover colour: %w", err)
	}
	selected, err := ParseHexColor(c.Selected)
	if err != nil {
		return nil, fmt.Errorf("selected colour: %w", err)
	}

	p := &Palette{
		Background:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		Hidden:         tcell.StyleDefault.Background(card).Foreground(tcell.ColorBlack),
		Hover:          tcell.StyleDefault.Background(hover).Foreground(tcell.ColorBlack),
		Selected:       tcell.StyleDefault.Background(selected).Foreground(tcell.ColorBlack).Bold(true),
		Text:           tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Dim:            tcell.StyleDefault.Foreground(tcell.ColorGray),
		Button:         tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true),
		ButtonDisabled: tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGray),
	}
	for i, hex := range c.Players {
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("player %d colour: %w", i+1, err)
		}
		p.Players[i] = tcell.StyleDefault.Background(color).Foreground(tcell.ColorWhite)
	}
	return p, nil
}

// MustNewPalette builds a palette, panicking on error.
func MustNewPalette(c Colors) *Palette {
	p, err := NewPalette(c)
	if err != nil {
		panic(err)
	}
	return p
}

// CardStyle returns the style for a card visual.
func (p *Palette) CardStyle(v match.Visual) tcell.Style {
	switch v.Kind {
	case match.VisualHover:
		return p.Hover
	case match.VisualSelected:
		return p.Selected
	case match.VisualMatched:
		if v.Player >= 0 && v.Player < len(p.Players) {
			return p.Players[v.Player]
		}
		return p.Selected
	default:
		return p.Hidden
	}
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
