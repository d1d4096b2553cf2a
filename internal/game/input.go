package game

import "github.com/gdamore/tcell/v2"

// Action is a player command decoded from terminal input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionContinue
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSelect:
		return "select"
	case ActionContinue:
		return "continue"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// actionForKey maps a key press to an action.
func actionForKey(key tcell.Key, ch rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionSelect
	case tcell.KeyTab:
		return ActionContinue
	case tcell.KeyRune:
		switch ch {
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case ' ':
			return ActionSelect
		case 'f', 'F', 'n', 'N':
			return ActionContinue
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// delta returns the cursor step for a movement action.
func (a Action) delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
