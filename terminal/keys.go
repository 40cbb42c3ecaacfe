package terminal

import (
	"github.com/battlesnakeio/termsnake/rules"
	termbox "github.com/nsf/termbox-go"
)

// ActionForEvent maps a termbox event to a game action. Arrow keys, wasd and
// hjkl steer; q, Esc and Ctrl-C quit. Everything else is ActionNone.
func ActionForEvent(ev termbox.Event) rules.Action {
	if ev.Type != termbox.EventKey {
		return rules.ActionNone
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return rules.ActionQuit
	case termbox.KeyArrowUp:
		return rules.ActionMoveUp
	case termbox.KeyArrowDown:
		return rules.ActionMoveDown
	case termbox.KeyArrowLeft:
		return rules.ActionMoveLeft
	case termbox.KeyArrowRight:
		return rules.ActionMoveRight
	}

	switch ev.Ch {
	case 'q', 'Q':
		return rules.ActionQuit
	case 'w', 'k':
		return rules.ActionMoveUp
	case 's', 'j':
		return rules.ActionMoveDown
	case 'a', 'h':
		return rules.ActionMoveLeft
	case 'd', 'l':
		return rules.ActionMoveRight
	}
	return rules.ActionNone
}
