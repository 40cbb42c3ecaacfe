package rules

import "github.com/battlesnakeio/termsnake/model"

// Action is one logical key press read from the terminal.
type Action int

// Actions understood by the game. ActionNone is what polling returns when no
// key, or an unmapped key, arrived in time.
const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the heading a move action asks for. ok is false for
// anything that is not a move.
func (a Action) Direction() (d model.Direction, ok bool) {
	switch a {
	case ActionMoveUp:
		return model.Up, true
	case ActionMoveDown:
		return model.Down, true
	case ActionMoveLeft:
		return model.Left, true
	case ActionMoveRight:
		return model.Right, true
	default:
		return 0, false
	}
}

// Merge combines an action already collected during a tick with a newer one.
// Quit sticks, a newer move replaces an older one and ActionNone changes
// nothing.
func (a Action) Merge(next Action) Action {
	if a == ActionQuit || next == ActionNone {
		return a
	}
	if _, ok := next.Direction(); ok || next == ActionQuit {
		return next
	}
	return a
}
