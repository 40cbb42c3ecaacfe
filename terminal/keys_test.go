package terminal

import (
	"testing"

	"github.com/battlesnakeio/termsnake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestActionForEvent(t *testing.T) {
	tests := []struct {
		Event    termbox.Event
		Expected rules.Action
	}{
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, Expected: rules.ActionMoveUp},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, Expected: rules.ActionMoveDown},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, Expected: rules.ActionMoveLeft},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, Expected: rules.ActionMoveRight},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, Expected: rules.ActionQuit},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, Expected: rules.ActionQuit},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'q'}, Expected: rules.ActionQuit},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'Q'}, Expected: rules.ActionQuit},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'w'}, Expected: rules.ActionMoveUp},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'j'}, Expected: rules.ActionMoveDown},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'a'}, Expected: rules.ActionMoveLeft},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'l'}, Expected: rules.ActionMoveRight},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'x'}, Expected: rules.ActionNone},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, Expected: rules.ActionNone},
		{Event: termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}, Expected: rules.ActionNone},
		{Event: termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft}, Expected: rules.ActionNone},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, ActionForEvent(test.Event), "event: %+v", test.Event)
	}
}
