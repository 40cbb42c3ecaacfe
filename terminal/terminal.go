// Package terminal is the termbox backed surface the game is played on. It
// owns raw mode for as long as it is open, turns key presses into game
// actions and draws frames.
package terminal

import (
	"time"

	"github.com/battlesnakeio/termsnake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Terminal is an open termbox screen. Close must be called to give the
// terminal back, on every exit path.
type Terminal struct {
	events <-chan termbox.Event
	done   chan struct{}
	last   *rules.Frame
}

// Open puts the terminal in raw mode and starts reading key presses.
func Open() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "terminal: unable to initialise termbox")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	done := make(chan struct{})
	return &Terminal{
		events: setupEventQueue(done),
		done:   done,
	}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	termbox.Close()
}

// setupEventQueue reads termbox events on their own goroutine since
// termbox.PollEvent cannot time out.
func setupEventQueue(done <-chan struct{}) <-chan termbox.Event {
	eventQueue := make(chan termbox.Event, 16)
	go func(ev chan<- termbox.Event) {
		for {
			e := termbox.PollEvent()
			select {
			case ev <- e:
			case <-done:
				return
			}
		}
	}(eventQueue)
	return eventQueue
}

// PollInput waits up to timeout for one event and maps it to an action. A
// zero timeout only looks at events that already arrived.
func (t *Terminal) PollInput(timeout time.Duration) rules.Action {
	if timeout <= 0 {
		select {
		case ev := <-t.events:
			return t.handle(ev)
		default:
			return rules.ActionNone
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return t.handle(ev)
	case <-timer.C:
		return rules.ActionNone
	}
}

// WaitForKey blocks until any key is pressed or the timeout passes.
func (t *Terminal) WaitForKey(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev := <-t.events:
			if ev.Type == termbox.EventKey {
				return true
			}
			t.handle(ev)
		case <-timer.C:
			return false
		}
	}
}

func (t *Terminal) handle(ev termbox.Event) rules.Action {
	switch ev.Type {
	case termbox.EventResize:
		if t.last != nil {
			if err := render(t.last); err != nil {
				log.WithError(err).Warn("unable to redraw after resize")
			}
		}
	case termbox.EventError:
		log.WithError(ev.Err).Error("error while reading terminal input")
	}
	return ActionForEvent(ev)
}

// Render draws the frame and remembers it for redraws on resize.
func (t *Terminal) Render(frame *rules.Frame) error {
	if frame == nil {
		return errors.New("terminal: received nil frame")
	}
	t.last = frame
	return render(frame)
}
