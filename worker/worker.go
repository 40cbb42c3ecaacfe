// Package worker provides the actual running of a game. It owns the game state
// for the lifetime of the game, paces the ticks and hands every frame to the
// terminal surface.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Surface is what the worker needs from the terminal.
type Surface interface {
	// PollInput waits at most timeout for a key and returns rules.ActionNone
	// when nothing usable arrived.
	PollInput(timeout time.Duration) rules.Action
	// Render draws the frame.
	Render(frame *rules.Frame) error
}

// Worker runs a single game against a Surface. The Clock decides when the next
// tick is due; input is collected for as long as the clock makes the worker
// wait.
type Worker struct {
	Surface Surface
	Clock   *rate.Limiter
}

// New returns a worker ticking at tickRate.
func New(surface Surface, tickRate rate.Limit) *Worker {
	return &Worker{
		Surface: surface,
		Clock:   rate.NewLimiter(tickRate, 1),
	}
}

// Run plays the game until it terminates or the context is done. Quitting and
// crashing both end the game normally and return nil.
func (w *Worker) Run(ctx context.Context, game *rules.Game) error {
	logger := log.WithField("GameID", game.ID)
	logger.Info("game started")

	if err := w.Surface.Render(game.Frame()); err != nil {
		return errors.Wrap(err, "worker: render initial frame")
	}

	for game.Running() {
		action, err := w.awaitTick(ctx)
		if err != nil {
			logger.WithError(err).Warn("game interrupted")
			return err
		}

		res := game.Tick(action)

		// a crash gets one last frame so the player can see where it happened
		if res.Redraw || (res.Ended && game.Cause != rules.EndCauseQuit) {
			if err := w.Surface.Render(game.Frame()); err != nil {
				return errors.Wrapf(err, "worker: render turn %d", game.Turn)
			}
		}
	}

	logger.WithFields(log.Fields{
		"Turn":   game.Turn,
		"Cause":  game.Cause,
		"Length": game.Snake.Len(),
	}).Info("game finished")
	return nil
}

// awaitTick blocks until the next tick is due and returns the input gathered
// in the meantime. The surface is always polled at least once so a key that
// is already waiting is never lost. Quit returns straight away.
func (w *Worker) awaitTick(ctx context.Context) (rules.Action, error) {
	r := w.Clock.Reserve()
	if !r.OK() {
		return rules.ActionNone, errors.New("worker: tick clock refused a reservation")
	}
	deadline := time.Now().Add(r.Delay())

	action := rules.ActionNone
	for {
		select {
		case <-ctx.Done():
			r.Cancel()
			return rules.ActionNone, ctx.Err()
		default:
		}

		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		action = action.Merge(w.Surface.PollInput(remaining))

		if action == rules.ActionQuit || !time.Now().Before(deadline) {
			return action, nil
		}
	}
}
