package rules

import (
	log "github.com/sirupsen/logrus"
)

// TickResult tells the caller what happened during a tick.
type TickResult struct {
	// Ate is set when the head reached the target and the snake grew.
	Ate bool
	// Ended is set on the tick that terminated the game.
	Ended bool
	// Redraw is set when the board changed and should be drawn again.
	Redraw bool
}

// Tick runs the game one step with the action read since the last tick:
//  1. a move action turns the head
//  2. quit ends the game
//  3. the snake moves one cell
//  4. a collision ends the game
//  5. reaching the target moves the target and grows the snake
// Ticks on a terminated game do nothing.
func (g *Game) Tick(action Action) TickResult {
	if !g.Running() {
		return TickResult{}
	}

	if d, ok := action.Direction(); ok {
		g.Snake.SetHeadDirection(d)
	}
	if action == ActionQuit {
		g.end(EndCauseQuit)
		return TickResult{Ended: true}
	}

	g.Snake.Step()
	g.Turn++

	fields := log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Head":   g.Snake.Head().Position,
		"Dir":    g.Snake.Head().Dir,
		"Action": action,
	}
	log.WithFields(fields).Debug("snake moved")

	if cause := checkForDeath(g.Width, g.Height, g.Snake); cause != "" {
		g.end(cause)
		return TickResult{Ended: true}
	}

	res := TickResult{Redraw: true}
	if g.checkForSnakeEating() {
		res.Ate = true
		log.WithFields(fields).WithFields(log.Fields{
			"Length": g.Snake.Len(),
			"Target": g.Target,
		}).Info("snake ate")
	}
	return res
}

// checkForSnakeEating grows the snake and moves the target when the head is on
// the target.
func (g *Game) checkForSnakeEating() bool {
	if !g.Snake.Head().Position.Equals(g.Target) {
		return false
	}
	g.Target = relocateTarget(g.Width, g.Height, g.rng)
	g.Snake.Grow()
	return true
}
