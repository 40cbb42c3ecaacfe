package rules

import "github.com/battlesnakeio/termsnake/model"

// Frame is a copy of everything needed to draw the game at one point in time.
type Frame struct {
	GameID  string
	Turn    int
	Width   int
	Height  int
	Status  GameStatus
	Cause   string
	HeadDir model.Direction
	// Snake is ordered head first.
	Snake  []model.Point
	Target model.Point
}

// Frame snapshots the game for rendering.
func (g *Game) Frame() *Frame {
	return &Frame{
		GameID:  g.ID,
		Turn:    g.Turn,
		Width:   g.Width,
		Height:  g.Height,
		Status:  g.Status,
		Cause:   g.Cause,
		HeadDir: g.Snake.Head().Dir,
		Snake:   g.Snake.Positions(),
		Target:  g.Target,
	}
}

// Head returns the head position, or false for a frame without a snake.
func (f *Frame) Head() (model.Point, bool) {
	if len(f.Snake) == 0 {
		return model.Point{}, false
	}
	return f.Snake[0], true
}

// Crashed reports whether the game ended by a collision rather than a quit.
func (f *Frame) Crashed() bool {
	return f.Status == GameStatusTerminated && f.Cause != EndCauseQuit
}
