package rules

import (
	"github.com/battlesnakeio/termsnake/model"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidBounds is returned when the board has no cells to play on.
var ErrInvalidBounds = errors.New("rules: board width and height must be positive")

var (
	startPoint     = model.Point{X: 0, Y: 0}
	startDirection = model.Right
)

// Game is the whole state of a single game: the board bounds, the snake and
// the target it is chasing.
type Game struct {
	ID     string
	Width  int
	Height int
	Turn   int
	Status GameStatus
	// Cause is set once the game is terminated.
	Cause  string
	Snake  *model.Snake
	Target model.Point

	rng Intner
}

// CreateInitialGame creates a running game with a one segment snake in the top
// left corner heading right and the target in the bottom right corner.
func CreateInitialGame(width, height int, rng Intner) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidBounds, "got %dx%d", width, height)
	}
	if rng == nil {
		return nil, errors.New("rules: random source is required")
	}

	game := &Game{
		ID:     uuid.NewV4().String(),
		Width:  width,
		Height: height,
		Status: GameStatusRunning,
		Snake:  model.NewSnake(startPoint, startDirection),
		Target: initialTarget(width, height),
		rng:    rng,
	}

	log.WithFields(log.Fields{
		"GameID": game.ID,
		"Width":  width,
		"Height": height,
		"Target": game.Target,
	}).Info("game created")

	return game, nil
}

// Running reports whether the game still accepts ticks.
func (g *Game) Running() bool {
	return g.Status == GameStatusRunning
}

func (g *Game) end(cause string) {
	g.Status = GameStatusTerminated
	g.Cause = cause
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Cause":  cause,
		"Length": g.Snake.Len(),
	}).Info("game over")
}
