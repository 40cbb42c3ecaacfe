package rules

import "github.com/battlesnakeio/termsnake/model"

// Intner is the random source used to place the target. *rand.Rand satisfies
// it.
type Intner interface {
	Intn(n int) int
}

// initialTarget is the bottom-right cell of the board.
func initialTarget(width, height int) model.Point {
	return model.Point{X: width - 1, Y: height - 1}
}

// relocateTarget picks x and y independently and uniformly. The snake is not
// taken into account, so the target can land on the body.
func relocateTarget(width, height int, rng Intner) model.Point {
	return model.Point{
		X: rng.Intn(width),
		Y: rng.Intn(height),
	}
}
