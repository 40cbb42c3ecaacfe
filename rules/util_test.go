package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// sequenceRand hands out the given values in order, wrapping around, each
// reduced into [0,n).
type sequenceRand struct {
	values []int
	calls  int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)] % n
	r.calls++
	return v
}

func newGame(t *testing.T, width, height int, rng Intner) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	g, err := CreateInitialGame(width, height, rng)
	require.NoError(t, err)
	return g
}
