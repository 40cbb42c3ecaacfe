package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirection_Opposite(t *testing.T) {
	tests := []struct {
		Dir      Direction
		Expected Direction
	}{
		{Dir: Up, Expected: Down},
		{Dir: Down, Expected: Up},
		{Dir: Left, Expected: Right},
		{Dir: Right, Expected: Left},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, test.Dir.Opposite(), "Direction: %s", test.Dir)
		require.Equal(t, test.Dir, test.Dir.Opposite().Opposite(), "Direction: %s", test.Dir)
	}
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		Dir      Direction
		Expected Point
	}{
		{Dir: Up, Expected: Point{X: 0, Y: -1}},
		{Dir: Down, Expected: Point{X: 0, Y: 1}},
		{Dir: Left, Expected: Point{X: -1, Y: 0}},
		{Dir: Right, Expected: Point{X: 1, Y: 0}},
	}

	for _, test := range tests {
		d := test.Dir.Delta()
		require.Equal(t, test.Expected, d, "Direction: %s", test.Dir)
		require.Equal(t, Point{}, d.Add(test.Dir.Opposite().Delta()))
	}
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "up", Up.String())
	require.Equal(t, "right", Right.String())
	require.Equal(t, "unknown", Direction(42).String())
}

func TestPoint_InBounds(t *testing.T) {
	require.True(t, Point{X: 0, Y: 0}.InBounds(10, 10))
	require.True(t, Point{X: 9, Y: 9}.InBounds(10, 10))
	require.False(t, Point{X: 10, Y: 0}.InBounds(10, 10))
	require.False(t, Point{X: 0, Y: 10}.InBounds(10, 10))
	require.False(t, Point{X: -1, Y: 0}.InBounds(10, 10))
	require.False(t, Point{X: 0, Y: -1}.InBounds(10, 10))
}
