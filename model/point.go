package model

import "fmt"

// Point is a cell on the board. X grows to the right and Y grows downwards.
type Point struct {
	X int
	Y int
}

// Equals checks if 2 points are the same x,y coordinate
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// InBounds reports whether the point lies inside [0,width)x[0,height).
func (p Point) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
