// Package model holds the snake itself: its segments, their headings and the
// movement, growth and collision rules that only depend on the snake.
package model

// Segment is one cell of the snake body.
type Segment struct {
	Position Point
	Dir      Direction
	// PrevDir is the heading the segment had on the previous tick. The segment
	// behind it picks this up on the next step.
	PrevDir Direction
}

// Snake is the ordered body, head first.
type Snake struct {
	body []Segment
}

// NewSnake creates a snake with a single segment at origin heading dir.
func NewSnake(origin Point, dir Direction) *Snake {
	return &Snake{
		body: []Segment{
			{Position: origin, Dir: dir, PrevDir: dir},
		},
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the first segment.
func (s *Snake) Head() Segment {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() Segment {
	return s.body[len(s.body)-1]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Positions returns the coordinates of every segment, head first.
func (s *Snake) Positions() []Point {
	out := make([]Point, len(s.body))
	for i, seg := range s.body {
		out[i] = seg.Position
	}
	return out
}

// SetHeadDirection sets the heading the head will use on the next step. Calls
// between steps overwrite each other.
func (s *Snake) SetHeadDirection(d Direction) {
	s.body[0].Dir = d
}

// Step moves every segment one cell. Each body segment first takes the
// previous-tick heading of the segment ahead of it, so a turn at the head
// reaches segment i after i ticks.
func (s *Snake) Step() {
	prev := make([]Direction, len(s.body))
	for i, seg := range s.body {
		prev[i] = seg.PrevDir
	}

	for i := range s.body {
		seg := &s.body[i]
		if i > 0 {
			seg.Dir = prev[i-1]
		}
		seg.PrevDir = seg.Dir
		seg.Position = seg.Position.Add(seg.Dir.Delta())
	}
}

// Grow appends a segment one cell behind the tail, travelling the same way as
// the tail.
func (s *Snake) Grow() {
	tail := s.Tail()
	s.body = append(s.body, Segment{
		Position: tail.Position.Add(tail.Dir.Opposite().Delta()),
		Dir:      tail.Dir,
		PrevDir:  tail.Dir,
	})
}

// HasCollided checks the head against the board edges and the rest of the
// body.
func (s *Snake) HasCollided(width, height int) bool {
	return s.CollisionCause(width, height) != CollisionNone
}

// Collision describes what the head ran into.
type Collision int

const (
	// CollisionNone means the head is on a free, in-bounds cell.
	CollisionNone Collision = iota
	// CollisionWall means the head left the board.
	CollisionWall
	// CollisionSelf means the head is on one of the body segments.
	CollisionSelf
)

// CollisionCause is HasCollided with the reason attached. Walls are checked
// first.
func (s *Snake) CollisionCause(width, height int) Collision {
	head := s.Head().Position
	if !head.InBounds(width, height) {
		return CollisionWall
	}
	for _, seg := range s.body[1:] {
		if seg.Position.Equals(head) {
			return CollisionSelf
		}
	}
	return CollisionNone
}
