package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// EndCauseQuit is when the player asked to stop
	EndCauseQuit = "quit"
)
