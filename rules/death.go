package rules

import "github.com/battlesnakeio/termsnake/model"

// checkForDeath looks at the snake after it moved and returns the death cause,
// or an empty string if the snake is still alive. Possible death options are
// wall collision and self collision.
func checkForDeath(width, height int, snake *model.Snake) string {
	switch snake.CollisionCause(width, height) {
	case model.CollisionWall:
		return DeathCauseWallCollision
	case model.CollisionSelf:
		return DeathCauseSnakeSelfCollision
	default:
		return ""
	}
}
