package rules

// GameStatus is the state of a game. A game starts running and, once
// terminated, stays terminated.
type GameStatus string

const (
	// GameStatusRunning represents a game that still accepts ticks
	GameStatusRunning GameStatus = "running"
	// GameStatusTerminated represents a game that ended by quitting or collision
	GameStatusTerminated GameStatus = "terminated"
)
