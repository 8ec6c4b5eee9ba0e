package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Winner identifies who ended a finished game.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerAgent
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerAgent:
		return "agent"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Player score
	AgentScore int    // Competing agent's score
	Level      int    // Current level (1-indexed)
	GameOver   bool   // Whether the game has ended
	Winner     Winner // Who won, when GameOver
	Paused     bool   // Whether the game is paused
}

// EventKind classifies a simulation event emitted during a tick.
type EventKind int

const (
	EventShapeHit       EventKind = iota // Player hit a normal shape
	EventTrapHit                         // Player hit a trap
	EventAgentAteShape                   // Agent consumed a shape
	EventAgentAtePower                   // Agent consumed a power-up
	EventLevelUp                         // Level transition started
	EventGameStarted                     // First successful player hit
	EventGameOver                        // Win condition reached
)

// Event is an output record appended during a tick and drained by the
// platform after each Step. Events replace in-simulation callbacks: the
// core never touches audio or persistence directly.
type Event struct {
	Kind   EventKind
	At     Vec2   // Where it happened, when positional
	Points int    // Signed point delta, when scoring
	Level  int    // New level for EventLevelUp
	Winner Winner // Set for EventGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
