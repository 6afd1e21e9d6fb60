package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen extents are in pixels and stay fixed for the whole session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in pixels
	ScreenH  int   // Screen height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1280,
		ScreenH:  720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the controller state of a session.
type Phase int

const (
	PhaseRunning  Phase = iota // Gameplay frames are being simulated
	PhaseTerminal              // Final score is shown for a fixed dwell
	PhaseStopped               // Session is over, the front end should exit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseTerminal:
		return "terminal"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int
	Level int
	Phase Phase
}

// GameOver reports whether gameplay has ended, by death or by quitting.
func (s GameState) GameOver() bool {
	return s.Phase != PhaseRunning
}

// Stopped reports whether the front end should shut the session down.
func (s GameState) Stopped() bool {
	return s.Phase == PhaseStopped
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events raised during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
