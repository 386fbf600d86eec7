package core

// RuntimeConfig contains configuration passed to the game session at
// construction. Grid geometry is fixed for the lifetime of a session.
type RuntimeConfig struct {
	GridW    int   // Grid width in cells
	GridH    int   // Grid height in cells
	TickRate int   // Simulation ticks per second (default 5)
	Seed     int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    40,
		GridH:    30,
		TickRate: 5,
		Seed:     0, // 0 means use current time in platform layer
	}
}
