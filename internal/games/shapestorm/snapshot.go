package shapestorm

import "shapestorm/internal/core"

// Snapshot is a comparable summary of the simulation, used to assert
// determinism and end-to-end behavior in tests.
type Snapshot struct {
	Tick          int
	Score         int
	AgentScore    int
	Level         int
	GameOver      bool
	Winner        core.Winner
	AgentLen      int
	AgentTarget   int
	AgentHead     core.Vec2
	PowerUpActive bool
	TrapCount     int
	ParticleCount int
	FireballCount int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Score:         g.state.Score,
		AgentScore:    g.state.AgentScore,
		Level:         g.state.Level,
		GameOver:      g.state.GameOver,
		Winner:        g.state.Winner,
		PowerUpActive: g.powerUp.Active,
		ParticleCount: len(g.particles),
		FireballCount: len(g.fireballs),
	}
	if g.agent != nil {
		snap.AgentLen = len(g.agent.Segments)
		snap.AgentTarget = g.agent.TargetLen
		if len(g.agent.Segments) > 0 {
			snap.AgentHead = g.agent.Segments[0]
		}
	}
	for i := range g.shapes {
		if g.shapes[i].Trap {
			snap.TrapCount++
		}
	}
	return snap
}
