package shapestorm

import (
	"testing"

	"shapestorm/internal/core"
)

// startDuel gets the session going without relying on tap geometry.
func startDuel(g *Game) {
	g.started = true
	g.agentAwake = true
}

func TestAgentLengthConvergesToTarget(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	g.agent.TargetLen = len(g.agent.Segments) + 20

	// Park every shape far from the head so nothing is eaten mid-test.
	for i := range g.shapes {
		g.shapes[i].Pos = core.Vec2{X: g.bounds.MaxX - 1, Y: g.bounds.MaxY - 1}
	}
	g.agent.Segments[0] = core.Vec2{X: g.bounds.MinX + 2, Y: g.bounds.MinY + 2}

	prev := len(g.agent.Segments)
	for i := 0; i < 25 && len(g.agent.Segments) < g.agent.TargetLen; i++ {
		g.updateAgent()
		if len(g.agent.Segments) != prev+1 {
			t.Fatalf("tick %d: length jumped from %d to %d", i, prev, len(g.agent.Segments))
		}
		prev = len(g.agent.Segments)
	}

	// Shrinking: a shorter target truncates over following ticks.
	g.agent.TargetLen = 5
	for i := 0; i < 40 && len(g.agent.Segments) > 5; i++ {
		g.updateAgent()
	}
	if len(g.agent.Segments) != 5 {
		t.Errorf("length = %d, want 5", len(g.agent.Segments))
	}
}

func TestAgentMovesTowardNearestShape(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.powerUp.Active = false

	head := core.Vec2{X: g.bounds.Center().X, Y: g.bounds.Center().Y}
	g.agent.Segments[0] = head

	near := core.Vec2{X: head.X + 5, Y: head.Y}
	for i := range g.shapes {
		g.shapes[i].Pos = core.Vec2{X: head.X - 15, Y: head.Y + 5}
	}
	g.shapes[4].Pos = near

	g.updateAgent()

	moved := g.agent.Segments[0]
	if moved.X <= head.X {
		t.Errorf("head moved away from nearest shape: %+v", moved)
	}
	if d := moved.Dist(head) - g.agent.Speed; d > 1e-9 || d < -1e-9 {
		t.Errorf("head advanced %v, want speed %v", moved.Dist(head), g.agent.Speed)
	}
}

func TestAgentPrefersPowerUpWithinBias(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	head := g.bounds.Center()
	g.agent.Segments[0] = head
	for i := range g.shapes {
		g.shapes[i].Pos = core.Vec2{X: head.X + 4, Y: head.Y}
	}
	// Power-up farther than the nearest shape, but inside the bias window.
	g.powerUp = PowerUp{Active: true, Pos: core.Vec2{X: head.X - (4 + g.opts.Agent.PowerUpBias - 1), Y: head.Y}}

	g.updateAgent()
	if g.agent.Segments[0].X >= head.X {
		t.Error("agent ignored a power-up within the bias window")
	}

	// Beyond the bias window the shape wins.
	g.agent.Segments[0] = head
	g.powerUp.Pos = core.Vec2{X: head.X - (4 + g.opts.Agent.PowerUpBias + 2), Y: head.Y}
	g.updateAgent()
	if g.agent.Segments[0].X <= head.X {
		t.Error("agent chased a power-up beyond the bias window")
	}
}

func TestAgentEatGrowsAndScoresFlat(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	target := g.agent.TargetLen
	s := &g.shapes[2]
	pos := s.Pos

	g.agentEatShape(s)

	if g.state.AgentScore != g.opts.Gameplay.HitValue {
		t.Errorf("agent score = %d, want %d", g.state.AgentScore, g.opts.Gameplay.HitValue)
	}
	if g.agent.TargetLen != target+g.opts.Agent.Growth {
		t.Errorf("target length = %d, want %d", g.agent.TargetLen, target+g.opts.Agent.Growth)
	}
	if s.Pos == pos {
		t.Error("eaten shape not re-randomized")
	}
	if len(g.particles) == 0 {
		t.Error("no burst for the eaten shape")
	}
}

func TestPowerUpBonusIsFlat(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	// Cluster every shape inside the blast radius: the award must still
	// be the flat bonus, independent of how many shapes reset.
	at := g.bounds.Center()
	g.powerUp = PowerUp{Active: true, Pos: at}
	for i := range g.shapes {
		g.shapes[i].Pos = core.Vec2{X: at.X + float64(i)*0.3, Y: at.Y}
	}
	target := g.agent.TargetLen

	g.agentTakePowerUp()

	if g.state.AgentScore != g.opts.PowerUp.Bonus {
		t.Errorf("agent score = %d, want flat %d", g.state.AgentScore, g.opts.PowerUp.Bonus)
	}
	if g.powerUp.Active {
		t.Error("power-up still active after consumption")
	}
	if g.agent.TargetLen != target+2*g.opts.Agent.Growth {
		t.Errorf("target length = %d, want %d", g.agent.TargetLen, target+2*g.opts.Agent.Growth)
	}
	if len(g.fireballs) == 0 {
		t.Error("explosion spawned no fireballs")
	}
	for i := range g.shapes {
		if at.Dist(g.shapes[i].Pos) <= g.opts.PowerUp.ExplosionRadius && g.shapes[i].Pos.Y == at.Y {
			t.Errorf("shape %d not reset by the blast", i)
		}
	}
}

func TestAgentSpacingPullsGapsClosed(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	// Stretch the second segment far behind the head.
	g.agent.Segments[1] = core.Vec2{
		X: g.agent.Segments[0].X - 6,
		Y: g.agent.Segments[0].Y,
	}
	for i := range g.shapes {
		g.shapes[i].Pos = core.Vec2{X: g.bounds.MaxX - 1, Y: g.bounds.MaxY - 1}
	}

	g.updateAgent()

	spacing := 2 * g.agent.Radius
	limit := core.Min(g.opts.Agent.SpacingPrefix, len(g.agent.Segments)-1)
	for i := 1; i <= limit; i++ {
		d := g.agent.Segments[i].Dist(g.agent.Segments[i-1])
		if d > spacing+1e-9 {
			t.Fatalf("segment %d gap %v exceeds spacing %v", i, d, spacing)
		}
	}
}

func TestAgentHeadWrapsToroidally(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.powerUp.Active = false

	// Head at the right edge chasing a shape pushed past it.
	g.agent.Segments[0] = core.Vec2{X: g.bounds.MaxX - 0.05, Y: g.bounds.Center().Y}
	for i := range g.shapes {
		g.shapes[i].Pos = core.Vec2{X: g.bounds.MaxX + 3, Y: g.bounds.Center().Y}
	}

	g.updateAgent()

	head := g.agent.Segments[0]
	if head.X > g.bounds.MinX+1 {
		t.Errorf("head did not wrap to the left edge: %+v", head)
	}
}
