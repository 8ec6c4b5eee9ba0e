package shapestorm

import (
	"math"

	"shapestorm/internal/core"
)

// Agent is the autonomous snake competing for shapes. Segments are kept
// head-first; movement inserts a new head and truncates the tail to the
// current target length, so growth shows up over the following ticks.
type Agent struct {
	Segments  []core.Vec2
	TargetLen int
	Speed     float64
	Radius    float64
}

// newAgent builds an agent coiled leftward from the given head position.
func (g *Game) newAgent() *Agent {
	a := &Agent{
		TargetLen: g.opts.Agent.StartLength,
		Speed:     g.agentSpeed(),
		Radius:    g.opts.Agent.SegmentRadius,
	}
	head := g.bounds.Center()
	head.Y = g.bounds.MinY + g.bounds.Height()*0.25
	spacing := 2 * a.Radius
	for i := 0; i < a.TargetLen; i++ {
		a.Segments = append(a.Segments, core.Vec2{X: head.X - float64(i)*spacing, Y: head.Y})
	}
	return a
}

// updateAgent runs one control tick: pick a target, advance the head,
// consume anything in reach, then settle the body.
func (g *Game) updateAgent() {
	a := g.agent
	if len(a.Segments) == 0 {
		return
	}
	head := a.Segments[0]

	// Nearest shape is the default target.
	nearest := -1
	nearestDist := math.MaxFloat64
	for i := range g.shapes {
		if d := head.Dist(g.shapes[i].Pos); d < nearestDist {
			nearestDist = d
			nearest = i
		}
	}
	if nearest < 0 {
		return
	}
	target := g.shapes[nearest].Pos

	// A live power-up wins targeting unless it is more than the bias
	// farther away than the nearest shape.
	if g.powerUp.Active && head.Dist(g.powerUp.Pos) <= nearestDist+g.opts.Agent.PowerUpBias {
		target = g.powerUp.Pos
	}

	ang := head.Heading(target)
	next := core.Vec2{
		X: head.X + math.Cos(ang)*a.Speed,
		Y: head.Y + math.Sin(ang)*a.Speed,
	}

	// Consumption uses the prospective head; a power-up and a shape can
	// both land on the same tick.
	if g.powerUp.Active && next.Dist(g.powerUp.Pos) < a.Radius+g.opts.PowerUp.Size/2 {
		g.agentTakePowerUp()
	}
	for i := range g.shapes {
		s := &g.shapes[i]
		if next.Dist(s.Pos) < a.Radius+s.Size/2 {
			g.agentEatShape(s)
			break
		}
	}
	if g.state.GameOver {
		return
	}

	a.Segments = append([]core.Vec2{next}, a.Segments...)
	if len(a.Segments) > a.TargetLen {
		a.Segments = a.Segments[:a.TargetLen]
	}

	// Pull over-stretched gaps closed on the leading segments only.
	spacing := 2 * a.Radius
	limit := core.Min(g.opts.Agent.SpacingPrefix, len(a.Segments)-1)
	for i := 1; i <= limit; i++ {
		prev := a.Segments[i-1]
		seg := a.Segments[i]
		if d := seg.Dist(prev); d > spacing {
			pull := prev.Heading(seg)
			a.Segments[i] = core.Vec2{
				X: prev.X + math.Cos(pull)*spacing,
				Y: prev.Y + math.Sin(pull)*spacing,
			}
		}
	}

	a.Segments[0] = g.bounds.Wrap(a.Segments[0])
}

func (g *Game) agentEatShape(s *TargetShape) {
	g.agent.TargetLen += g.opts.Agent.Growth
	g.addAgentScore(g.opts.Gameplay.HitValue, s.Pos, core.EventAgentAteShape)
	g.spawnBurst(s.Pos, s.Color)
	g.resetShape(s)
}

// agentTakePowerUp awards the flat bonus and detonates: every shape in
// the explosion radius resets with its own fireball burst. The bonus
// never scales with how many shapes the blast catches.
func (g *Game) agentTakePowerUp() {
	at := g.powerUp.Pos
	g.powerUp.Active = false
	g.agent.TargetLen += 2 * g.opts.Agent.Growth

	for i := range g.shapes {
		s := &g.shapes[i]
		if at.Dist(s.Pos) <= g.opts.PowerUp.ExplosionRadius {
			g.spawnFireballBurst(s.Pos)
			g.resetShape(s)
		}
	}
	g.spawnFireballBurst(at)
	g.addAgentScore(g.opts.PowerUp.Bonus, at, core.EventAgentAtePower)
}

// addAgentScore credits the agent and ends the game if it reached the
// current level's target first.
func (g *Game) addAgentScore(pts int, at core.Vec2, kind core.EventKind) {
	g.state.AgentScore += pts
	g.emit(core.Event{Kind: kind, At: at, Points: pts})
	if g.state.AgentScore >= g.levelTarget() {
		g.endGame(core.WinnerAgent)
	}
}
