package shapestorm

import (
	"math"

	"shapestorm/internal/core"
)

// Particle is a short-lived burst fragment. Life runs 1 -> 0.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64
	Decay float64
	Color core.Color
}

// Fireball is a heavier fragment used by power-up explosions: same life
// model as Particle plus constant downward gravity.
type Fireball struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64
	Decay float64
}

// spawnBurst emits a radial particle burst at a destroyed shape.
func (g *Game) spawnBurst(at core.Vec2, c core.Color) {
	for i := 0; i < g.opts.Particles.BurstCount; i++ {
		ang := g.rng.Float64() * 2 * math.Pi
		sp := g.randRange(0.15, 0.6)
		g.particles = append(g.particles, Particle{
			Pos:   at,
			Vel:   core.Vec2{X: math.Cos(ang) * sp, Y: math.Sin(ang) * sp},
			Life:  1,
			Decay: g.randRange(g.opts.Particles.MinDecay, g.opts.Particles.MaxDecay),
			Color: c,
		})
	}
	if over := len(g.particles) - g.opts.Particles.MaxParticles; over > 0 {
		g.particles = g.particles[over:]
	}
}

// spawnFireballBurst emits the heavier explosion fragments.
func (g *Game) spawnFireballBurst(at core.Vec2) {
	for i := 0; i < g.opts.Particles.FireballBurst; i++ {
		ang := g.rng.Float64() * 2 * math.Pi
		sp := g.randRange(0.25, 0.8)
		g.fireballs = append(g.fireballs, Fireball{
			Pos:   at,
			Vel:   core.Vec2{X: math.Cos(ang) * sp, Y: math.Sin(ang)*sp - 0.2},
			Life:  1,
			Decay: g.randRange(g.opts.Particles.MinDecay, g.opts.Particles.MaxDecay),
		})
	}
	if over := len(g.fireballs) - g.opts.Particles.MaxFireballs; over > 0 {
		g.fireballs = g.fireballs[over:]
	}
}

// updateParticles advances both pools in place, compacting out dead
// entries without disturbing spawn order.
func (g *Game) updateParticles() {
	friction := g.opts.Particles.Friction

	n := 0
	for i := range g.particles {
		p := g.particles[i]
		p.Vel = p.Vel.Scale(friction)
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= p.Decay
		if p.Life > 0 {
			g.particles[n] = p
			n++
		}
	}
	g.particles = g.particles[:n]

	n = 0
	for i := range g.fireballs {
		f := g.fireballs[i]
		f.Vel.Y += g.opts.Particles.FireballGravity
		f.Vel = f.Vel.Scale(friction)
		f.Pos = f.Pos.Add(f.Vel)
		f.Life -= f.Decay
		if f.Life > 0 {
			g.fireballs[n] = f
			n++
		}
	}
	g.fireballs = g.fireballs[:n]
}
