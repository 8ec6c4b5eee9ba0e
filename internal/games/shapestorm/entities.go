package shapestorm

import (
	"math"

	"shapestorm/internal/core"
)

// ShapeKind selects the glyph and silhouette of a target shape.
type ShapeKind int

const (
	KindStar ShapeKind = iota
	KindCircle
	KindTriangle
	KindSquare
	KindPentagon

	numShapeKinds
)

var shapePalette = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorOrange,
}

// Star is a background element. Depth 0 means a static twinkling star;
// depth in (0,1] means a parallax star drifting outward from the field
// center, faster and longer-streaked the deeper it is.
type Star struct {
	Pos        core.Vec2
	Brightness float64
	Rate       float64 // brightness delta per tick, sign flips at the rails
	Color      core.Color
	Depth      float64
}

// TargetShape is one slot of the fixed shape pool. Destruction never
// removes a shape; it re-randomizes the slot in place.
type TargetShape struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Size      float64
	BaseSize  float64
	Color     core.Color
	Kind      ShapeKind
	Pulse     float64
	Orbiters  []float64 // angular phases
	OrbitRate float64
	Trap      bool
	TrapTick  int // tick the trap flag was set
	Shrinking bool
}

// PowerUp is the single falling bonus object. Only the agent can take it.
type PowerUp struct {
	Active bool
	Pos    core.Vec2
	Pulse  float64
}

// Popup is a transient floating score label.
type Popup struct {
	Pos   core.Vec2
	Text  string
	Color core.Color
	Ticks int
}

const (
	parallaxSpeed   = 0.08 // outward drift per tick at depth 1
	starRespawnSpan = 3.0  // max random offset from center on respawn
	brightnessMin   = 0.3
	brightnessMax   = 1.0
)

func (g *Game) populateStars() {
	count := g.opts.Field.StarCount + (g.state.Level-1)*g.opts.Field.StarsPerLevel
	g.stars = g.stars[:0]
	for i := 0; i < count; i++ {
		st := Star{
			Pos:        g.randomPoint(g.bounds),
			Brightness: brightnessMin + g.rng.Float64()*(brightnessMax-brightnessMin),
			Rate:       g.randRange(0.004, 0.02),
			Color:      core.ColorGray,
		}
		if g.rng.Intn(4) == 0 {
			st.Color = core.ColorWhite
		}
		if g.rng.Intn(2) == 0 {
			st.Rate = -st.Rate
		}
		if g.parallaxActive() {
			st.Depth = 0.2 + g.rng.Float64()*0.8
		}
		g.stars = append(g.stars, st)
	}
}

func (g *Game) updateStars() {
	center := g.bounds.Center()
	for i := range g.stars {
		st := &g.stars[i]

		// Ping-pong brightness; overshoot carries past the rail.
		st.Brightness += st.Rate
		if st.Brightness > brightnessMax {
			st.Brightness = 2*brightnessMax - st.Brightness
			st.Rate = -st.Rate
		} else if st.Brightness < brightnessMin {
			st.Brightness = 2*brightnessMin - st.Brightness
			st.Rate = -st.Rate
		}

		if st.Depth <= 0 {
			continue
		}
		ang := center.Heading(st.Pos)
		sp := parallaxSpeed * st.Depth
		st.Pos.X += math.Cos(ang) * sp
		st.Pos.Y += math.Sin(ang) * sp
		if !g.bounds.Contains(st.Pos) {
			st.Pos = core.Vec2{
				X: center.X + (g.rng.Float64()*2-1)*starRespawnSpan,
				Y: center.Y + (g.rng.Float64()*2-1)*starRespawnSpan,
			}
			st.Depth = 0.2 + g.rng.Float64()*0.8
		}
	}
}

// resetShape re-randomizes a pool slot: new position, velocity, size,
// kind, color and orbiters. Clears any trap flag.
func (g *Game) resetShape(s *TargetShape) {
	inner := g.bounds.Inset(g.opts.Shapes.MaxSize)
	if !inner.Valid() {
		inner = g.bounds
	}
	s.Pos = g.randomPoint(inner)

	speed := g.randRange(g.opts.Shapes.MinSpeed, g.opts.Shapes.MaxSpeed) * g.levelSpeedScale()
	ang := g.rng.Float64() * 2 * math.Pi
	s.Vel = core.Vec2{X: math.Cos(ang) * speed, Y: math.Sin(ang) * speed}

	s.BaseSize = g.randRange(g.opts.Shapes.MinSize, g.opts.Shapes.MaxSize)
	s.Size = s.BaseSize
	s.Kind = ShapeKind(g.rng.Intn(int(numShapeKinds)))
	s.Color = shapePalette[g.rng.Intn(len(shapePalette))]
	s.Pulse = g.rng.Float64() * 2 * math.Pi
	s.OrbitRate = g.randRange(0.04, 0.09)

	n := g.opts.Shapes.MinOrbiters
	if spread := g.opts.Shapes.MaxOrbiters - g.opts.Shapes.MinOrbiters; spread > 0 {
		n += g.rng.Intn(spread + 1)
	}
	s.Orbiters = s.Orbiters[:0]
	for i := 0; i < n; i++ {
		s.Orbiters = append(s.Orbiters, g.rng.Float64()*2*math.Pi)
	}

	s.Trap = false
	s.TrapTick = 0
	s.Shrinking = g.shrinkActive()
}

func (g *Game) updateShapes() {
	for i := range g.shapes {
		s := &g.shapes[i]
		s.Pos = s.Pos.Add(s.Vel)
		reflectInBounds(&s.Pos, &s.Vel, g.bounds)

		s.Pulse += g.opts.Shapes.PulseRate
		for j := range s.Orbiters {
			s.Orbiters[j] += s.OrbitRate
		}

		if s.Shrinking {
			s.Size -= g.opts.Shapes.ShrinkRate
			if s.Size <= g.opts.Shapes.ShrinkFloor {
				s.Size = g.opts.Shapes.ShrinkFloor
				s.Shrinking = false
			}
		}
	}
}

// reflectInBounds mirrors a position back inside the bounds and flips the
// corresponding velocity component. The overshoot is carried, so the
// post-reflection position stays inside for any per-tick speed below the
// field extent.
func reflectInBounds(pos, vel *core.Vec2, b core.Bounds) {
	if pos.X < b.MinX {
		pos.X = 2*b.MinX - pos.X
		vel.X = -vel.X
	} else if pos.X > b.MaxX {
		pos.X = 2*b.MaxX - pos.X
		vel.X = -vel.X
	}
	if pos.Y < b.MinY {
		pos.Y = 2*b.MinY - pos.Y
		vel.Y = -vel.Y
	} else if pos.Y > b.MaxY {
		pos.Y = 2*b.MaxY - pos.Y
		vel.Y = -vel.Y
	}
}

func (g *Game) spawnPowerUp() {
	margin := g.opts.PowerUp.Size
	minX := g.bounds.MinX + margin
	maxX := g.bounds.MaxX - margin
	if maxX <= minX {
		minX, maxX = g.bounds.MinX, g.bounds.MaxX
	}
	g.powerUp = PowerUp{
		Active: true,
		Pos:    core.Vec2{X: g.randRange(minX, maxX), Y: g.bounds.MinY},
	}
}

func (g *Game) updatePowerUp() {
	if !g.powerUp.Active {
		return
	}
	g.powerUp.Pos.Y += g.opts.PowerUp.FallSpeed
	g.powerUp.Pulse += g.opts.Shapes.PulseRate
	if g.powerUp.Pos.Y > g.bounds.MaxY+g.opts.PowerUp.OffscreenMargin {
		g.powerUp.Active = false
	}
}
