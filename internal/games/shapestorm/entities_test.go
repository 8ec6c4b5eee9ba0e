package shapestorm

import (
	"testing"

	"shapestorm/internal/core"
)

func TestShapeReflectionStaysInBounds(t *testing.T) {
	g := newTestGame()

	// Park a shape just inside the right edge, moving out fast.
	s := &g.shapes[0]
	s.Pos = core.Vec2{X: g.bounds.MaxX - 0.05, Y: g.bounds.Center().Y}
	s.Vel = core.Vec2{X: 0.4, Y: 0}
	s.Shrinking = false

	g.updateShapes()

	if !g.bounds.Contains(s.Pos) {
		t.Errorf("shape escaped bounds at %+v", s.Pos)
	}
	if s.Vel.X >= 0 {
		t.Errorf("velocity not flipped: %+v", s.Vel)
	}
	// The overshoot must be mirrored, not clamped.
	want := 2*g.bounds.MaxX - (g.bounds.MaxX - 0.05 + 0.4)
	if diff := s.Pos.X - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("pos.X = %v, want mirrored %v", s.Pos.X, want)
	}
}

func TestShapeReflectionAllEdges(t *testing.T) {
	g := newTestGame()
	b := g.bounds

	cases := []struct {
		pos, vel core.Vec2
	}{
		{core.Vec2{X: b.MinX + 0.01, Y: b.Center().Y}, core.Vec2{X: -0.3, Y: 0}},
		{core.Vec2{X: b.Center().X, Y: b.MinY + 0.01}, core.Vec2{X: 0, Y: -0.3}},
		{core.Vec2{X: b.Center().X, Y: b.MaxY - 0.01}, core.Vec2{X: 0, Y: 0.3}},
	}
	for i, tc := range cases {
		pos, vel := tc.pos, tc.vel
		pos = pos.Add(vel)
		reflectInBounds(&pos, &vel, b)
		if !b.Contains(pos) {
			t.Errorf("case %d: escaped to %+v", i, pos)
		}
	}
}

func TestStarBrightnessPingPong(t *testing.T) {
	g := newTestGame()

	st := &g.stars[0]
	st.Brightness = 0.99
	st.Rate = 0.02
	st.Depth = 0

	g.updateStars()
	if st.Brightness < brightnessMin || st.Brightness > brightnessMax {
		t.Fatalf("brightness %v left [%v, %v]", st.Brightness, brightnessMin, brightnessMax)
	}
	// 0.99 + 0.02 overshoots to 1.01; the carry lands at 0.99 inverted.
	if diff := st.Brightness - 0.99; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("overshoot not carried: brightness = %v", st.Brightness)
	}
	if st.Rate >= 0 {
		t.Error("rate not inverted at the upper rail")
	}

	// Long-run: never leaves the band.
	for i := 0; i < 2000; i++ {
		g.updateStars()
		if st.Brightness < brightnessMin || st.Brightness > brightnessMax {
			t.Fatalf("tick %d: brightness %v out of band", i, st.Brightness)
		}
	}
}

func TestParallaxStarsRespawnNearCenter(t *testing.T) {
	g := newTestGame()
	g.state.Level = 2
	g.populateStars()

	st := &g.stars[0]
	st.Depth = 1.0
	st.Pos = core.Vec2{X: g.bounds.MaxX + 0.5, Y: g.bounds.Center().Y}

	g.updateStars()

	center := g.bounds.Center()
	if st.Pos.Dist(center) > starRespawnSpan*2 {
		t.Errorf("respawned star too far from center: %+v", st.Pos)
	}
}

func TestShapeShrinksToFloorAtFinalLevel(t *testing.T) {
	g := newTestGame()
	g.state.Level = g.opts.Gameplay.MaxLevel

	s := &g.shapes[0]
	g.resetShape(s)
	if !s.Shrinking {
		t.Fatal("final-level shape not shrinking")
	}

	for i := 0; i < 2000; i++ {
		g.updateShapes()
	}
	if s.Size != g.opts.Shapes.ShrinkFloor {
		t.Errorf("size = %v, want floor %v", s.Size, g.opts.Shapes.ShrinkFloor)
	}
	if s.Shrinking {
		t.Error("still flagged shrinking at the floor")
	}
}

func TestTrapConversionSkipsShrinkingShapes(t *testing.T) {
	g := newTestGame()
	for i := range g.shapes {
		g.shapes[i].Shrinking = true
	}
	g.shapes[3].Shrinking = false

	g.convertTraps()

	for i := range g.shapes {
		if g.shapes[i].Trap && i != 3 {
			t.Errorf("shrinking shape %d converted to a trap", i)
		}
	}
	if !g.shapes[3].Trap {
		t.Error("only eligible shape not converted")
	}
}

func TestTrapRevertsAfterDuration(t *testing.T) {
	g := newTestGame()

	s := &g.shapes[0]
	s.Trap = true
	s.TrapTick = g.tick

	g.tick += g.opts.Traps.DurationTicks
	g.revertStaleTraps()
	if !s.Trap {
		t.Fatal("trap reverted before its duration elapsed")
	}

	g.tick++
	g.revertStaleTraps()
	if s.Trap {
		t.Error("stale trap not reverted")
	}
}

func TestTrapWaveSize(t *testing.T) {
	g := newTestGame()

	for trial := 0; trial < 20; trial++ {
		for i := range g.shapes {
			g.shapes[i].Trap = false
			g.shapes[i].Shrinking = false
		}
		g.convertTraps()

		n := 0
		for i := range g.shapes {
			if g.shapes[i].Trap {
				n++
			}
		}
		if n < g.opts.Traps.MinPerWave || n > g.opts.Traps.MaxPerWave {
			t.Fatalf("wave converted %d traps, want %d..%d",
				n, g.opts.Traps.MinPerWave, g.opts.Traps.MaxPerWave)
		}
	}
}

func TestPowerUpFallsAndExpires(t *testing.T) {
	g := newTestGame()
	g.spawnPowerUp()

	if !g.powerUp.Active {
		t.Fatal("spawn left power-up inactive")
	}
	if g.powerUp.Pos.Y != g.bounds.MinY {
		t.Errorf("power-up spawned at y=%v, want top %v", g.powerUp.Pos.Y, g.bounds.MinY)
	}

	y := g.powerUp.Pos.Y
	g.updatePowerUp()
	if g.powerUp.Pos.Y <= y {
		t.Error("power-up did not fall")
	}

	g.powerUp.Pos.Y = g.bounds.MaxY + g.opts.PowerUp.OffscreenMargin + 0.01
	g.updatePowerUp()
	if g.powerUp.Active {
		t.Error("power-up survived past the offscreen margin")
	}
}

func TestPowerUpTimerSpawnsAtMostOne(t *testing.T) {
	g := newTestGame()
	g.Step(tapOn(&g.shapes[0]))

	// Park the agent far away so it cannot take the drop mid-test.
	g.agentAwake = false

	for i := 0; i < g.opts.PowerUp.SpawnEveryTicks+1; i++ {
		g.Step(core.InputFrame{})
	}
	if !g.powerUp.Active {
		t.Fatal("timer never spawned a power-up")
	}

	pos := g.powerUp.Pos
	for i := 0; i < g.opts.PowerUp.SpawnEveryTicks+1; i++ {
		g.Step(core.InputFrame{})
		if g.powerUp.Active && g.powerUp.Pos.X != pos.X {
			t.Fatal("second power-up spawned while one was live")
		}
		if !g.powerUp.Active {
			break
		}
	}
}
