package shapestorm

import (
	"testing"

	"shapestorm/internal/core"
)

func TestScoreFlooredAtZero(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.state.Score = g.opts.Gameplay.TrapPenalty / 2

	s := &g.shapes[0]
	s.Trap = true
	s.TrapTick = g.tick
	g.hitShape(s)

	if g.state.Score != 0 {
		t.Errorf("score = %d, want floor 0", g.state.Score)
	}

	// A second trap hit from zero stays at zero.
	s.Trap = true
	g.hitShape(s)
	if g.state.Score != 0 {
		t.Errorf("score went negative: %d", g.state.Score)
	}
}

func TestTrapHitRevertsWithoutReset(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.state.Score = 100

	s := &g.shapes[0]
	pos, kind := s.Pos, s.Kind
	s.Trap = true
	s.TrapTick = g.tick

	g.hitShape(s)

	if s.Trap {
		t.Error("trap not reverted by the hit")
	}
	if s.Pos != pos || s.Kind != kind {
		t.Error("trap hit reset the shape instead of reverting it")
	}
	if g.state.Score != 100-g.opts.Gameplay.TrapPenalty {
		t.Errorf("score = %d, want %d", g.state.Score, 100-g.opts.Gameplay.TrapPenalty)
	}
	if !hasEvent(g.events, core.EventTrapHit) {
		t.Error("missing trap-hit event")
	}
	if len(g.popups) == 0 {
		t.Error("no penalty popup")
	}
}

func TestTrapHitNeverLevelsUp(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.state.Score = g.levelTarget() + 50 // unreachable state, but the guard must hold

	s := &g.shapes[0]
	s.Trap = true
	g.hitShape(s)

	if g.state.Level != 1 {
		t.Errorf("trap hit advanced the level to %d", g.state.Level)
	}
}

func TestSmallShapeValueAtFinalLevel(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.state.Level = g.opts.Gameplay.MaxLevel
	g.state.Score = 1000 // below the level-3 target

	s := &g.shapes[0]
	s.Trap = false
	s.Size = g.opts.Gameplay.SmallSizeThreshold - 0.1
	g.hitShape(s)

	if got := g.state.Score - 1000; got != g.opts.Gameplay.SmallHitValue {
		t.Errorf("small-shape hit scored %d, want %d", got, g.opts.Gameplay.SmallHitValue)
	}

	// At full size the standard value applies even on the final level.
	g.state.Score = 1000
	s2 := &g.shapes[1]
	s2.Trap = false
	s2.Size = g.opts.Gameplay.SmallSizeThreshold + 0.5
	g.hitShape(s2)
	if got := g.state.Score - 1000; got != g.opts.Gameplay.HitValue {
		t.Errorf("full-size hit scored %d, want %d", got, g.opts.Gameplay.HitValue)
	}
}

func TestLevelUpExactlyOnce(t *testing.T) {
	g := newTestGame()
	startDuel(g)
	g.state.Score = g.levelTarget() - g.opts.Gameplay.HitValue

	s := &g.shapes[0]
	s.Trap = false
	s.Size = g.opts.Shapes.MaxSize
	g.hitShape(s)

	if g.state.Level != 2 {
		t.Fatalf("level = %d, want 2", g.state.Level)
	}
	if g.state.AgentScore != 0 {
		t.Error("agent score not zeroed on level-up")
	}
	if g.agentAwake {
		t.Error("agent awake right after level-up")
	}
	if g.overlayTicks != g.opts.Gameplay.OverlayTicks {
		t.Errorf("overlay = %d ticks, want %d", g.overlayTicks, g.opts.Gameplay.OverlayTicks)
	}
	if g.trapTimer == 0 {
		t.Error("trap timer not started at level 2")
	}
	if !hasEvent(g.events, core.EventLevelUp) {
		t.Error("missing level-up event")
	}

	// Scoring further while still above the old threshold must not
	// trigger another transition; the next target has moved.
	level := g.state.Level
	s2 := &g.shapes[1]
	s2.Trap = false
	s2.Size = g.opts.Shapes.MaxSize
	g.hitShape(s2)
	if g.state.Level != level {
		t.Errorf("second crossing of the old threshold advanced to %d", g.state.Level)
	}
}

func TestLevelUpRaisesAgentSpeed(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	before := g.agent.Speed
	g.state.Score = g.levelTarget()
	g.checkLevelUp()

	if g.agent.Speed <= before {
		t.Errorf("agent speed %v did not rise from %v", g.agent.Speed, before)
	}
	if want := g.opts.Agent.BaseSpeed + g.opts.Agent.SpeedPerLevel; g.agent.Speed != want {
		t.Errorf("agent speed = %v, want %v", g.agent.Speed, want)
	}
}

func TestLevelUpGrowsStarField(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	before := len(g.stars)
	g.state.Score = g.levelTarget()
	g.checkLevelUp()

	want := before + g.opts.Field.StarsPerLevel
	if len(g.stars) != want {
		t.Errorf("star count = %d, want %d", len(g.stars), want)
	}

	parallax := 0
	for i := range g.stars {
		if g.stars[i].Depth > 0 {
			parallax++
		}
	}
	if parallax != len(g.stars) {
		t.Error("level-2 star field not fully parallax")
	}
}

func TestOverlaySwallowsTaps(t *testing.T) {
	g := newTestGame()
	g.Step(tapOn(&g.shapes[0]))
	score := g.state.Score

	g.overlayTicks = 10
	g.Step(tapOn(&g.shapes[0]))

	if g.state.Score != score {
		t.Error("tap resolved under the transition overlay")
	}
}

func TestPopupsExpire(t *testing.T) {
	g := newTestGame()
	g.addPopup(g.bounds.Center(), "+10", core.ColorBrightGreen)

	for i := 0; i < g.opts.Gameplay.PopupTicks; i++ {
		g.updatePopups()
	}
	if len(g.popups) != 0 {
		t.Errorf("%d popups left after their lifetime", len(g.popups))
	}
}

func TestTapHitsFirstShapeInPoolOrder(t *testing.T) {
	g := newTestGame()
	startDuel(g)

	// Stack two shapes; the earlier slot must take the hit.
	at := g.bounds.Center()
	g.shapes[2].Pos = at
	g.shapes[2].Size = 2
	g.shapes[2].Trap = false
	g.shapes[5].Pos = at
	g.shapes[5].Size = 2
	g.shapes[5].Trap = false
	moved5 := g.shapes[5].Pos

	in := core.NewInputFrame()
	in.AddTap(int(at.X), int(at.Y))
	g.resolveTaps(in.Taps)

	if g.shapes[5].Pos != moved5 {
		t.Error("later shape consumed a tap meant for the earlier slot")
	}
	if g.state.Score == 0 {
		t.Error("stacked tap scored nothing")
	}
}
