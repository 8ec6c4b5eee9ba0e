package shapestorm

import (
	"fmt"

	"shapestorm/internal/core"
)

// resolveTaps applies the frame's taps. Each tap hits at most the first
// shape in pool order whose hit circle contains the tap point; power-ups
// are never player-hittable. Taps are ignored under the level-transition
// overlay and after game over.
func (g *Game) resolveTaps(taps []core.Tap) {
	for _, tap := range taps {
		if g.state.GameOver || g.overlayTicks > 0 {
			return
		}
		p := tap.Point()
		for i := range g.shapes {
			s := &g.shapes[i]
			if p.Dist(s.Pos) < s.Size {
				g.hitShape(s)
				break
			}
		}
	}
}

func (g *Game) hitShape(s *TargetShape) {
	// The first successful hit of a session starts the duel; every hit
	// after a level transition wakes the agent back up.
	if !g.started {
		g.started = true
		g.emit(core.Event{Kind: core.EventGameStarted})
	}
	g.agentAwake = true

	if s.Trap {
		g.hitTrap(s)
		return
	}

	pts := g.opts.Gameplay.HitValue
	if g.state.Level >= g.opts.Gameplay.MaxLevel && s.Size < g.opts.Gameplay.SmallSizeThreshold {
		pts = g.opts.Gameplay.SmallHitValue
	}
	g.state.Score += pts
	g.addPopup(s.Pos, fmt.Sprintf("+%d", pts), core.ColorBrightGreen)
	g.spawnBurst(s.Pos, s.Color)
	g.emit(core.Event{Kind: core.EventShapeHit, At: s.Pos, Points: pts})
	g.resetShape(s)

	g.checkLevelUp()
}

// hitTrap costs points (never below zero) and reverts the trap without
// resetting the shape.
func (g *Game) hitTrap(s *TargetShape) {
	penalty := g.opts.Gameplay.TrapPenalty
	g.state.Score = core.Max(0, g.state.Score-penalty)
	s.Trap = false
	s.TrapTick = 0
	g.addPopup(s.Pos, fmt.Sprintf("-%d", penalty), core.ColorBrightRed)
	g.spawnBurst(s.Pos, core.ColorRed)
	g.emit(core.Event{Kind: core.EventTrapHit, At: s.Pos, Points: -penalty})
}

// checkLevelUp runs only on the player-score path. Crossing the final
// target wins; crossing any earlier target advances exactly once, since
// the next target moves out of reach with the level.
func (g *Game) checkLevelUp() {
	if g.state.Score < g.levelTarget() {
		return
	}
	if g.state.Level >= g.maxLevel() {
		g.endGame(core.WinnerPlayer)
		return
	}
	g.advanceLevel()
}

// advanceLevel resets the duel for the next stage: the agent restarts
// from zero but faster, the field repopulates, and the agent stays
// dormant until the player's next hit.
func (g *Game) advanceLevel() {
	g.state.Level++
	g.state.AgentScore = 0
	g.agent = g.newAgent()
	g.agentAwake = false
	g.populateStars()
	for i := range g.shapes {
		g.resetShape(&g.shapes[i])
	}
	if g.trapsActive() {
		g.trapTimer = g.opts.Traps.ConvertEveryTicks
	}
	g.overlayTicks = g.opts.Gameplay.OverlayTicks
	g.emit(core.Event{Kind: core.EventLevelUp, Level: g.state.Level})
}

func (g *Game) endGame(w core.Winner) {
	if g.state.GameOver {
		return
	}
	g.state.GameOver = true
	g.state.Winner = w
	g.trapTimer = 0
	g.emit(core.Event{Kind: core.EventGameOver, Winner: w})
}

func (g *Game) addPopup(at core.Vec2, text string, c core.Color) {
	g.popups = append(g.popups, Popup{
		Pos:   at,
		Text:  text,
		Color: c,
		Ticks: g.opts.Gameplay.PopupTicks,
	})
}

func (g *Game) updatePopups() {
	n := 0
	for i := range g.popups {
		p := g.popups[i]
		p.Ticks--
		p.Pos.Y -= 0.06
		if p.Ticks > 0 {
			g.popups[n] = p
			n++
		}
	}
	g.popups = g.popups[:n]
}
