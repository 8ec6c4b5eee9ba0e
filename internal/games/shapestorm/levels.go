package shapestorm

// levelTarget is the score that wins the current level: a fixed amount
// per level, so each level asks for the same additional distance while
// the field gets harder.
func (g *Game) levelTarget() int {
	return g.opts.Gameplay.LevelThreshold * g.state.Level
}

// maxLevel is the level whose target ends the game in the player's favor.
// Classic mode is a single-level duel.
func (g *Game) maxLevel() int {
	if g.mode == ModeClassic {
		return 1
	}
	return g.opts.Gameplay.MaxLevel
}

// levelSpeedScale scales shape speeds up as levels advance.
func (g *Game) levelSpeedScale() float64 {
	return 1 + 0.25*float64(g.state.Level-1)
}

// agentSpeed grows linearly with the level.
func (g *Game) agentSpeed() float64 {
	return g.opts.Agent.BaseSpeed + g.opts.Agent.SpeedPerLevel*float64(g.state.Level-1)
}

// shrinkActive reports whether freshly spawned shapes shrink toward the
// floor size. Final-level arcade pressure only.
func (g *Game) shrinkActive() bool {
	return g.mode == ModeArcade && g.state.Level >= g.opts.Gameplay.MaxLevel
}

// parallaxActive reports whether the star field drifts with depth.
func (g *Game) parallaxActive() bool {
	return g.mode == ModeArcade && g.state.Level >= 2
}

// trapsActive reports whether the trap-conversion timer runs.
func (g *Game) trapsActive() bool {
	return g.mode == ModeArcade && g.state.Level >= 2
}
