// Package shapestorm implements the shape-tapping duel: the player taps
// shapes for points while an autonomous snake agent races them to each
// level's target score. All logic is pure and tick-driven; the platform
// layer owns timing, input mapping, audio and persistence.
package shapestorm

import (
	"math/rand"

	"shapestorm/internal/config"
	"shapestorm/internal/core"
	"shapestorm/internal/registry"
)

// Mode selects the rule set.
type Mode int

const (
	// ModeArcade is the full game: three levels, traps, shrinking shapes,
	// parallax star field.
	ModeArcade Mode = iota
	// ModeClassic is the baseline variant: a single level-1 duel with no
	// traps, no shrinking and a flat star field.
	ModeClassic
)

func init() {
	registry.Register("shapestorm", func() registry.Game {
		return New(ModeArcade)
	})
	registry.Register("shapestorm_classic", func() registry.Game {
		return New(ModeClassic)
	})
}

// Game holds the full simulation state for one session.
type Game struct {
	mode Mode
	cfg  core.RuntimeConfig
	opts config.Config

	rng     *rand.Rand
	bounds  core.Bounds
	invalid bool

	tick  int
	state core.GameState

	started    bool // set by the first successful hit
	agentAwake bool // cleared on level-up until the player hits again

	stars   []Star
	shapes  []TargetShape
	agent   *Agent
	powerUp PowerUp

	particles []Particle
	fireballs []Fireball
	popups    []Popup

	overlayTicks int // remaining level-transition overlay ticks
	powerUpTimer int // ticks until the next spawn attempt
	trapTimer    int // ticks until the next conversion wave; 0 = off

	events []core.Event
}

// New creates an unstarted game; Reset must be called before Step.
func New(mode Mode) *Game {
	return &Game{
		mode: mode,
		opts: config.Default(),
	}
}

// ID returns the registry identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "shapestorm_classic"
	}
	return "shapestorm"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Shapestorm Classic"
	}
	return "Shapestorm"
}

// Configure replaces the tunables. Takes effect on the next Reset.
func (g *Game) Configure(opts config.Config) {
	g.opts = opts
}

// Reset initializes the session for the given screen and seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.reinit()
}

// reinit rebuilds the level-1 state without reseeding, so a restart
// continues the same random stream.
func (g *Game) reinit() {
	g.bounds = core.NewBounds(
		g.cfg.ScreenW, g.cfg.ScreenH,
		g.opts.Field.SideMargin, g.opts.Field.TopMargin, g.opts.Field.BottomMargin,
	)
	g.invalid = !g.bounds.Valid()

	g.tick = 0
	g.state = core.GameState{Level: 1}
	g.started = false
	g.agentAwake = false

	g.particles = g.particles[:0]
	g.fireballs = g.fireballs[:0]
	g.popups = g.popups[:0]
	g.powerUp = PowerUp{}
	g.overlayTicks = 0
	g.trapTimer = 0
	g.events = g.events[:0]

	if g.invalid {
		return
	}

	g.populateStars()
	if g.shapes == nil {
		g.shapes = make([]TargetShape, g.opts.Shapes.Count)
	}
	for i := range g.shapes {
		g.resetShape(&g.shapes[i])
	}
	g.agent = g.newAgent()
	g.powerUpTimer = g.opts.PowerUp.SpawnEveryTicks
	if g.trapsActive() {
		g.trapTimer = g.opts.Traps.ConvertEveryTicks
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.reinit()
	}
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.state.Paused = !g.state.Paused
	}
	if g.invalid || g.state.GameOver || g.state.Paused {
		return g.result()
	}

	g.tick++

	// Timers run first so every tick's mutations interleave the same way.
	g.updateTimers()

	g.resolveTaps(in.Taps)
	if g.state.GameOver {
		return g.result()
	}

	g.updatePopups()
	if g.overlayTicks > 0 {
		g.overlayTicks--
	}
	g.revertStaleTraps()

	g.updateStars()
	g.updateShapes()
	g.updatePowerUp()
	if g.started && g.agentAwake {
		g.updateAgent()
	}
	g.updateParticles()

	return g.result()
}

func (g *Game) updateTimers() {
	if g.started && !g.state.GameOver {
		g.powerUpTimer--
		if g.powerUpTimer <= 0 {
			g.powerUpTimer = g.opts.PowerUp.SpawnEveryTicks
			if !g.powerUp.Active {
				g.spawnPowerUp()
			}
		}
	}

	if g.trapTimer > 0 {
		g.trapTimer--
		if g.trapTimer == 0 {
			g.trapTimer = g.opts.Traps.ConvertEveryTicks
			g.convertTraps()
		}
	}
}

// convertTraps flags a small random wave of shapes as traps. Shapes that
// are already traps or still shrinking are skipped.
func (g *Game) convertTraps() {
	want := g.opts.Traps.MinPerWave
	if spread := g.opts.Traps.MaxPerWave - g.opts.Traps.MinPerWave; spread > 0 {
		want += g.rng.Intn(spread + 1)
	}

	candidates := candidates(g.shapes)
	for want > 0 && len(candidates) > 0 {
		pick := g.rng.Intn(len(candidates))
		s := &g.shapes[candidates[pick]]
		s.Trap = true
		s.TrapTick = g.tick
		candidates = append(candidates[:pick], candidates[pick+1:]...)
		want--
	}
}

func candidates(shapes []TargetShape) []int {
	var out []int
	for i := range shapes {
		if !shapes[i].Trap && !shapes[i].Shrinking {
			out = append(out, i)
		}
	}
	return out
}

// revertStaleTraps clears traps that outlived their duration.
func (g *Game) revertStaleTraps() {
	for i := range g.shapes {
		s := &g.shapes[i]
		if s.Trap && g.tick-s.TrapTick > g.opts.Traps.DurationTicks {
			s.Trap = false
			s.TrapTick = 0
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *Game) randRange(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Game) randomPoint(b core.Bounds) core.Vec2 {
	return core.Vec2{
		X: b.MinX + g.rng.Float64()*b.Width(),
		Y: b.MinY + g.rng.Float64()*b.Height(),
	}
}
