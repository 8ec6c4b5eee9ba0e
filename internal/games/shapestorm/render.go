package shapestorm

import (
	"fmt"
	"math"

	"shapestorm/internal/core"
)

var shapeGlyphs = map[ShapeKind]rune{
	KindStar:     '✦',
	KindCircle:   '●',
	KindTriangle: '▲',
	KindSquare:   '■',
	KindPentagon: '⬟',
}

// Render draws the full frame: background stars, shapes with orbiters,
// the power-up, the agent, particles, popups, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.invalid {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small — resize to play")
		return
	}

	g.renderStars(dst)
	g.renderShapes(dst)
	g.renderPowerUp(dst)
	g.renderAgent(dst)
	g.renderParticles(dst)
	g.renderPopups(dst)
	g.renderHUD(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderStars(dst *core.Screen) {
	center := g.bounds.Center()
	for i := range g.stars {
		st := &g.stars[i]
		x, y := int(st.Pos.X), int(st.Pos.Y)

		r := '·'
		if st.Brightness > 0.75 {
			r = '✦'
		} else if st.Brightness > 0.5 {
			r = '•'
		}
		dst.SetColored(x, y, r, st.Color)

		// Deep parallax stars trail a streak back toward the center.
		if st.Depth > 0.6 {
			ang := center.Heading(st.Pos)
			dst.SetColored(
				int(st.Pos.X-math.Cos(ang)),
				int(st.Pos.Y-math.Sin(ang)),
				'·', core.ColorGray,
			)
		}
	}
}

func (g *Game) renderShapes(dst *core.Screen) {
	for i := range g.shapes {
		s := &g.shapes[i]
		x, y := int(s.Pos.X), int(s.Pos.Y)

		glyph := shapeGlyphs[s.Kind]
		color := s.Color
		if s.Trap {
			glyph = '✖'
			color = core.ColorBrightRed
		}
		dst.SetColored(x, y, glyph, color)

		// Pulse widens the shape's footprint at its visual peak.
		if s.Size+0.4*math.Sin(s.Pulse) > 1.8 {
			dst.SetColored(x-1, y, '(', color)
			dst.SetColored(x+1, y, ')', color)
		}

		for _, phase := range s.Orbiters {
			ox := int(s.Pos.X + math.Cos(phase)*s.Size)
			oy := int(s.Pos.Y + math.Sin(phase)*s.Size*0.6)
			dst.SetColored(ox, oy, '·', color)
		}
	}
}

func (g *Game) renderPowerUp(dst *core.Screen) {
	if !g.powerUp.Active {
		return
	}
	x, y := int(g.powerUp.Pos.X), int(g.powerUp.Pos.Y)
	glyph := '◆'
	if math.Sin(g.powerUp.Pulse) > 0 {
		glyph = '◇'
	}
	dst.SetColored(x, y, glyph, core.ColorBrightYellow)
}

func (g *Game) renderAgent(dst *core.Screen) {
	if g.agent == nil {
		return
	}
	for i := len(g.agent.Segments) - 1; i >= 1; i-- {
		seg := g.agent.Segments[i]
		dst.SetColored(int(seg.X), int(seg.Y), 'o', core.ColorGreen)
	}
	head := g.agent.Segments[0]
	dst.SetColored(int(head.X), int(head.Y), '◉', core.ColorBrightGreen)
}

func (g *Game) renderParticles(dst *core.Screen) {
	for i := range g.particles {
		p := &g.particles[i]
		r := '·'
		if p.Life > 0.5 {
			r = '•'
		}
		dst.SetColored(int(p.Pos.X), int(p.Pos.Y), r, p.Color)
	}
	for i := range g.fireballs {
		f := &g.fireballs[i]
		r := '*'
		if f.Life > 0.5 {
			r = '✺'
		}
		dst.SetColored(int(f.Pos.X), int(f.Pos.Y), r, core.ColorOrange)
	}
}

func (g *Game) renderPopups(dst *core.Screen) {
	for i := range g.popups {
		p := &g.popups[i]
		dst.DrawTextColored(int(p.Pos.X), int(p.Pos.Y), p.Text, p.Color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0,
		fmt.Sprintf("SCORE %d", g.state.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1,
		fmt.Sprintf("AGENT %d", g.state.AgentScore), core.ColorGreen)

	level := fmt.Sprintf("LEVEL %d  TARGET %d", g.state.Level, g.levelTarget())
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorBrightCyan)

	dst.DrawHLine(0, 2, dst.Width(), '─')
}

func (g *Game) renderOverlays(dst *core.Screen) {
	cy := dst.Height() / 2

	switch {
	case g.state.GameOver:
		msg := "THE AGENT WINS"
		if g.state.Winner == core.WinnerPlayer {
			msg = "YOU WIN"
		}
		g.overlayBox(dst, msg, "press r to play again")
	case g.overlayTicks > 0:
		g.overlayBox(dst, fmt.Sprintf("LEVEL %d", g.state.Level), "hit a shape to resume the duel")
	case g.state.Paused:
		dst.DrawTextCentered(cy, "PAUSED")
	case !g.started:
		dst.DrawTextCentered(cy+6, "tap a shape to begin")
	}
}

func (g *Game) overlayBox(dst *core.Screen, title, sub string) {
	w := core.Max(len(title), len(sub)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := dst.Height()/2 - h/2

	dst.FillRect(x, y, w, h, ' ')
	dst.DrawBox(x, y, w, h)
	dst.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(x+(w-len(sub))/2, y+3, sub, core.ColorGray)
}
