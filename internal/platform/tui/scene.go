package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/copybird/internal/core"
	"github.com/vovakirdan/copybird/internal/game"
	"github.com/vovakirdan/copybird/internal/theme"
)

// particleFade is how far a particle blends into the sky at the bottom of the screen.
const particleFade = 0.6

// scene draws one frame of the world into a screen buffer.
type scene struct {
	dst    *core.Screen
	vp     Viewport
	engine *game.Engine
	state  *game.State
	theme  theme.Theme
}

// hud carries the adapter-owned text shown over the world.
type hud struct {
	Best   int
	Status string
	Debug  bool
}

func (sc scene) draw(h hud) {
	sc.drawObstacles()
	sc.drawGround()
	sc.drawParticles()
	sc.drawPlayer()
	if h.Debug {
		sc.drawHitBoxes()
	}
	sc.drawHUD(h)
}

func (sc scene) drawObstacles() {
	th := sc.theme
	for _, obst := range sc.state.Obstacles {
		top, bottom := sc.engine.ObstacleRects(obst)

		if x, y, w, h, ok := sc.vp.RectCells(top); ok {
			sc.dst.FillRect(x, y, w, h, th.Pipe, th.PipeColor)
			sc.dst.DrawHLine(x, y+h-1, w, th.PipeCap, th.PipeCapColor)
		}
		if x, y, w, h, ok := sc.vp.RectCells(bottom); ok {
			sc.dst.FillRect(x, y, w, h, th.Pipe, th.PipeColor)
			sc.dst.DrawHLine(x, y, w, th.PipeCap, th.PipeCapColor)
		}
	}
}

// drawGround paints the scrolling strip along the bottom row.
func (sc scene) drawGround() {
	pattern := []rune(sc.theme.Ground)
	if len(pattern) == 0 || sc.vp.Rows == 0 {
		return
	}

	shift := int(sc.state.ScrollX / sc.vp.ScaleX)
	y := sc.vp.OffsetY + sc.vp.Rows - 1
	for col := 0; col < sc.vp.Cols; col++ {
		r := pattern[(col+shift)%len(pattern)]
		sc.dst.SetCell(sc.vp.OffsetX+col, y, r, sc.theme.GroundColor)
	}
}

func (sc scene) drawParticles() {
	height := sc.engine.Config().Screen.Height
	for _, p := range sc.state.Particles {
		x, y := sc.vp.Cell(p.Pos)
		if !sc.vp.Visible(x, y) {
			continue
		}
		fade := core.ClampF(p.Pos.Y/height, 0, 1) * particleFade
		sc.dst.SetCell(x, y, sc.theme.Particle, particleColor(p.Tint, sc.theme.SkyColor, fade))
	}
}

// particleColor blends a particle tint towards the sky by fade in [0, 1].
func particleColor(tint color.RGBA, sky core.Color, fade float64) core.Color {
	c, ok := colorful.MakeColor(tint)
	if !ok {
		return core.ColorDefault
	}
	if bg, err := colorful.Hex(string(sky)); err == nil && fade > 0 {
		c = c.BlendLab(bg, fade).Clamped()
	}
	return core.Color(c.Hex())
}

func (sc scene) drawPlayer() {
	s := sc.state
	rows := sc.theme.Sprite(s.PlayerAnimation.Frame())
	colour := sc.theme.PlayerColor
	if !s.Alive {
		colour = sc.theme.DeadColor
		if upsideDown(s.PlayerRotation) {
			rows = flip(rows)
		}
	}

	x, y, _, _, ok := sc.vp.RectCells(sc.engine.PlayerRect(s))
	if !ok {
		return
	}
	for dy, row := range rows {
		dx := 0
		for _, r := range row {
			if r != ' ' && sc.vp.Visible(x+dx, y+dy) {
				sc.dst.SetCell(x+dx, y+dy, r, colour)
			}
			dx++
		}
	}
}

// upsideDown reports whether a sprite turned by deg degrees reads better flipped.
func upsideDown(deg float64) bool {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a >= 90 && a < 270
}

// flip turns sprite art upside down.
func flip(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		runes := []rune(row)
		for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
			runes[l], runes[r] = runes[r], runes[l]
		}
		out[len(rows)-1-i] = string(runes)
	}
	return out
}

// drawHitBoxes outlines every collision rectangle. The player box turns red
// while it overlaps something.
func (sc scene) drawHitBoxes() {
	for _, r := range sc.engine.HitRects(sc.state) {
		if x, y, w, h, ok := sc.vp.RectCells(r); ok {
			sc.dst.DrawBox(x, y, w, h, core.ColorDebugOK)
		}
	}

	colour := core.ColorDebugOK
	if sc.engine.Colliding(sc.state) {
		colour = core.ColorDebugHit
	}
	if x, y, w, h, ok := sc.vp.RectCells(sc.engine.PlayerRect(sc.state)); ok {
		sc.dst.DrawBox(x, y, w, h, colour)
	}
}

func (sc scene) drawHUD(h hud) {
	s := sc.state
	cfg := sc.engine.Config()
	midX, _ := sc.vp.Cell(core.Vec(cfg.Screen.Width/2, 0))

	// Score sits just below the top of the world, difficulty in the
	// bottom-right corner.
	_, scoreY := sc.vp.Cell(core.Vec(0, 60))
	sc.dst.DrawTextCentered(midX, scoreY, fmt.Sprint(s.Score), core.ColorScore)

	right, bottom := sc.vp.Cell(core.Vec(cfg.Screen.Width-10, cfg.Screen.Height-10))
	sc.dst.DrawTextRight(right, bottom, string(s.Difficulty), core.ColorLabel)

	if h.Best > 0 {
		sc.dst.DrawText(sc.vp.OffsetX+1, sc.vp.OffsetY, fmt.Sprintf("best %d", h.Best), core.ColorLabel)
	}

	midY := sc.vp.OffsetY + sc.vp.Rows/2
	switch s.Phase() {
	case game.PhaseWaiting:
		sc.dst.DrawTextCentered(midX, midY, "press space to flap", core.ColorStatus)
	case game.PhaseDead:
		msg := fmt.Sprintf("restart in %.1fs", math.Max(s.RestartTimer.Remaining, 0))
		sc.dst.DrawTextCentered(midX, midY, msg, core.ColorDead)
	}

	if h.Status != "" {
		sc.dst.DrawTextCentered(midX, midY+2, h.Status, core.ColorStatus)
	}
}
