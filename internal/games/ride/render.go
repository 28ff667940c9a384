package ride

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hillrider/internal/core"
	"github.com/vovakirdan/hillrider/internal/rider"
)

// Visual characters for rendering
const (
	fullBlock  = '█'
	lowerBlock = '▄'
	riderChar  = '█'
	headChar   = 'o'
)

// viewport maps world pixels onto screen cells. Each cell row holds two
// half-block terrain samples.
type viewport struct {
	cols, rows int
	cellW      float64 // World pixels per column
	cellH      float64 // World pixels per row
}

func newViewport(p rider.Params, cols, rows int) viewport {
	return viewport{
		cols:  cols,
		rows:  rows,
		cellW: p.ScreenWidth / float64(cols),
		cellH: p.ScreenHeight / float64(rows),
	}
}

// cell returns the screen cell containing world point v.
func (vp viewport) cell(v core.Vec) (int, int) {
	return int(math.Floor(v.X / vp.cellW)), int(math.Floor(v.Y / vp.cellH))
}

// Render draws terrain, rider, HUD and the crash overlay.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := newViewport(g.params, dst.Width(), dst.Height())

	g.renderTerrain(dst, vp)
	g.renderRider(dst, vp)
	g.renderHUD(dst)

	if g.sim.IsOver() {
		g.renderCrash(dst)
	}
}

// renderTerrain fills every column from the surface down, at half-cell
// resolution.
func (g *Game) renderTerrain(dst *core.Screen, vp viewport) {
	half := vp.cellH / 2

	for cx := 0; cx < vp.cols; cx++ {
		x := (float64(cx) + 0.5) * vp.cellW
		surface := int(math.Floor(g.sim.GroundY(x) / half)) // First half-row under ground

		top := surface / 2
		ridge := fullBlock
		if surface%2 == 1 {
			ridge = lowerBlock
		}
		dst.SetColored(cx, top, ridge, core.ColorRidge)

		for cy := top + 1; cy < vp.rows; cy++ {
			dst.SetColored(cx, cy, fullBlock, core.ColorTerrain)
		}
	}
}

// renderRider draws the board as a rotated segment along the sprite's
// bottom edge and marks the head above its center.
func (g *Game) renderRider(dst *core.Screen, vp viewport) {
	p := g.sim.Player()
	w, h := g.params.PlayerWidth, g.params.PlayerHeight
	center := core.Vec{X: p.X + w/2, Y: p.Y + h/2}

	color := core.ColorRider
	if !g.sim.IsPlaying() {
		color = core.ColorWreck
	}

	tail := center.Add(core.Vec{X: -w / 2, Y: h / 2}.Rotate(p.Rot))
	nose := center.Add(core.Vec{X: w / 2, Y: h / 2}.Rotate(p.Rot))
	steps := int(math.Ceil(w/vp.cellW)) * 2
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		pt := core.Vec{X: tail.X + (nose.X-tail.X)*f, Y: tail.Y + (nose.Y-tail.Y)*f}
		cx, cy := vp.cell(pt)
		dst.SetColored(cx, cy, riderChar, color)
	}

	head := center.Add(core.Vec{X: 0, Y: -h / 2}.Rotate(p.Rot))
	hx, hy := vp.cell(head)
	dst.SetColored(hx, hy, headChar, core.ColorHead)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextRight(0, 1, fmt.Sprintf("%10d", g.sim.Score()), core.ColorHUD)

	label := g.Title()
	if g.mode == ModeDaily {
		label = fmt.Sprintf("%s #%d", label, g.seed)
	}
	dst.DrawTextColored(1, 0, label, core.ColorGray)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorHUD)
	}
}

// renderCrash tints the whole scene red and boxes the final score.
func (g *Game) renderCrash(dst *core.Screen) {
	dst.Tint(dst.Bounds(), core.ColorCrash)

	lines := []string{
		"WIPEOUT",
		fmt.Sprintf("Score: %d", g.sim.Score()),
		"R/Space: ride again",
		"B: menu  Q: quit",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	box := dst.Bounds().Centered(width+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWreck)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorHUD)
	}
}
