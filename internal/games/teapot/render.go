package teapot

import (
	"fmt"

	"github.com/jfuerth/carnivorous-teapot/internal/core"
)

// Render implements registry.Game. The playfield is centered on whatever
// screen the platform hands over; drawing reads the frames chosen by the
// last Step and never advances animation clocks, so redraws are free.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.st == nil {
		return
	}
	st := g.st

	ox := (dst.Width() - int(st.cfg.Playfield.Width)) / 2
	oy := (dst.Height() - int(st.cfg.Playfield.Height)) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	st.background.Each(func(e *Entity) { blit(dst, e, ox, oy) })
	st.foreground.Each(func(e *Entity) { blit(dst, e, ox, oy) })

	g.renderHUD(dst, ox, oy)
}

// blit draws the entity's current frame at its playfield position. Spaces
// are transparent so overlapping sprites layer instead of punching holes.
func blit(dst *core.Screen, e *Entity, ox, oy int) {
	f, ok := e.CurrentFrame()
	if !ok {
		return
	}
	color := e.Kind.color()
	x0 := ox + int(e.X)
	y0 := oy + int(e.Y)
	for row, line := range f {
		for col, r := range line {
			if r == ' ' {
				continue
			}
			dst.SetColored(x0+col, y0+row, r, color)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, ox, oy int) {
	st := g.st
	y := oy
	if y < 0 {
		y = 0
	}

	switch st.phase {
	case PhaseRunning, PhaseGameOver:
		left := fmt.Sprintf(" SCORE %06d ", st.score)
		right := fmt.Sprintf(" KNIVES %d  HIGH %06d ", st.ammo, st.highScore)
		dst.DrawTextColored(ox, y, left, core.ColorBrightWhite)
		dst.DrawTextColored(ox+int(st.cfg.Playfield.Width)-len(right), y, right, core.ColorBrightWhite)

	case PhaseAttract:
		dst.DrawTextColored(ox, y, fmt.Sprintf(" HIGH %06d ", st.highScore), core.ColorBrightWhite)
		if st.startRequested && (g.lib == nil || !g.lib.AllReady(requiredSheets...)) {
			dst.DrawTextCentered(y, "loading...")
		}
	}
}
