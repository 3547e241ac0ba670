package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"thunderstrike/game"
)

// debugState holds overlay toggles. It lives outside the session so it
// survives restarts.
type debugState struct {
	showHitboxes bool // F1
	showStats    bool // F2
}

func (d *debugState) update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.showHitboxes = !d.showHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		d.showStats = !d.showStats
	}
}

func (d *debugState) draw(dst *ebiten.Image, w *game.World, level int, arenaW, arenaH float64) {
	if d.showHitboxes {
		strokeRect(dst, w.Player.X, w.Player.Y, w.Player.Width, w.Player.Height, colorShieldOK)
		for _, e := range w.Enemies {
			strokeRect(dst, e.X, e.Y, e.Width, e.Height, colorMissile)
		}
		for _, b := range w.Bullets {
			strokeRect(dst, b.X, b.Y, b.Width, b.Height, colorText)
		}
	}
	if d.showStats {
		stats := fmt.Sprintf("FPS %.0f  TPS %.0f  frame %d  level %d\nenemies %d  bullets %d  particles %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), w.Frame, level,
			len(w.Enemies), len(w.Bullets), len(w.Particles))
		drawText(dst, stats, arenaW-hudMargin, arenaH-40, 1, colorTextDim, text.AlignEnd)
	}
}
