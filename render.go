package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"thunderstrike/game"
)

// fade scales a color's alpha by a in [0,1]
func fade(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * min(1, max(0, a)))
	return n
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), barStroke, clr, false)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.FillCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// drawWorld renders the arena back to front: stars, particles, enemies,
// bullets, then the player
func drawWorld(dst *ebiten.Image, w *game.World, showPlayer bool) {
	dst.Fill(colorBackground)

	for _, s := range w.Stars {
		fillCircle(dst, s.X, s.Y, s.Size, fade(color.White, s.Brightness))
	}
	for _, p := range w.Particles {
		fillCircle(dst, p.X, p.Y, p.Size, fade(tintColor(p.Tint), p.Life))
	}
	for _, e := range w.Enemies {
		drawEnemy(dst, e)
	}
	for _, b := range w.Bullets {
		drawBullet(dst, b)
	}
	if showPlayer {
		drawPlayer(dst, &w.Player)
	}
}

func drawPlayer(dst *ebiten.Image, p *game.Player) {
	cx, cy := p.Center()

	// Wings, hull, engines, cockpit
	fillRect(dst, p.X, cy, p.Width, p.Height*0.25, colorPlayer)
	fillRect(dst, cx-p.Width*0.15, p.Y, p.Width*0.3, p.Height, colorPlayer)
	fillRect(dst, p.X+2, p.Y+p.Height-15, 6, 12, colorEngine)
	fillRect(dst, p.X+p.Width-8, p.Y+p.Height-15, 6, 12, colorEngine)
	fillCircle(dst, cx, p.Y+p.Height*0.3, p.Width*0.1, colorCockpit)
}

func drawEnemy(dst *ebiten.Image, e *game.Enemy) {
	cx, cy := e.Center()
	clr := enemyColor(e.Kind())

	switch e.Kind() {
	case game.EnemyFighter:
		fillRect(dst, e.X, e.Y, e.Width, e.Height*0.4, clr)
		fillRect(dst, cx-e.Width*0.2, e.Y, e.Width*0.4, e.Height, clr)
		fillRect(dst, cx-2, cy-e.Height/4, 4, e.Height/2, colorBoss)
	case game.EnemyBomber:
		fillCircle(dst, cx, cy, e.Width/2, clr)
		fillCircle(dst, cx, cy, e.Width*0.3, colorBomberCore)
	case game.EnemyBoss:
		fillRect(dst, e.X, e.Y, e.Width, e.Height*0.7, colorBossHull)
		fillRect(dst, e.X+e.Width*0.2, e.Y+e.Height*0.7, e.Width*0.6, e.Height*0.3, colorBossHull)
		fillCircle(dst, cx, cy-10, 20, clr)
		fillCircle(dst, cx, cy-10, 10, colorBossCore)
	default:
		fillCircle(dst, cx, cy, e.Width/2, clr)
		fillCircle(dst, cx, cy, 4, color.White)
	}
}

func drawBullet(dst *ebiten.Image, b *game.Bullet) {
	clr := bulletColor(b.Kind)
	cx, cy := b.Center()

	switch b.Kind {
	case game.BulletPlayerMain:
		fillRect(dst, b.X, b.Y, b.Width, b.Height, clr)
		fillRect(dst, b.X+1, b.Y+2, b.Width-2, b.Height-4, color.White)
	case game.BulletPlayerMissile:
		fillRect(dst, b.X, b.Y, b.Width, b.Height, clr)
		fillCircle(dst, cx, b.Y+b.Height+5, 2, fade(color.White, 0.5))
	case game.BulletBossMain:
		fillCircle(dst, cx, cy, b.Width/2, clr)
		fillCircle(dst, cx, cy, b.Width/3, color.White)
	default:
		fillCircle(dst, cx, cy, b.Width/2, clr)
	}
}
