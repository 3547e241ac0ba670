package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"thunderstrike/game"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.LineSpacing = lineSpacing
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// drawHUD draws score, shield, the boss bar while the boss lives, and the
// banner message
func drawHUD(dst *ebiten.Image, w *game.World, arenaW, arenaH float64) {
	p := &w.Player
	drawText(dst, fmt.Sprintf("SCORE: %d", p.Score), hudMargin, hudScoreY, textScale, colorText, text.AlignStart)

	ratio := max(0, p.HP/p.MaxHP)
	bar := colorShieldOK
	if ratio <= shieldLowRatio {
		bar = colorShieldLow
	}
	fillRect(dst, hudMargin, shieldBarY, shieldBarWidth, shieldBarHeight, colorBarTrack)
	fillRect(dst, hudMargin, shieldBarY, shieldBarWidth*ratio, shieldBarHeight, bar)
	strokeRect(dst, hudMargin, shieldBarY, shieldBarWidth, shieldBarHeight, colorText)
	drawText(dst, "SHIELD", hudMargin+shieldBarWidth+10, shieldBarY+1, 1, colorText, text.AlignStart)

	if boss := w.Boss(); boss != nil && boss.Alive() {
		width := arenaW - 2*hudMargin
		fillRect(dst, hudMargin, bossBarY, width, bossBarHeight, colorBarTrack)
		fillRect(dst, hudMargin, bossBarY, width*max(0, boss.HP/boss.MaxHP), bossBarHeight, colorBoss)
		strokeRect(dst, hudMargin, bossBarY, width, bossBarHeight, colorEnemyBullet)
		drawText(dst, "WARNING: GIANT BATTLESHIP DETECTED", arenaW/2, bossBarY-16, 1, colorText, text.AlignCenter)
	}

	if w.Message != nil {
		drawText(dst, w.Message.Text, arenaW/2, arenaH/2-26, titleScale, colorBanner, text.AlignCenter)
	}
}

func drawOverlay(dst *ebiten.Image, arenaW, arenaH float64) {
	fillRect(dst, 0, 0, arenaW, arenaH, colorOverlay)
}

func drawMenu(dst *ebiten.Image, highScore int, arenaW, arenaH float64) {
	drawOverlay(dst, arenaW, arenaH)
	mid := arenaW / 2
	drawText(dst, "THUNDER STRIKE", mid, arenaH/3, titleScale, colorPlayer, text.AlignCenter)
	drawText(dst, "ARROWS / WASD  move", mid, arenaH/2, 1.5, colorTextDim, text.AlignCenter)
	drawText(dst, "SPACE  missiles", mid, arenaH/2+24, 1.5, colorTextDim, text.AlignCenter)
	drawText(dst, "press ENTER to launch", mid, arenaH/2+80, textScale, colorText, text.AlignCenter)
	if highScore > 0 {
		drawText(dst, fmt.Sprintf("HIGH SCORE %d", highScore), mid, arenaH/2+130, 1.5, colorMissile, text.AlignCenter)
	}
}

func drawGameOver(dst *ebiten.Image, score, highScore int, arenaW, arenaH float64) {
	drawOverlay(dst, arenaW, arenaH)
	mid := arenaW / 2
	drawText(dst, "MISSION FAILED", mid, arenaH/3, titleScale, colorDrone, text.AlignCenter)
	drawText(dst, fmt.Sprintf("SCORE %d", score), mid, arenaH/2, textScale, colorText, text.AlignCenter)
	drawText(dst, fmt.Sprintf("HIGH SCORE %d", max(score, highScore)), mid, arenaH/2+36, textScale, colorMissile, text.AlignCenter)
	drawText(dst, "press ENTER or R to retry", mid, arenaH/2+100, 1.5, colorTextDim, text.AlignCenter)
}

func drawVictory(dst *ebiten.Image, score, highScore int, arenaW, arenaH float64) {
	drawOverlay(dst, arenaW, arenaH)
	mid := arenaW / 2
	drawText(dst, "VICTORY", mid, arenaH/3, titleScale, colorBanner, text.AlignCenter)
	drawText(dst, "the battleship is down", mid, arenaH/3+60, 1.5, colorTextDim, text.AlignCenter)
	drawText(dst, fmt.Sprintf("SCORE %d", score), mid, arenaH/2, textScale, colorText, text.AlignCenter)
	drawText(dst, fmt.Sprintf("HIGH SCORE %d", highScore), mid, arenaH/2+36, textScale, colorMissile, text.AlignCenter)
	drawText(dst, "press ENTER or R to fly again", mid, arenaH/2+100, 1.5, colorTextDim, text.AlignCenter)
}
