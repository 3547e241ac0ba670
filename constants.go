package main

import (
	"image/color"

	"thunderstrike/game"
)

// Palette
var (
	colorBackground   = color.NRGBA{R: 2, G: 6, B: 23, A: 255}
	colorPlayer       = color.NRGBA{R: 14, G: 165, B: 233, A: 255}
	colorCockpit      = color.NRGBA{R: 226, G: 232, B: 240, A: 255}
	colorEngine       = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
	colorPlayerBullet = color.NRGBA{R: 56, G: 189, B: 248, A: 255}
	colorMissile      = color.NRGBA{R: 250, G: 204, B: 21, A: 255}
	colorDrone        = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	colorFighter      = color.NRGBA{R: 249, G: 115, B: 22, A: 255}
	colorBomber       = color.NRGBA{R: 168, G: 85, B: 247, A: 255}
	colorBomberCore   = color.NRGBA{R: 88, G: 28, B: 135, A: 255}
	colorBoss         = color.NRGBA{R: 220, G: 38, B: 38, A: 255}
	colorBossHull     = color.NRGBA{R: 69, G: 10, B: 10, A: 255}
	colorBossCore     = color.NRGBA{R: 254, G: 202, B: 202, A: 255}
	colorEnemyBullet  = color.NRGBA{R: 252, G: 165, B: 165, A: 255}
	colorBossBullet   = color.NRGBA{R: 248, G: 113, B: 113, A: 255}
	colorExplosion    = color.NRGBA{R: 251, G: 191, B: 36, A: 255}
	colorBarTrack     = color.NRGBA{R: 51, G: 65, B: 85, A: 255}
	colorShieldOK     = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	colorShieldLow    = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	colorBanner       = color.NRGBA{R: 254, G: 240, B: 138, A: 255}
	colorOverlay      = color.NRGBA{R: 2, G: 6, B: 23, A: 200}
	colorText         = color.White
	colorTextDim      = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
)

// HUD layout
const (
	hudMargin        = 20.0
	hudScoreY        = 16.0
	shieldBarY       = 45.0
	shieldBarWidth   = 200.0
	shieldBarHeight  = 15.0
	shieldLowRatio   = 0.3
	bossBarY         = 80.0
	bossBarHeight    = 20.0
	barStroke        = 2.0
	textScale        = 2.0
	titleScale       = 4.0
	lineSpacing      = 16.0
	slowStepFraction = 0.5 // of a frame budget before a capture is requested
)

func enemyColor(kind game.EnemyKind) color.Color {
	switch kind {
	case game.EnemyFighter:
		return colorFighter
	case game.EnemyBomber:
		return colorBomber
	case game.EnemyBoss:
		return colorBoss
	default:
		return colorDrone
	}
}

func tintColor(t game.Tint) color.Color {
	switch t {
	case game.TintPlayer:
		return colorPlayer
	case game.TintDrone:
		return colorDrone
	case game.TintFighter:
		return colorFighter
	case game.TintBomber:
		return colorBomber
	case game.TintBoss:
		return colorBoss
	default:
		return colorExplosion
	}
}

func bulletColor(kind game.BulletKind) color.Color {
	switch kind {
	case game.BulletPlayerMissile:
		return colorMissile
	case game.BulletEnemyNormal:
		return colorEnemyBullet
	case game.BulletBossMain, game.BulletBossSpread:
		return colorBossBullet
	default:
		return colorPlayerBullet
	}
}
