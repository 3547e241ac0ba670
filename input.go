package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"thunderstrike/game"
)

// readKeys samples the held gameplay keys. Arrows and WASD steer, Space
// fires missiles; the main gun needs no key.
func readKeys() game.Keys {
	var keys game.Keys
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		keys = keys.With(game.KeyUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		keys = keys.With(game.KeyDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		keys = keys.With(game.KeyLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		keys = keys.With(game.KeyRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		keys = keys.With(game.KeyMissile)
	}
	return keys
}

func altHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

// startPressed reports a fresh press of Enter or R. Alt+Enter is reserved
// for fullscreen.
func startPressed() bool {
	if altHeld() {
		return false
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// handleWindowKeys toggles fullscreen on Alt+Enter
func handleWindowKeys() {
	if altHeld() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
