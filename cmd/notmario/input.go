package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/notmario/scene"
)

type binding struct {
	key    ebiten.Key
	action string
}

var bindings = []binding{
	{ebiten.KeyEscape, scene.ActionQuit},
	{ebiten.KeyP, scene.ActionPause},
	{ebiten.KeyT, scene.ActionToggleTexture},
	{ebiten.KeyC, scene.ActionToggleCollision},
	{ebiten.KeyG, scene.ActionToggleGrid},
	{ebiten.KeyD, scene.ActionRight},
	{ebiten.KeyA, scene.ActionLeft},
	{ebiten.KeyW, scene.ActionJump},
	{ebiten.KeySpace, scene.ActionShoot},
}

func justPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func justReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}
