package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/notmario/assets"
	"github.com/milk9111/notmario/level"
	"github.com/milk9111/notmario/prefabs"
	"github.com/milk9111/notmario/scene"
)

type Game struct {
	play      *scene.Play
	levelName string
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
}

func NewGame(play *scene.Play, levelName string) *Game {
	return &Game{play: play, levelName: levelName}
}

func (g *Game) Update() error {
	g.reload()

	for _, b := range bindings {
		if justPressed(b.key) {
			g.play.DoAction(scene.Start(b.action))
		}
		if justReleased(b.key) {
			g.play.DoAction(scene.End(b.action))
		}
	}

	if g.play.Paused() {
		g.pauseMenu().Update()
	}

	if g.play.Ended() {
		return ebiten.Termination
	}
	return g.play.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.play)
	if g.play.Paused() {
		g.pauseMenu().Draw(screen)
	}
}

// pauseMenu builds the pause panel on first use.
func (g *Game) pauseMenu() *ebitenui.UI {
	if g.pauseUI == nil {
		cfg := g.play.Config()
		g.pauseUI = NewPauseUI(g, cfg.Width, cfg.Height)
	}
	return g.pauseUI
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.play.Config()
	return cfg.Width, cfg.Height
}

// reload applies pending file changes. A broken edit is logged and the
// running scene is kept.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadFile(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadFile(path string) {
	switch {
	case prefabs.IsSpecFile(path):
		cfg, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		catalog, err := assets.LoadCatalog()
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		play, err := scene.NewPlay(g.play.Level(), catalog, *cfg)
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		g.play = play
		log.Printf("reloaded %s", path)
	case prefabs.IsLevelFile(path):
		if filepath.Base(path) != filepath.Base(g.levelName) {
			return
		}
		lvl, err := level.Open(context.Background(), g.levelName)
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		if err := g.play.Reload(lvl); err != nil {
			log.Printf("reload %s: %v", path, err)
		}
	}
}
