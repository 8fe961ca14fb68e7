package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/notmario/assets"
	"github.com/milk9111/notmario/level"
	"github.com/milk9111/notmario/levels"
	"github.com/milk9111/notmario/prefabs"
	"github.com/milk9111/notmario/scene"
	"github.com/pkg/profile"
)

func main() {
	levelName := flag.String("level", levels.Default, "level file in levels/ (.txt or .tengo)")
	debug := flag.Bool("debug", false, "start with collision boxes and grid drawn")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ when they change on disk")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if err := run(*levelName, *debug, *watch, *profileMode); err != nil {
		log.Fatal(err)
	}
}

func run(levelName string, debug, watch bool, profileMode string) error {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	cfg, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	catalog, err := assets.LoadCatalog()
	if err != nil {
		return err
	}
	lvl, err := level.Open(context.Background(), levelName)
	if err != nil {
		return err
	}
	play, err := scene.NewPlay(lvl, catalog, *cfg)
	if err != nil {
		return err
	}
	if debug {
		play.DoAction(scene.Start(scene.ActionToggleCollision))
		play.DoAction(scene.Start(scene.ActionToggleGrid))
	}

	game := NewGame(play, levelName)
	if watch {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(game)
}
