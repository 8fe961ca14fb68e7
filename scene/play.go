// Package scene runs the play scene: it builds the world from a level,
// steps the systems once per frame and routes player actions.
package scene

import (
	"fmt"
	"log"

	"github.com/milk9111/notmario/assets"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/system"
	"github.com/milk9111/notmario/level"
	"github.com/milk9111/notmario/prefabs"
)

type Play struct {
	level   *level.Level
	catalog *assets.Catalog
	cfg     prefabs.GameSpec

	// running only advances while unpaused; always runs every frame.
	running *ecs.Scheduler
	always  *ecs.Scheduler

	world  *ecs.World
	player ecs.Entity
	weapon component.AnimationDef
	frame  int
	resets int

	paused bool
	ended  bool
	debug  DebugFlags
}

func NewPlay(lvl *level.Level, catalog *assets.Catalog, cfg prefabs.GameSpec) (*Play, error) {
	if lvl == nil || catalog == nil {
		return nil, fmt.Errorf("scene: level and catalog are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	animation, err := system.NewAnimationSystem(catalog)
	if err != nil {
		return nil, err
	}
	collision, err := system.NewCollisionSystem(catalog, system.CollisionConfig{
		LevelHeight:    cfg.LevelHeight(),
		BounceVelocity: cfg.BounceVelocity,
		CoinOffset:     cfg.CoinOffset,
	})
	if err != nil {
		return nil, err
	}

	p := &Play{
		level:   lvl,
		catalog: catalog,
		cfg:     cfg,
		running: ecs.NewScheduler(
			system.NewMovementSystem(),
			system.NewLifespanSystem(),
			animation,
		),
		always: ecs.NewScheduler(collision),
		debug:  DebugFlags{Textures: true},
	}
	if err := p.Reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// Update simulates one frame. Collision runs even while paused. A reset
// requested during the frame rebuilds the world instead of sweeping it.
func (p *Play) Update() error {
	if p.ended {
		return nil
	}

	p.frame++
	f := &ecs.Frame{Number: p.frame, Player: p.player}
	if !p.paused {
		p.running.Update(p.world, f)
	}
	p.always.Update(p.world, f)

	if f.ResetRequested() {
		log.Printf("scene: %s at frame %d, restarting %s", f.ResetReason(), p.frame, p.level.Name)
		return p.Reset()
	}

	p.world.Sweep()
	return nil
}

// Reset throws the world away and replays the level. The current world is
// kept when the level fails to load.
func (p *Play) Reset() error {
	ld := newLoader(p.catalog, p.cfg)
	if err := p.level.Replay(ld); err != nil {
		return fmt.Errorf("scene: load %s: %w", p.level.Name, err)
	}
	if !p.level.HasPlayer() {
		if err := ld.SpawnPlayer(p.cfg.Player); err != nil {
			return fmt.Errorf("scene: default player: %w", err)
		}
	}

	p.world = ld.world
	p.player = ld.player
	p.weapon = ld.weapon
	p.frame = 0
	p.paused = false
	p.resets++
	return nil
}

// Reload switches to lvl. The old level stays active if lvl fails to load.
func (p *Play) Reload(lvl *level.Level) error {
	if lvl == nil {
		return fmt.Errorf("scene: nil level")
	}
	prev := p.level
	p.level = lvl
	if err := p.Reset(); err != nil {
		p.level = prev
		return err
	}
	log.Printf("scene: loaded %s (%d entities)", lvl.Name, p.world.Len())
	return nil
}

func (p *Play) World() *ecs.World        { return p.world }
func (p *Play) Player() ecs.Entity       { return p.player }
func (p *Play) Frame() int               { return p.frame }
func (p *Play) Paused() bool             { return p.paused }
func (p *Play) Ended() bool              { return p.ended }
func (p *Play) Debug() DebugFlags        { return p.debug }
func (p *Play) Level() *level.Level      { return p.level }
func (p *Play) Catalog() *assets.Catalog { return p.catalog }
func (p *Play) Config() prefabs.GameSpec { return p.cfg }

// Resets counts how many times the world was built, the first load
// included.
func (p *Play) Resets() int { return p.resets }
