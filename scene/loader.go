package scene

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/assets"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/entity"
	"github.com/milk9111/notmario/prefabs"
)

var ErrDuplicatePlayer = errors.New("scene: level spawns more than one player")

// GridToPixel returns the center of an entity of the given pixel size whose
// bottom-left corner sits on grid cell (gx, gy). Grid y grows upwards from
// the bottom of the level, pixel y grows downwards.
func GridToPixel(gx, gy float64, size cp.Vector, grid, levelHeight float64) cp.Vector {
	return cp.Vector{
		X: gx*grid + size.X/2,
		Y: levelHeight - gy*grid - size.Y/2,
	}
}

// loader builds a fresh world from spawn requests.
type loader struct {
	world   *ecs.World
	catalog *assets.Catalog
	cfg     prefabs.GameSpec
	enemies map[string]prefabs.EnemySpec

	player ecs.Entity
	weapon component.AnimationDef
}

func newLoader(catalog *assets.Catalog, cfg prefabs.GameSpec) *loader {
	return &loader{
		world:   ecs.NewWorld(),
		catalog: catalog,
		cfg:     cfg,
		enemies: map[string]prefabs.EnemySpec{},
	}
}

func (l *loader) at(gx, gy float64, size cp.Vector) cp.Vector {
	return GridToPixel(gx, gy, size, l.cfg.GridSize, l.cfg.LevelHeight())
}

func (l *loader) SpawnTile(name string, gx, gy float64) error {
	def, err := l.catalog.Get(name)
	if err != nil {
		return err
	}
	_, err = entity.NewTile(l.world, def, l.at(gx, gy, def.Size()))
	return err
}

func (l *loader) SpawnDecoration(name string, gx, gy float64) error {
	def, err := l.catalog.Get(name)
	if err != nil {
		return err
	}
	_, err = entity.NewDecoration(l.world, def, l.at(gx, gy, def.Size()))
	return err
}

func (l *loader) SpawnPlayer(cfg prefabs.PlayerSpec) error {
	if l.player.Valid() {
		return ErrDuplicatePlayer
	}
	stand, err := l.catalog.Get("Stand")
	if err != nil {
		return err
	}
	weapon, err := l.catalog.Get(cfg.Weapon)
	if err != nil {
		return fmt.Errorf("weapon: %w", err)
	}
	player, err := entity.NewPlayer(l.world, stand, l.at(cfg.X, cfg.Y, stand.Size()), cfg)
	if err != nil {
		return err
	}
	l.player = player
	l.weapon = weapon
	return nil
}

func (l *loader) ConfigureEnemy(kind string, cfg prefabs.EnemySpec) error {
	l.enemies[kind] = cfg
	return nil
}

func (l *loader) SpawnEnemy(kind string, gx, gy float64) error {
	def, err := l.catalog.Get(kind)
	if err != nil {
		return err
	}
	_, err = entity.NewEnemy(l.world, def, l.at(gx, gy, def.Size()), l.enemyConfig(kind))
	return err
}

// enemyConfig falls back to the Goomba tuning, then to the game defaults.
func (l *loader) enemyConfig(kind string) prefabs.EnemySpec {
	if cfg, ok := l.enemies[kind]; ok {
		return cfg
	}
	if cfg, ok := l.enemies["Goomba"]; ok {
		return cfg
	}
	return l.cfg.Goomba
}
