// Package level describes a play scene as an ordered list of spawn requests
// and reads it from level files or scripts.
package level

import (
	"errors"
	"fmt"

	"github.com/milk9111/notmario/prefabs"
)

var (
	ErrUnknownDirective = errors.New("level: unknown directive")
	ErrSyntax           = errors.New("level: syntax error")
)

type Op uint8

const (
	OpTile Op = iota + 1
	OpDecoration
	OpPlayer
	OpEnemyConfig
	OpEnemy
)

func (o Op) String() string {
	switch o {
	case OpTile:
		return "Tile"
	case OpDecoration:
		return "Dec"
	case OpPlayer:
		return "Player"
	case OpEnemyConfig:
		return "EnemyConfig"
	case OpEnemy:
		return "Enemy"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Request is one spawn request. Name is the animation for tiles and
// decorations and the enemy kind for enemies and enemy configs.
type Request struct {
	Op     Op
	Name   string
	GX, GY float64
	Player prefabs.PlayerSpec
	Enemy  prefabs.EnemySpec
	// Line is the source line, zero when unknown.
	Line int
}

// Spawner turns spawn requests into entities.
type Spawner interface {
	SpawnTile(name string, gx, gy float64) error
	SpawnDecoration(name string, gx, gy float64) error
	SpawnPlayer(cfg prefabs.PlayerSpec) error
	ConfigureEnemy(kind string, cfg prefabs.EnemySpec) error
	SpawnEnemy(kind string, gx, gy float64) error
}

type Level struct {
	Name     string
	Requests []Request
}

// Replay hands every request to s in order and stops at the first failure.
func (l *Level) Replay(s Spawner) error {
	if l == nil {
		return fmt.Errorf("level: nil level")
	}
	for _, r := range l.Requests {
		if err := r.apply(s); err != nil {
			if r.Line > 0 {
				return fmt.Errorf("level %s: line %d: %s: %w", l.Name, r.Line, r.Op, err)
			}
			return fmt.Errorf("level %s: %s: %w", l.Name, r.Op, err)
		}
	}
	return nil
}

// HasPlayer reports whether the level spawns a player.
func (l *Level) HasPlayer() bool {
	for _, r := range l.Requests {
		if r.Op == OpPlayer {
			return true
		}
	}
	return false
}

func (r Request) apply(s Spawner) error {
	switch r.Op {
	case OpTile:
		return s.SpawnTile(r.Name, r.GX, r.GY)
	case OpDecoration:
		return s.SpawnDecoration(r.Name, r.GX, r.GY)
	case OpPlayer:
		return s.SpawnPlayer(r.Player)
	case OpEnemyConfig:
		return s.ConfigureEnemy(r.Name, r.Enemy)
	case OpEnemy:
		return s.SpawnEnemy(r.Name, r.GX, r.GY)
	default:
		return fmt.Errorf("%w %s", ErrUnknownDirective, r.Op)
	}
}
