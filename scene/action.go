package scene

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/entity"
)

type Phase uint8

const (
	PhaseStart Phase = iota + 1
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

const (
	ActionToggleTexture   = "TOGGLE_TEXTURE"
	ActionToggleCollision = "TOGGLE_COLLISION"
	ActionToggleGrid      = "TOGGLE_GRID"
	ActionPause           = "PAUSE"
	ActionQuit            = "QUIT"
	ActionRight           = "RIGHT"
	ActionLeft            = "LEFT"
	ActionJump            = "JUMP"
	ActionShoot           = "SHOOT"
)

// Action is an abstract input event delivered between frames.
type Action struct {
	Name  string
	Phase Phase
}

func Start(name string) Action { return Action{Name: name, Phase: PhaseStart} }
func End(name string) Action   { return Action{Name: name, Phase: PhaseEnd} }

// DebugFlags select what the renderer draws.
type DebugFlags struct {
	Textures  bool
	Collision bool
	Grid      bool
}

// DoAction applies an action to the scene. Unknown actions are ignored.
func (p *Play) DoAction(a Action) {
	switch a.Phase {
	case PhaseStart:
		p.start(a.Name)
	case PhaseEnd:
		p.end(a.Name)
	}
}

func (p *Play) start(name string) {
	switch name {
	case ActionToggleTexture:
		p.debug.Textures = !p.debug.Textures
	case ActionToggleCollision:
		p.debug.Collision = !p.debug.Collision
	case ActionToggleGrid:
		p.debug.Grid = !p.debug.Grid
	case ActionPause:
		p.paused = !p.paused
	case ActionQuit:
		p.ended = true
	case ActionRight, ActionLeft, ActionJump:
		if in, ok := p.input(); ok {
			setIntent(in, name, true)
		}
	case ActionShoot:
		if in, ok := p.input(); ok {
			if in.CanShoot {
				p.shoot()
			}
			in.CanShoot = false
		}
	}
}

func (p *Play) end(name string) {
	in, ok := p.input()
	if !ok {
		return
	}
	switch name {
	case ActionRight, ActionLeft, ActionJump:
		setIntent(in, name, false)
	case ActionShoot:
		in.CanShoot = true
	}
}

func setIntent(in *component.Input, name string, held bool) {
	switch name {
	case ActionRight:
		in.Right = held
	case ActionLeft:
		in.Left = held
	case ActionJump:
		in.Up = held
	}
}

func (p *Play) input() (*component.Input, bool) {
	return ecs.Get(p.world, p.player, component.InputComponent)
}

// shoot fires the player's weapon in the direction it faces.
func (p *Play) shoot() {
	t, ok := ecs.Get(p.world, p.player, component.TransformComponent)
	if !ok {
		return
	}
	velocity := cp.Vector{X: p.cfg.BulletSpeed * t.Scale.X}
	if _, err := entity.NewBullet(p.world, p.weapon, t.Position, velocity, p.cfg.BulletLifespan, p.frame); err != nil {
		log.Printf("scene: shoot: %v", err)
	}
}
