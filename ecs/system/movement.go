package system

import (
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// MovementSystem turns the player's intents into velocity and integrates
// every transform by one frame.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	player, transform, ok := s.steer(w, f.Player)

	ecs.ForEach(w, component.TransformComponent, func(e ecs.Entity, t *component.Transform) {
		if g, ok := ecs.Get(w, e, component.GravityComponent); ok {
			t.Velocity.Y += g.Accel
		}
		t.PreviousPosition = t.Position
		t.Position = t.Position.Add(t.Velocity)
	})

	// The clamp runs after integration so one frame of overshoot reaches
	// the position.
	if ok {
		transform.Velocity.X = clamp(transform.Velocity.X, player.MaxSpeed)
		transform.Velocity.Y = clamp(transform.Velocity.Y, player.MaxSpeed)
	}
}

func (s *MovementSystem) steer(w *ecs.World, e ecs.Entity) (*component.Player, *component.Transform, bool) {
	player, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		return nil, nil, false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return nil, nil, false
	}
	input, ok := ecs.Get(w, e, component.InputComponent)
	if !ok {
		return player, transform, true
	}

	vx := 0.0
	if input.Right {
		vx += player.Speed
	}
	if input.Left {
		vx -= player.Speed
	}

	bouncing := false
	if st, ok := ecs.Get(w, e, component.StateComponent); ok {
		bouncing = st.Current == component.StateBouncing
	}

	if input.Up && input.CanJump {
		transform.Velocity.Y += player.Jump
		input.CanJump = false
	} else if !input.Up && transform.Velocity.Y < 0 && !bouncing {
		transform.Velocity.Y = 0
	}

	transform.Velocity.X = vx
	if vx > 0 {
		transform.Scale.X = 1
	} else if vx < 0 {
		transform.Scale.X = -1
	}

	return player, transform, true
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
