package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementIntents(t *testing.T) {
	cases := []struct {
		name      string
		right     bool
		left      bool
		wantVX    float64
		wantScale float64
	}{
		{"right", true, false, 5, 1},
		{"left", false, true, -5, -1},
		{"both_cancel", true, true, 0, 1},
		{"none", false, false, 0, 1},
	}

	cat := loadCatalog(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p, tr := newPlayer(t, w, cat, cp.Vector{})
			in, _ := ecs.Get(w, p, component.InputComponent)
			in.Right = c.right
			in.Left = c.left

			NewMovementSystem().Update(w, &ecs.Frame{Number: 1, Player: p})

			assert.Equal(t, c.wantVX, tr.Velocity.X)
			assert.Equal(t, c.wantScale, tr.Scale.X)
			assert.Equal(t, cp.Vector{}, tr.PreviousPosition)
			assert.Equal(t, cp.Vector{X: c.wantVX, Y: 0.75}, tr.Position)
		})
	}
}

func TestMovementFacingKeptAtRest(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()
	p, tr := newPlayer(t, w, cat, cp.Vector{})
	in, _ := ecs.Get(w, p, component.InputComponent)
	s := NewMovementSystem()

	in.Left = true
	s.Update(w, &ecs.Frame{Number: 1, Player: p})
	in.Left = false
	s.Update(w, &ecs.Frame{Number: 2, Player: p})

	assert.Equal(t, 0.0, tr.Velocity.X)
	assert.Equal(t, -1.0, tr.Scale.X)
}

func TestMovementJump(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()
	p, tr := newPlayer(t, w, cat, cp.Vector{X: 100, Y: 500})
	in, _ := ecs.Get(w, p, component.InputComponent)
	s := NewMovementSystem()

	in.Up = true
	s.Update(w, &ecs.Frame{Number: 1, Player: p})
	assert.False(t, in.CanJump)
	assert.Equal(t, -19.25, tr.Velocity.Y)
	assert.Equal(t, 500-19.25, tr.Position.Y)

	// Holding jump without CanJump only applies gravity.
	s.Update(w, &ecs.Frame{Number: 2, Player: p})
	assert.Equal(t, -18.5, tr.Velocity.Y)
}

func TestMovementVariableJump(t *testing.T) {
	cases := []struct {
		name  string
		state component.PlayerState
		want  float64
	}{
		{"released_while_rising", component.StateAir, 0.75},
		{"bouncing_keeps_velocity", component.StateBouncing, -9.25},
	}

	cat := loadCatalog(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p, tr := newPlayer(t, w, cat, cp.Vector{})
			st, _ := ecs.Get(w, p, component.StateComponent)
			st.Current = c.state
			tr.Velocity.Y = -10

			NewMovementSystem().Update(w, &ecs.Frame{Number: 1, Player: p})
			assert.Equal(t, c.want, tr.Velocity.Y)
		})
	}
}

func TestMovementClampAfterIntegration(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()
	p, tr := newPlayer(t, w, cat, cp.Vector{})
	pl, _ := ecs.Get(w, p, component.PlayerComponent)
	pl.Speed = 50
	in, _ := ecs.Get(w, p, component.InputComponent)
	in.Right = true
	tr.Velocity.Y = 30

	NewMovementSystem().Update(w, &ecs.Frame{Number: 1, Player: p})

	assert.Equal(t, cp.Vector{X: 50, Y: 30.75}, tr.Position, "position sees the unclamped velocity")
	assert.Equal(t, 20.0, tr.Velocity.X)
	assert.Equal(t, 20.0, tr.Velocity.Y)
	assert.LessOrEqual(t, tr.Velocity.Y, pl.MaxSpeed)
}

func TestMovementIntegratesEveryTransform(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()

	enemy, et := newEnemy(t, w, cat, cp.Vector{X: 300, Y: 100})
	dec, err := entity.NewDecoration(w, def(t, cat, "Cloud"), cp.Vector{X: 10, Y: 10})
	require.NoError(t, err)
	dt, _ := ecs.Get(w, dec, component.TransformComponent)
	dt.Velocity = cp.Vector{X: 1}

	NewMovementSystem().Update(w, &ecs.Frame{Number: 1})

	assert.Equal(t, cp.Vector{X: 298, Y: 100.75}, et.Position)
	assert.Equal(t, cp.Vector{X: 300, Y: 100}, et.PreviousPosition)
	assert.Equal(t, cp.Vector{X: 11, Y: 10}, dt.Position, "no gravity without the component")
	assert.True(t, w.IsAlive(enemy))
}
