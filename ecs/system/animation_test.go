package system

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationPlayerSelection(t *testing.T) {
	cases := []struct {
		name  string
		state component.PlayerState
		vx    float64
		want  component.AnimationID
	}{
		{"ground_moving", component.StateGround, 5, component.AnimationRun},
		{"ground_still", component.StateGround, 0, component.AnimationStand},
		{"air", component.StateAir, 5, component.AnimationAir},
		{"bouncing_keeps_current", component.StateBouncing, 5, component.AnimationStand},
	}

	cat := loadCatalog(t)
	s, err := NewAnimationSystem(cat)
	require.NoError(t, err)

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p, tr := newPlayer(t, w, cat, cp.Vector{})
			st, _ := ecs.Get(w, p, component.StateComponent)
			st.Current = c.state
			tr.Velocity.X = c.vx

			s.Update(w, &ecs.Frame{Number: 1, Player: p})

			a, ok := ecs.Get(w, p, component.AnimationComponent)
			require.True(t, ok)
			assert.True(t, a.Is(c.want), "got %s", a.Name())
			assert.True(t, a.Repeat)
		})
	}
}

func TestAnimationSelectionOnlyOnChange(t *testing.T) {
	cat := loadCatalog(t)
	s, err := NewAnimationSystem(cat)
	require.NoError(t, err)

	w := ecs.NewWorld()
	p, tr := newPlayer(t, w, cat, cp.Vector{})
	st, _ := ecs.Get(w, p, component.StateComponent)
	st.Current = component.StateGround
	tr.Velocity.X = 5

	for frame := 1; frame <= 3; frame++ {
		s.Update(w, &ecs.Frame{Number: frame, Player: p})
	}

	a, _ := ecs.Get(w, p, component.AnimationComponent)
	assert.True(t, a.Is(component.AnimationRun))
	assert.Equal(t, 3, a.Elapsed, "rebinding every frame would restart playback")
}

func TestAnimationOneShots(t *testing.T) {
	cat := loadCatalog(t)
	s, err := NewAnimationSystem(cat)
	require.NoError(t, err)

	t.Run("ended_destroys", func(t *testing.T) {
		w := ecs.NewWorld()
		coin, err := entity.NewCoin(w, def(t, cat, "Coin"), cp.Vector{})
		require.NoError(t, err)
		a, _ := ecs.Get(w, coin, component.AnimationComponent)
		a.Elapsed = 24

		s.Update(w, &ecs.Frame{Number: 1})
		assert.True(t, w.IsPending(coin))
	})

	t.Run("last_frame_still_shown", func(t *testing.T) {
		w := ecs.NewWorld()
		coin, err := entity.NewCoin(w, def(t, cat, "Coin"), cp.Vector{})
		require.NoError(t, err)
		a, _ := ecs.Get(w, coin, component.AnimationComponent)
		a.Elapsed = 23

		s.Update(w, &ecs.Frame{Number: 1})
		assert.False(t, w.IsPending(coin))
		assert.Equal(t, 24, a.Elapsed)
		assert.Equal(t, 3, a.Frame())
	})

	t.Run("quest_bounce_settles", func(t *testing.T) {
		w := ecs.NewWorld()
		block := newTile(t, w, cat, "Question", cp.Vector{})
		a, _ := ecs.Get(w, block, component.AnimationComponent)
		*a = component.NewAnimation(def(t, cat, "Quest_Bounce"), false)
		a.Elapsed = 16

		s.Update(w, &ecs.Frame{Number: 1})

		assert.False(t, w.IsPending(block))
		assert.True(t, a.Is(component.AnimationQuestion2))
		assert.True(t, a.Repeat)
		assert.Equal(t, 0, a.Elapsed)
	})
}

type failingSource struct{}

var errNoAnimations = errors.New("no animations")

func (failingSource) Get(string) (component.AnimationDef, error) {
	return component.AnimationDef{}, errNoAnimations
}

func TestSystemsResolveAnimationsUpFront(t *testing.T) {
	_, err := NewAnimationSystem(failingSource{})
	assert.ErrorIs(t, err, errNoAnimations)

	_, err = NewCollisionSystem(failingSource{}, CollisionConfig{})
	assert.ErrorIs(t, err, errNoAnimations)

	_, err = NewAnimationSystem(nil)
	assert.Error(t, err)
}
