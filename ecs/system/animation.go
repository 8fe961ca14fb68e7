package system

import (
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// AnimationSystem picks the player's animation from its state and advances
// every animation by one frame. Finished one-shot animations destroy their
// entity, except a bounced question block which settles into Question2.
type AnimationSystem struct {
	stand     component.AnimationDef
	run       component.AnimationDef
	air       component.AnimationDef
	question2 component.AnimationDef
}

func NewAnimationSystem(src AnimationSource) (*AnimationSystem, error) {
	defs, err := resolve(src, "Stand", "Run", "Air", "Question2")
	if err != nil {
		return nil, err
	}
	return &AnimationSystem{
		stand:     defs["Stand"],
		run:       defs["Run"],
		air:       defs["Air"],
		question2: defs["Question2"],
	}, nil
}

func (s *AnimationSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	s.selectPlayer(w, f.Player)

	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, a *component.Animation) {
		if a.Repeat || !a.HasEnded() {
			a.Update()
			return
		}
		if a.Is(component.AnimationQuestBounce) {
			*a = component.NewAnimation(s.question2, true)
			return
		}
		w.DestroyEntity(e)
	})
}

func (s *AnimationSystem) selectPlayer(w *ecs.World, e ecs.Entity) {
	st, ok := ecs.Get(w, e, component.StateComponent)
	if !ok {
		return
	}
	a, ok := ecs.Get(w, e, component.AnimationComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}

	switch st.Current {
	case component.StateGround:
		if t.Velocity.X != 0 && !a.Is(component.AnimationRun) {
			*a = component.NewAnimation(s.run, true)
		} else if t.Velocity.X == 0 && !a.Is(component.AnimationStand) {
			*a = component.NewAnimation(s.stand, true)
		}
	case component.StateAir:
		if !a.Is(component.AnimationAir) {
			*a = component.NewAnimation(s.air, true)
		}
	}
}
