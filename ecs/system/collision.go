package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/entity"
	"github.com/milk9111/notmario/physics"
)

// CollisionConfig holds the world constants collision resolution depends on.
type CollisionConfig struct {
	// LevelHeight is the pixel y below which entities have fallen out.
	LevelHeight float64
	// BounceVelocity is the vertical velocity a stomp gives the player.
	BounceVelocity float64
	// CoinOffset is how far above a question block its coin appears.
	CoinOffset float64
}

// CollisionSystem resolves overlaps between bullets, the player, enemies and
// tiles. Pairs are visited once per frame in a fixed order; a reset request
// ends the pass.
type CollisionSystem struct {
	cfg          CollisionConfig
	explosion    component.AnimationDef
	questBounce  component.AnimationDef
	goombaSquash component.AnimationDef
	coin         component.AnimationDef
}

func NewCollisionSystem(src AnimationSource, cfg CollisionConfig) (*CollisionSystem, error) {
	defs, err := resolve(src, "Explosion", "Quest_Bounce", "GoombaSquash", "Coin")
	if err != nil {
		return nil, err
	}
	return &CollisionSystem{
		cfg:          cfg,
		explosion:    defs["Explosion"],
		questBounce:  defs["Quest_Bounce"],
		goombaSquash: defs["GoombaSquash"],
		coin:         defs["Coin"],
	}, nil
}

func (s *CollisionSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	tiles := w.Query(ecs.CategoryTile)
	enemies := w.Query(ecs.CategoryEnemy)

	s.bullets(w, tiles, enemies)

	player := f.Player
	pt, hasPlayer := ecs.Get(w, player, component.TransformComponent)

	if hasPlayer {
		s.playerDefaults(w, player)
		s.playerTiles(w, f, player, pt, tiles)
		if f.ResetRequested() {
			return
		}
	}

	for _, e := range enemies {
		if w.IsPending(e) {
			continue
		}
		if hasPlayer {
			s.playerEnemy(w, f, player, pt, e)
			if f.ResetRequested() {
				return
			}
		}
		s.enemyTiles(w, e, tiles)
		s.enemyBounds(w, e)
	}

	if !hasPlayer {
		return
	}
	if pt.Position.Y > s.cfg.LevelHeight {
		f.RequestReset("player fell out of the level")
		return
	}
	if pt.Position.X < 0 {
		pt.Position.X = 0
	}
}

// bullets consumes every bullet on its first hit. Bricks explode, enemies are
// blown up.
func (s *CollisionSystem) bullets(w *ecs.World, tiles, enemies []ecs.Entity) {
	for _, b := range w.Query(ecs.CategoryBullet) {
		if s.bulletHit(w, b, tiles, func(t ecs.Entity) {
			if s.animationIs(w, t, component.AnimationBrick) {
				logFailure("explode", t, entity.Explode(w, t, s.explosion))
			}
		}) {
			continue
		}
		s.bulletHit(w, b, enemies, func(e ecs.Entity) {
			logFailure("defeat", e, entity.Defeat(w, e, s.explosion))
		})
	}
}

func (s *CollisionSystem) bulletHit(w *ecs.World, b ecs.Entity, targets []ecs.Entity, hit func(ecs.Entity)) bool {
	for _, t := range targets {
		if w.IsPending(t) {
			continue
		}
		if !physics.Intersects(physics.Overlap(w, b, t)) {
			continue
		}
		w.DestroyEntity(b)
		hit(t)
		return true
	}
	return false
}

// playerDefaults drops the player into the air each frame; only a landing
// this frame puts it back on the ground.
func (s *CollisionSystem) playerDefaults(w *ecs.World, player ecs.Entity) {
	if st, ok := ecs.Get(w, player, component.StateComponent); ok && st.Current != component.StateBouncing {
		st.Current = component.StateAir
	}
	if in, ok := ecs.Get(w, player, component.InputComponent); ok {
		in.CanJump = false
	}
}

func (s *CollisionSystem) playerTiles(w *ecs.World, f *ecs.Frame, player ecs.Entity, pt *component.Transform, tiles []ecs.Entity) {
	for _, t := range tiles {
		if w.IsPending(t) {
			continue
		}
		tt, ok := ecs.Get(w, t, component.TransformComponent)
		if !ok {
			continue
		}

		overlap := physics.Overlap(w, player, t)
		if physics.Intersects(overlap) {
			prev := physics.PreviousOverlap(w, player, t)
			if prev.Y > 0 {
				pt.Position.X = pushOut(pt.Position.X, tt.Position.X, overlap.X)
			}
			if prev.X > 0 {
				if pt.Position.Y < tt.Position.Y {
					pt.Position.Y -= overlap.Y
					s.land(w, player)
				} else {
					pt.Position.Y += overlap.Y
					s.headBump(w, t, tt)
				}
				pt.Velocity.Y = 0
			}
		}

		if s.animationIs(w, t, component.AnimationPoleTop) && pt.Position.X > tt.Position.X {
			f.RequestReset("player reached the flag")
			return
		}
	}
}

func (s *CollisionSystem) land(w *ecs.World, player ecs.Entity) {
	if st, ok := ecs.Get(w, player, component.StateComponent); ok {
		st.Current = component.StateGround
	}
	if in, ok := ecs.Get(w, player, component.InputComponent); ok {
		in.CanJump = true
	}
}

func (s *CollisionSystem) headBump(w *ecs.World, t ecs.Entity, tt *component.Transform) {
	a, ok := ecs.Get(w, t, component.AnimationComponent)
	if !ok {
		return
	}
	switch {
	case a.Is(component.AnimationQuestion):
		_, err := entity.NewCoin(w, s.coin, tt.Position.Sub(cp.Vector{Y: s.cfg.CoinOffset}))
		logFailure("spawn coin over", t, err)
		*a = component.NewAnimation(s.questBounce, false)
	case a.Is(component.AnimationBrick):
		logFailure("explode", t, entity.Explode(w, t, s.explosion))
	}
}

func (s *CollisionSystem) playerEnemy(w *ecs.World, f *ecs.Frame, player ecs.Entity, pt *component.Transform, e ecs.Entity) {
	overlap := physics.Overlap(w, player, e)
	if !physics.Intersects(overlap) {
		return
	}
	et, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}

	prev := physics.PreviousOverlap(w, player, e)
	if prev.X > 0 {
		if pt.Position.Y < et.Position.Y {
			pt.Velocity.Y = s.cfg.BounceVelocity
			if st, ok := ecs.Get(w, player, component.StateComponent); ok {
				st.Current = component.StateBouncing
			}
			logFailure("defeat", e, entity.Defeat(w, e, s.goombaSquash))
		} else {
			f.RequestReset("player hit an enemy from below")
			return
		}
	}
	if prev.Y > 0 {
		f.RequestReset("player ran into an enemy")
	}
}

func (s *CollisionSystem) enemyTiles(w *ecs.World, e ecs.Entity, tiles []ecs.Entity) {
	et, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	for _, t := range tiles {
		if w.IsPending(t) {
			continue
		}
		overlap := physics.Overlap(w, e, t)
		if !physics.Intersects(overlap) {
			continue
		}
		tt, ok := ecs.Get(w, t, component.TransformComponent)
		if !ok {
			continue
		}

		prev := physics.PreviousOverlap(w, e, t)
		if prev.Y > 0 {
			et.Position.X = pushOut(et.Position.X, tt.Position.X, overlap.X)
			et.Velocity.X = -et.Velocity.X
			et.Scale.X = -et.Scale.X
		}
		if prev.X > 0 {
			if et.Position.Y < tt.Position.Y {
				et.Position.Y -= overlap.Y
			} else {
				et.Position.Y += overlap.Y
			}
			et.Velocity.Y = 0
		}
	}
}

func (s *CollisionSystem) enemyBounds(w *ecs.World, e ecs.Entity) {
	et, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	if et.Position.Y > s.cfg.LevelHeight || et.Position.X < 0 {
		w.DestroyEntity(e)
	}
}

func (s *CollisionSystem) animationIs(w *ecs.World, e ecs.Entity, id component.AnimationID) bool {
	a, ok := ecs.Get(w, e, component.AnimationComponent)
	return ok && a.Is(id)
}

// pushOut moves x away from other by depth, towards the side it came from.
func pushOut(x, other, depth float64) float64 {
	if x < other {
		return x - depth
	}
	return x + depth
}

// logFailure reports an effect that could not be applied. Resolution carries
// on with the remaining pairs.
func logFailure(op string, e ecs.Entity, err error) {
	if err != nil {
		log.Printf("collision: %s %v: %v", op, e, err)
	}
}
