package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/assets"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/ecs/entity"
	"github.com/milk9111/notmario/prefabs"
	"github.com/stretchr/testify/require"
)

var testPlayerSpec = prefabs.PlayerSpec{
	CX:       64,
	CY:       64,
	Speed:    5,
	Jump:     -20,
	MaxSpeed: 20,
	Gravity:  0.75,
	Weapon:   "Buster",
}

var testEnemySpec = prefabs.EnemySpec{CX: 48, CY: 48, Speed: 2, MaxSpeed: 10, Gravity: 0.75}

func loadCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	cat, err := assets.LoadCatalog()
	require.NoError(t, err)
	return cat
}

func def(t *testing.T, cat *assets.Catalog, name string) component.AnimationDef {
	t.Helper()
	d, err := cat.Get(name)
	require.NoError(t, err)
	return d
}

func newPlayer(t *testing.T, w *ecs.World, cat *assets.Catalog, pos cp.Vector) (ecs.Entity, *component.Transform) {
	t.Helper()
	p, err := entity.NewPlayer(w, def(t, cat, "Stand"), pos, testPlayerSpec)
	require.NoError(t, err)
	tr, ok := ecs.Get(w, p, component.TransformComponent)
	require.True(t, ok)
	return p, tr
}

func newTile(t *testing.T, w *ecs.World, cat *assets.Catalog, name string, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewTile(w, def(t, cat, name), pos)
	require.NoError(t, err)
	return e
}

func newEnemy(t *testing.T, w *ecs.World, cat *assets.Catalog, pos cp.Vector) (ecs.Entity, *component.Transform) {
	t.Helper()
	e, err := entity.NewEnemy(w, def(t, cat, "Goomba"), pos, testEnemySpec)
	require.NoError(t, err)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	return e, tr
}

// place sets where an entity was before and after its last movement step.
func place(tr *component.Transform, prev, pos, vel cp.Vector) {
	tr.PreviousPosition = prev
	tr.Position = pos
	tr.Velocity = vel
}
