package entity

import (
	"fmt"

	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// builder attaches components to a freshly created entity and remembers the
// first failure. A failed build marks the entity for destruction so no
// half-built entity survives the frame.
type builder struct {
	w    *ecs.World
	e    ecs.Entity
	name string
	err  error
}

func newBuilder(w *ecs.World, cat ecs.Category, name string) *builder {
	return &builder{w: w, e: w.CreateEntity(cat), name: name}
}

func add[T any](b *builder, what string, handle component.ComponentHandle[T], value T) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.e, handle, value); err != nil {
		b.err = fmt.Errorf("%s: add %s: %w", b.name, what, err)
	}
}

func (b *builder) done() (ecs.Entity, error) {
	if b.err != nil {
		b.w.DestroyEntity(b.e)
		return 0, b.err
	}
	return b.e, nil
}
