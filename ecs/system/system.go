// Package system holds the per-frame gameplay systems of the play scene.
package system

import (
	"fmt"

	"github.com/milk9111/notmario/ecs/component"
)

// AnimationSource resolves animation names to definitions.
type AnimationSource interface {
	Get(name string) (component.AnimationDef, error)
}

// resolve looks up every named animation up front so systems never fail in
// the middle of a frame.
func resolve(src AnimationSource, names ...string) (map[string]component.AnimationDef, error) {
	if src == nil {
		return nil, fmt.Errorf("system: nil animation source")
	}
	defs := make(map[string]component.AnimationDef, len(names))
	for _, name := range names {
		def, err := src.Get(name)
		if err != nil {
			return nil, fmt.Errorf("system: resolve %q: %w", name, err)
		}
		defs[name] = def
	}
	return defs, nil
}
