// Package assets resolves animation names to animation resources.
package assets

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/prefabs"
)

var ErrUnknownAnimation = errors.New("assets: unknown animation")

// Catalog is the set of animations a game can bind to entities. Names the
// gameplay code branches on get their reserved ids; every other name gets
// a stable id in load order.
type Catalog struct {
	byName map[string]component.AnimationDef
	byID   map[component.AnimationID]component.AnimationDef
	colors map[component.AnimationID]color.Color
	next   component.AnimationID
}

func NewCatalog(specs []prefabs.AnimationSpec) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]component.AnimationDef, len(specs)),
		byID:   make(map[component.AnimationID]component.AnimationDef, len(specs)),
		colors: make(map[component.AnimationID]color.Color),
		next:   component.AnimationCustom,
	}
	for _, spec := range specs {
		if err := c.add(spec); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalog builds the catalog from prefabs/animations.yaml.
func LoadCatalog() (*Catalog, error) {
	spec, err := prefabs.LoadAnimationCatalogSpec()
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec.Animations)
}

func (c *Catalog) add(spec prefabs.AnimationSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("assets: animation without a name")
	}
	if _, ok := c.byName[spec.Name]; ok {
		return fmt.Errorf("assets: duplicate animation %q", spec.Name)
	}
	if spec.FrameCount <= 0 || spec.FrameW <= 0 || spec.FrameH <= 0 {
		return fmt.Errorf("assets: animation %q: frame size and count must be positive", spec.Name)
	}

	id, ok := component.ReservedAnimationID(spec.Name)
	if !ok {
		id = c.next
		c.next++
	}

	def := component.AnimationDef{
		ID:         id,
		Name:       spec.Name,
		FrameW:     spec.FrameW,
		FrameH:     spec.FrameH,
		FrameCount: spec.FrameCount,
		FrameTime:  spec.FrameTime,
		Loop:       spec.Loop,
	}
	c.byName[spec.Name] = def
	c.byID[id] = def
	if spec.Color != nil && spec.Color.Color != nil {
		c.colors[id] = spec.Color.Color
	}
	return nil
}

// Get returns the animation called name.
func (c *Catalog) Get(name string) (component.AnimationDef, error) {
	if c != nil {
		if def, ok := c.byName[name]; ok {
			return def, nil
		}
	}
	return component.AnimationDef{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
}

func (c *Catalog) ByID(id component.AnimationID) (component.AnimationDef, bool) {
	if c == nil {
		return component.AnimationDef{}, false
	}
	def, ok := c.byID[id]
	return def, ok
}

// Color is the placeholder color used when drawing an animation without
// sprite sheets.
func (c *Catalog) Color(id component.AnimationID) (color.Color, bool) {
	if c == nil {
		return nil, false
	}
	clr, ok := c.colors[id]
	return clr, ok
}

func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
