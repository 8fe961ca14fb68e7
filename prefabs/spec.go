package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the tuning shared by every level.
type GameSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// GridSize is the edge of one level grid cell in pixels.
	GridSize       float64    `yaml:"grid_size"`
	BulletSpeed    float64    `yaml:"bullet_speed"`
	BulletLifespan int        `yaml:"bullet_lifespan"`
	BounceVelocity float64    `yaml:"bounce_velocity"`
	CoinOffset     float64    `yaml:"coin_offset"`
	Player         PlayerSpec `yaml:"player"`
	Goomba         EnemySpec  `yaml:"goomba"`
}

// LevelHeight is the pixel height levels are laid out against.
func (g GameSpec) LevelHeight() float64 {
	return float64(g.Height)
}

func (g GameSpec) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("prefabs: invalid window size %dx%d", g.Width, g.Height)
	}
	if g.GridSize <= 0 {
		return fmt.Errorf("prefabs: invalid grid size %g", g.GridSize)
	}
	if g.BulletLifespan <= 0 {
		return fmt.Errorf("prefabs: invalid bullet lifespan %d", g.BulletLifespan)
	}
	return nil
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// PlayerSpec mirrors the Player line of a level: grid start, collision box,
// speeds and the weapon animation.
type PlayerSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	CX       float64 `yaml:"cx"`
	CY       float64 `yaml:"cy"`
	Speed    float64 `yaml:"speed"`
	Jump     float64 `yaml:"jump"`
	MaxSpeed float64 `yaml:"max_speed"`
	Gravity  float64 `yaml:"gravity"`
	Weapon   string  `yaml:"weapon"`
}

// EnemySpec mirrors the Goomba line of a level.
type EnemySpec struct {
	CX       float64 `yaml:"cx"`
	CY       float64 `yaml:"cy"`
	Speed    float64 `yaml:"speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Gravity  float64 `yaml:"gravity"`
}

type AnimationSpec struct {
	Name       string     `yaml:"name"`
	FrameW     int        `yaml:"frame_w"`
	FrameH     int        `yaml:"frame_h"`
	FrameCount int        `yaml:"frame_count"`
	FrameTime  int        `yaml:"frame_time"`
	Loop       bool       `yaml:"loop"`
	Color      *YAMLColor `yaml:"color"`
}

type AnimationCatalogSpec struct {
	Animations []AnimationSpec `yaml:"animations"`
}

func LoadAnimationCatalogSpec() (*AnimationCatalogSpec, error) {
	spec, err := LoadSpec[AnimationCatalogSpec]("animations.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
