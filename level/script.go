package level

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/notmario/prefabs"
)

// scriptModules are the tengo stdlib modules a level script may import.
var scriptModules = []string{"math", "text", "rand", "enum", "fmt"}

// ParseScript runs a tengo level script. The script builds the level by
// calling tile, dec, player, goomba, configure_enemy and enemy, in the
// same order and with the same arguments as the text format.
func ParseScript(ctx context.Context, name string, src []byte) (*Level, error) {
	b := &scriptBuilder{lvl: &Level{Name: name}}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(scriptModules...))
	for fname, fn := range b.functions() {
		if err := script.Add(fname, fn); err != nil {
			return nil, fmt.Errorf("level %s: add %s: %w", name, fname, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("level %s: compile: %w", name, err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("level %s: run: %w", name, err)
	}
	return b.lvl, nil
}

type scriptBuilder struct {
	lvl *Level
}

func (b *scriptBuilder) functions() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"tile":            b.placement("tile", OpTile),
		"dec":             b.placement("dec", OpDecoration),
		"enemy":           b.placement("enemy", OpEnemy),
		"player":          {Name: "player", Value: b.player},
		"goomba":          {Name: "goomba", Value: b.goomba},
		"configure_enemy": {Name: "configure_enemy", Value: b.configureEnemy},
	}
}

func (b *scriptBuilder) placement(name string, op Op) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		what, err := stringArg(args, 0, "name")
		if err != nil {
			return nil, err
		}
		gx, err := floatArg(args, 1, "gx")
		if err != nil {
			return nil, err
		}
		gy, err := floatArg(args, 2, "gy")
		if err != nil {
			return nil, err
		}
		b.lvl.Requests = append(b.lvl.Requests, Request{Op: op, Name: what, GX: gx, GY: gy})
		return tengo.UndefinedValue, nil
	}}
}

func (b *scriptBuilder) player(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 9 {
		return nil, tengo.ErrWrongNumArguments
	}
	nums, err := floatArgs(args[:8], "x", "y", "cx", "cy", "speed", "jump", "maxspeed", "gravity")
	if err != nil {
		return nil, err
	}
	weapon, err := stringArg(args, 8, "weapon")
	if err != nil {
		return nil, err
	}
	cfg := prefabs.PlayerSpec{
		X:        nums[0],
		Y:        nums[1],
		CX:       nums[2],
		CY:       nums[3],
		Speed:    nums[4],
		Jump:     nums[5],
		MaxSpeed: nums[6],
		Gravity:  nums[7],
		Weapon:   weapon,
	}
	b.lvl.Requests = append(b.lvl.Requests, Request{Op: OpPlayer, Player: cfg})
	return tengo.UndefinedValue, nil
}

func (b *scriptBuilder) goomba(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 5 {
		return nil, tengo.ErrWrongNumArguments
	}
	return b.enemyConfig("Goomba", args)
}

func (b *scriptBuilder) configureEnemy(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 6 {
		return nil, tengo.ErrWrongNumArguments
	}
	kind, err := stringArg(args, 0, "kind")
	if err != nil {
		return nil, err
	}
	return b.enemyConfig(kind, args[1:])
}

func (b *scriptBuilder) enemyConfig(kind string, args []tengo.Object) (tengo.Object, error) {
	nums, err := floatArgs(args, "cx", "cy", "speed", "maxspeed", "gravity")
	if err != nil {
		return nil, err
	}
	cfg := prefabs.EnemySpec{
		CX:       nums[0],
		CY:       nums[1],
		Speed:    nums[2],
		MaxSpeed: nums[3],
		Gravity:  nums[4],
	}
	b.lvl.Requests = append(b.lvl.Requests, Request{Op: OpEnemyConfig, Name: kind, Enemy: cfg})
	return tengo.UndefinedValue, nil
}

func stringArg(args []tengo.Object, i int, name string) (string, error) {
	s, ok := args[i].(*tengo.String)
	if !ok {
		return "", tengo.ErrInvalidArgumentType{Name: name, Expected: "string", Found: args[i].TypeName()}
	}
	return s.Value, nil
}

func floatArg(args []tengo.Object, i int, name string) (float64, error) {
	v, ok := tengo.ToFloat64(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "int or float", Found: args[i].TypeName()}
	}
	return v, nil
}

func floatArgs(args []tengo.Object, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := floatArg(args, i, name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
