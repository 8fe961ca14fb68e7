package level

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/notmario/levels"
	"github.com/milk9111/notmario/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# comment
Goomba 48 48 2 10 0.75

Player 2 2 48 64 5 -20 20 0.75 Buster
Tile Ground 0 0
Dec Cloud 3.5 9
Enemy Goomba 11 2
`

func TestParse(t *testing.T) {
	lvl, err := Parse("sample", strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, lvl.Requests, 5)

	assert.Equal(t, Request{
		Op:    OpEnemyConfig,
		Name:  "Goomba",
		Enemy: prefabs.EnemySpec{CX: 48, CY: 48, Speed: 2, MaxSpeed: 10, Gravity: 0.75},
		Line:  2,
	}, lvl.Requests[0])
	assert.Equal(t, prefabs.PlayerSpec{X: 2, Y: 2, CX: 48, CY: 64, Speed: 5, Jump: -20, MaxSpeed: 20, Gravity: 0.75, Weapon: "Buster"}, lvl.Requests[1].Player)
	assert.Equal(t, Request{Op: OpTile, Name: "Ground", Line: 5}, lvl.Requests[2])
	assert.Equal(t, Request{Op: OpDecoration, Name: "Cloud", GX: 3.5, GY: 9, Line: 6}, lvl.Requests[3])
	assert.Equal(t, Request{Op: OpEnemy, Name: "Goomba", GX: 11, GY: 2, Line: 7}, lvl.Requests[4])
	assert.True(t, lvl.HasPlayer())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
		line string
	}{
		{"unknown", "Tile Ground 0 0\nKoopa 1 2", ErrUnknownDirective, "line 2"},
		{"too_few", "Tile Ground 0", ErrSyntax, "line 1"},
		{"too_many", "Enemy Goomba 1 2 3", ErrSyntax, "line 1"},
		{"not_a_number", "\nPlayer 2 two 48 64 5 -20 20 0.75 Buster", ErrSyntax, "line 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse("bad", strings.NewReader(c.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, c.want)
			assert.Contains(t, err.Error(), c.line)
		})
	}
}

type recorder struct {
	calls []string
	fail  string
}

var errSpawn = errors.New("spawn failed")

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if call == r.fail {
		return errSpawn
	}
	return nil
}

func (r *recorder) SpawnTile(name string, gx, gy float64) error {
	return r.record("tile " + name)
}

func (r *recorder) SpawnDecoration(name string, gx, gy float64) error {
	return r.record("dec " + name)
}

func (r *recorder) SpawnPlayer(cfg prefabs.PlayerSpec) error {
	return r.record("player " + cfg.Weapon)
}

func (r *recorder) ConfigureEnemy(kind string, cfg prefabs.EnemySpec) error {
	return r.record("config " + kind)
}

func (r *recorder) SpawnEnemy(kind string, gx, gy float64) error {
	return r.record("enemy " + kind)
}

func TestReplay(t *testing.T) {
	lvl, err := Parse("sample", strings.NewReader(sample))
	require.NoError(t, err)

	rec := &recorder{}
	require.NoError(t, lvl.Replay(rec))
	assert.Equal(t, []string{"config Goomba", "player Buster", "tile Ground", "dec Cloud", "enemy Goomba"}, rec.calls)

	rec = &recorder{fail: "tile Ground"}
	err = lvl.Replay(rec)
	assert.ErrorIs(t, err, errSpawn)
	assert.Contains(t, err.Error(), "line 5")
	assert.Len(t, rec.calls, 3, "replay stops at the first failure")
}

func TestParseScript(t *testing.T) {
	src := `
goomba(48, 48, 2, 10, 0.75)
player(2, 2, 48, 64, 5, -20, 20, 0.75, "Buster")
for x := 0; x < 3; x++ {
	tile("Ground", x, 0)
}
configure_enemy("Koopa", 48, 64, 1, 10, 0.75)
enemy("Koopa", 5.5, 2)
`
	lvl, err := ParseScript(context.Background(), "script.tengo", []byte(src))
	require.NoError(t, err)
	require.Len(t, lvl.Requests, 7)

	assert.Equal(t, OpEnemyConfig, lvl.Requests[0].Op)
	assert.Equal(t, "Goomba", lvl.Requests[0].Name)
	assert.Equal(t, -20.0, lvl.Requests[1].Player.Jump)
	assert.Equal(t, Request{Op: OpTile, Name: "Ground", GX: 2, GY: 0}, lvl.Requests[4])
	assert.Equal(t, prefabs.EnemySpec{CX: 48, CY: 64, Speed: 1, MaxSpeed: 10, Gravity: 0.75}, lvl.Requests[5].Enemy)
	assert.Equal(t, Request{Op: OpEnemy, Name: "Koopa", GX: 5.5, GY: 2}, lvl.Requests[6])
}

func TestParseScriptErrors(t *testing.T) {
	cases := map[string]string{
		"compile":    `tile("Ground", 0`,
		"arg_count":  `tile("Ground", 0)`,
		"arg_type":   `tile(1, 0, 0)`,
		"bad_number": `enemy("Goomba", "x", 0)`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScript(context.Background(), "bad.tengo", []byte(src))
			assert.Error(t, err)
		})
	}
}

func TestOpenEmbeddedLevels(t *testing.T) {
	for _, name := range levels.Names() {
		t.Run(name, func(t *testing.T) {
			lvl, err := Open(context.Background(), name)
			require.NoError(t, err)
			assert.True(t, lvl.HasPlayer())
			assert.NotEmpty(t, lvl.Requests)
		})
	}
}

func TestScriptLevel(t *testing.T) {
	lvl, err := Open(context.Background(), "level2.tengo")
	require.NoError(t, err)

	last := lvl.Requests[len(lvl.Requests)-1]
	assert.Equal(t, Request{Op: OpTile, Name: "PoleTop", GX: 55, GY: 9}, last)

	questions := 0
	for _, r := range lvl.Requests {
		if r.Op == OpTile && r.Name == "Question" {
			questions++
		}
	}
	assert.Equal(t, 2, questions)
}

func TestIsScript(t *testing.T) {
	assert.True(t, IsScript("levels/level2.tengo"))
	assert.True(t, IsScript("LEVEL.TENGO"))
	assert.False(t, IsScript("level1.txt"))
}
