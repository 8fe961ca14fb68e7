package level

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/notmario/prefabs"
)

// Parse reads the whitespace separated level format, one directive per line:
//
//	Tile   <animation> <gx> <gy>
//	Dec    <animation> <gx> <gy>
//	Player <x> <y> <cx> <cy> <speed> <jump> <maxspeed> <gravity> <weapon>
//	Goomba <cx> <cy> <speed> <maxspeed> <gravity>
//	Enemy  <kind> <gx> <gy>
//
// Blank lines and lines starting with # are skipped.
func Parse(name string, r io.Reader) (*Level, error) {
	lvl := &Level{Name: name}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		req, err := parseDirective(fields)
		if err != nil {
			return nil, fmt.Errorf("level %s: line %d: %w", name, line, err)
		}
		req.Line = line
		lvl.Requests = append(lvl.Requests, req)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("level %s: read: %w", name, err)
	}
	return lvl, nil
}

func parseDirective(fields []string) (Request, error) {
	args := numbers{fields: fields}
	switch fields[0] {
	case "Tile", "Dec":
		if err := args.want(3); err != nil {
			return Request{}, err
		}
		op := OpTile
		if fields[0] == "Dec" {
			op = OpDecoration
		}
		req := Request{Op: op, Name: fields[1], GX: args.float(2), GY: args.float(3)}
		return req, args.err
	case "Enemy":
		if err := args.want(3); err != nil {
			return Request{}, err
		}
		req := Request{Op: OpEnemy, Name: fields[1], GX: args.float(2), GY: args.float(3)}
		return req, args.err
	case "Player":
		if err := args.want(9); err != nil {
			return Request{}, err
		}
		cfg := prefabs.PlayerSpec{
			X:        args.float(1),
			Y:        args.float(2),
			CX:       args.float(3),
			CY:       args.float(4),
			Speed:    args.float(5),
			Jump:     args.float(6),
			MaxSpeed: args.float(7),
			Gravity:  args.float(8),
			Weapon:   fields[9],
		}
		return Request{Op: OpPlayer, Player: cfg}, args.err
	case "Goomba":
		if err := args.want(5); err != nil {
			return Request{}, err
		}
		cfg := prefabs.EnemySpec{
			CX:       args.float(1),
			CY:       args.float(2),
			Speed:    args.float(3),
			MaxSpeed: args.float(4),
			Gravity:  args.float(5),
		}
		return Request{Op: OpEnemyConfig, Name: "Goomba", Enemy: cfg}, args.err
	default:
		return Request{}, fmt.Errorf("%w %q", ErrUnknownDirective, fields[0])
	}
}

// numbers parses directive arguments and keeps the first error.
type numbers struct {
	fields []string
	err    error
}

func (n *numbers) want(count int) error {
	if len(n.fields)-1 != count {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrSyntax, n.fields[0], count, len(n.fields)-1)
	}
	return nil
}

func (n *numbers) float(i int) float64 {
	if n.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(n.fields[i], 64)
	if err != nil {
		n.err = fmt.Errorf("%w: %s argument %d: %q is not a number", ErrSyntax, n.fields[0], i, n.fields[i])
	}
	return v
}
