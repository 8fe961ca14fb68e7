package level

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/milk9111/notmario/levels"
)

// Load parses src as a script when name ends in .tengo and as the text
// format otherwise.
func Load(ctx context.Context, name string, src []byte) (*Level, error) {
	if IsScript(name) {
		return ParseScript(ctx, name, src)
	}
	return Parse(name, bytes.NewReader(src))
}

// Open reads a level from levels/ on disk, or the embedded copy, and parses
// it.
func Open(ctx context.Context, name string) (*Level, error) {
	src, err := levels.Read(name)
	if err != nil {
		return nil, err
	}
	return Load(ctx, name, src)
}

func IsScript(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".tengo")
}
