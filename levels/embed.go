package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.txt *.tengo
var LevelsFS embed.FS

// Default is the level the game starts with.
const Default = "level1.txt"

// Read returns a level file from levels/ on disk when present, falling back
// to the embedded copy.
func Read(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		return nil, fmt.Errorf("read level: empty name")
	}
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return data, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(strings.TrimSpace(path))
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
