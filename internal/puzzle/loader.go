package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Loader reads puzzles from JSON files in a directory and caches them.
// Loaded puzzles are shared and must be treated as read-only.
type Loader struct {
	dir   string
	mu    sync.Mutex
	cache map[string]*Puzzle
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Puzzle),
	}
}

// Load returns the puzzle with the given name, reading it from disk on first
// use.
func (l *Loader) Load(name string) (*Puzzle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.cache[name]; ok {
		return p, nil
	}

	path := filepath.Join(l.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q not found: %w", name, err)
	}

	var p Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	l.cache[name] = &p
	return &p, nil
}

// List returns the names of every puzzle file in the directory.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}
