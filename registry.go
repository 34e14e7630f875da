package advent

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/xrash/smetrics"
)

// SolveFunc computes the answers to every part of a puzzle, in part order.
type SolveFunc func(ctx context.Context, tc *ToolConfig, input []byte) ([]int64, error)

type Puzzle struct {
	Day   uint
	Name  string
	Title string
	Solve SolveFunc
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Puzzle{}
)

// Register makes p available to Lookup. Registering a name twice panics.
func Register(p *Puzzle) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[p.Name]; dup {
		panic(fmt.Sprintf("Puzzle [%s] registered twice", p.Name))
	}
	registry[p.Name] = p
}

// Puzzles returns the registered puzzles ordered by day.
func Puzzles() []*Puzzle {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ps := make([]*Puzzle, 0, len(registry))
	for _, p := range registry {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Day < ps[j].Day })
	return ps
}

// Lookup finds a puzzle by name, day number ("2") or "day2".
func Lookup(name string) (*Puzzle, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	registryMu.RLock()
	p, ok := registry[key]
	registryMu.RUnlock()
	if ok {
		return p, nil
	}

	if day, err := strconv.ParseUint(strings.TrimPrefix(key, "day"), 10, 32); err == nil {
		for _, p := range Puzzles() {
			if p.Day == uint(day) {
				return p, nil
			}
		}
	}

	if suggestion := suggest(key); suggestion != "" {
		return nil, fmt.Errorf("Unknown puzzle [%s]. Did you mean [%s]?", name, suggestion)
	}
	return nil, fmt.Errorf("Unknown puzzle [%s]", name)
}

func suggest(key string) string {
	best, bestDistance := "", SUGGESTION_DISTANCE+1
	for _, p := range Puzzles() {
		d := smetrics.WagnerFischer(key, p.Name, 1, 1, 2)
		if d < bestDistance {
			best, bestDistance = p.Name, d
		}
	}
	return best
}
