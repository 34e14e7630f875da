// Package wire traces wires across a grid from a shared origin and finds
// where they cross.
package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type Direction byte

const (
	UP    = Direction('U')
	DOWN  = Direction('D')
	LEFT  = Direction('L')
	RIGHT = Direction('R')
)

var ErrNoIntersection = errors.New("Wires do not intersect")

type Coord struct {
	X, Y int
}

var ORIGIN = Coord{0, 0}

func (c Coord) String() string {
	return fmt.Sprintf("Coord: (%d, %d)", c.X, c.Y)
}

func (c Coord) step(d Direction) Coord {
	switch d {
	case UP:
		return Coord{c.X, c.Y + 1}
	case DOWN:
		return Coord{c.X, c.Y - 1}
	case LEFT:
		return Coord{c.X - 1, c.Y}
	case RIGHT:
		return Coord{c.X + 1, c.Y}
	}
	panic(fmt.Sprintf("Unknown direction [%c] encountered!", d))
}

func Abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

func ManhattanDistance(l, r Coord) int {
	return Abs(l.X-r.X) + Abs(l.Y-r.Y)
}

type Move struct {
	Direction Direction
	Distance  int
}

func ParseMove(s string) (Move, error) {
	if len(s) < 2 {
		return Move{}, fmt.Errorf("Failed to parse move [%s]. Expected a direction and a distance", s)
	}

	d := Direction(s[0])
	switch d {
	case UP, DOWN, LEFT, RIGHT:
	default:
		return Move{}, fmt.Errorf("Failed to parse move [%s]. Unknown direction [%c]", s, d)
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return Move{}, fmt.Errorf("Failed to parse move [%s]. Distance [%s] is not a non-negative integer", s, s[1:])
	}

	return Move{Direction: d, Distance: n}, nil
}

// ParseMoves parses one comma separated wire, e.g. "R8,U5,L5,D3".
func ParseMoves(s string) ([]Move, error) {
	tokens := strings.Split(strings.TrimSpace(s), ",")
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseMove(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseWires reads one wire per non-blank line.
func ParseWires(r io.Reader) ([][]Move, error) {
	var wires [][]Move
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		moves, err := ParseMoves(line)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse wire [%d]: %w", len(wires)+1, err)
		}
		wires = append(wires, moves)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return wires, nil
}

// Path maps every coordinate a wire visits to the step at which it first
// got there.
type Path map[Coord]int

func Trace(moves []Move) Path {
	path := make(Path)
	pos := ORIGIN
	step := 0

	for _, m := range moves {
		for i := 0; i < m.Distance; i++ {
			pos = pos.step(m.Direction)
			step++
			if _, ok := path[pos]; !ok {
				path[pos] = step
			}
		}
	}
	return path
}

// Intersect keeps the coordinates visited by every path, mapped to their
// summed first-visit steps. The origin is never included.
func Intersect(paths []Path) Path {
	if len(paths) == 0 {
		return Path{}
	}

	acc := make(Path, len(paths[0]))
	for c, s := range paths[0] {
		if c != ORIGIN {
			acc[c] = s
		}
	}

	for _, p := range paths[1:] {
		next := make(Path)
		for c, s := range acc {
			if n, ok := p[c]; ok {
				next[c] = s + n
			}
		}
		acc = next
	}
	return acc
}

func intersections(paths []Path) (Path, error) {
	if len(paths) < 2 {
		return nil, fmt.Errorf("Need at least [2] wires to intersect, got [%d]", len(paths))
	}
	crossings := Intersect(paths)
	if len(crossings) == 0 {
		return nil, ErrNoIntersection
	}
	return crossings, nil
}

// ClosestIntersection returns the Manhattan distance from the origin to the
// nearest crossing.
func ClosestIntersection(paths []Path) (int, error) {
	crossings, err := intersections(paths)
	if err != nil {
		return 0, err
	}

	best := -1
	for c := range crossings {
		if d := ManhattanDistance(ORIGIN, c); best < 0 || d < best {
			best = d
		}
	}
	return best, nil
}

// FewestSteps returns the smallest combined step count to any crossing.
func FewestSteps(paths []Path) (int, error) {
	crossings, err := intersections(paths)
	if err != nil {
		return 0, err
	}

	best := -1
	for _, s := range crossings {
		if best < 0 || s < best {
			best = s
		}
	}
	return best, nil
}

func TraceAll(wires [][]Move) []Path {
	paths := make([]Path, len(wires))
	for i, w := range wires {
		paths[i] = Trace(w)
	}
	return paths
}
