package advent

import (
	"bytes"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"nickandperla.net/advent/fuel"
	"nickandperla.net/advent/intcode"
	"nickandperla.net/advent/wire"
)

func init() {
	Register(&Puzzle{Day: 1, Name: FUEL_PUZZLE, Title: "The Tyranny of the Rocket Equation", Solve: SolveFuel})
	Register(&Puzzle{Day: 2, Name: INTCODE_PUZZLE, Title: "1202 Program Alarm", Solve: SolveIntcode})
	Register(&Puzzle{Day: 3, Name: WIRES_PUZZLE, Title: "Crossed Wires", Solve: SolveWires})
}

// SolveFuel sums the fuel for every module mass, first without and then with
// the fuel needed to carry the fuel.
func SolveFuel(_ context.Context, _ *ToolConfig, input []byte) ([]int64, error) {
	masses, err := fuel.ParseMasses(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	return []int64{
		int64(fuel.Sum(masses, fuel.RequiredFuel)),
		int64(fuel.Sum(masses, fuel.TotalRequiredFuel)),
	}, nil
}

// SolveIntcode runs the program once with the configured noun and verb, then
// searches for the pair that outputs the configured target.
func SolveIntcode(ctx context.Context, tc *ToolConfig, input []byte) ([]int64, error) {
	program, err := intcode.ParseProgram(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	m := intcode.NewMachine(tc.Intcode.Machine)
	m.LoadProgram(program)
	first, err := m.RunWithInputs(tc.Intcode.Noun, tc.Intcode.Verb)
	if err != nil {
		return nil, fmt.Errorf("Part one failed with noun [%d] verb [%d]: %w", tc.Intcode.Noun, tc.Intcode.Verb, err)
	}

	engine := NewSearchEngine(program, tc.Intcode.Machine, tc.Search)
	match, err := engine.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("Part two failed: %w", err)
	}
	log.WithFields(log.Fields{
		"noun":    match.Trial.Noun,
		"verb":    match.Trial.Verb,
		"workers": len(engine.Processors),
	}).Debug("Found noun and verb")

	return []int64{
		int64(first),
		int64(intcode.Answer(match.Trial.Noun, match.Trial.Verb)),
	}, nil
}

// SolveWires reports the distance to the closest crossing and the fewest
// combined steps to a crossing.
func SolveWires(_ context.Context, _ *ToolConfig, input []byte) ([]int64, error) {
	wires, err := wire.ParseWires(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	paths := wire.TraceAll(wires)
	closest, err := wire.ClosestIntersection(paths)
	if err != nil {
		return nil, err
	}
	fewest, err := wire.FewestSteps(paths)
	if err != nil {
		return nil, err
	}

	return []int64{int64(closest), int64(fewest)}, nil
}
