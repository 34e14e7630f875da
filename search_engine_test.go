package advent

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	test "testing"

	"nickandperla.net/advent/intcode"
)

// searchProgram outputs memory[noun] + memory[verb], with memory[i] =
// 1000*i + 7 past the first instruction.
func searchProgram() []int {
	program := make([]int, 100)
	copy(program, []int{1, 0, 0, 0, 99})
	for i := 5; i < len(program); i++ {
		program[i] = 1000*i + 7
	}
	return program
}

func searchProgramText() string {
	cells := make([]string, 0, 100)
	for _, c := range searchProgram() {
		cells = append(cells, strconv.Itoa(c))
	}
	return strings.Join(cells, ",") + "\n"
}

func makeSearchConfig(target int, workers uint) *SearchConfig {
	return &SearchConfig{
		Target:    target,
		NounLimit: 100,
		VerbLimit: 100,
		Workers:   workers,
		BatchSize: 7,
	}
}

func TestSearchEngineFindsFirstMatch(t *test.T) {
	engine := NewSearchEngine(searchProgram(), intcode.DefaultMachineConfig(), makeSearchConfig(12014, 4))

	match, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected failure calling SearchEngine.Run(). %v", err)
	}

	if match.Trial.Noun != 5 || match.Trial.Verb != 7 || match.Trial.Index != 507 {
		t.Errorf("SearchEngine found %+v, expected noun [5] verb [7] index [507]", match.Trial)
	}

	if match.Output != 12014 {
		t.Errorf("Match output [%d] is not the target [12014]", match.Output)
	}

	evaluated, skipped := engine.Metrics.Evaluated.Load(), engine.Metrics.Skipped.Load()
	if evaluated+skipped != 10000 {
		t.Errorf("Evaluated [%d] + skipped [%d] trials don't cover the [10000] trial space", evaluated, skipped)
	}
}

func TestSearchEngineAgreesWithSequentialSearch(t *test.T) {
	program := searchProgram()

	for _, target := range []int{12014, 150014, 10021, 198014} {
		for _, workers := range []uint{1, 3, 8} {
			sc := makeSearchConfig(target, workers)

			wantNoun, wantVerb, wantErr := intcode.Search(program, sc.Bounds(), intcode.DefaultMachineConfig())
			match, err := NewSearchEngine(program, intcode.DefaultMachineConfig(), sc).Run(context.Background())

			if (wantErr == nil) != (err == nil) {
				t.Errorf("Target [%d] workers [%d]: sequential err [%v], engine err [%v]", target, workers, wantErr, err)
				continue
			}
			if err != nil {
				continue
			}
			if match.Trial.Noun != wantNoun || match.Trial.Verb != wantVerb {
				t.Errorf("Target [%d] workers [%d]: engine found (%d, %d), sequential found (%d, %d)",
					target, workers, match.Trial.Noun, match.Trial.Verb, wantNoun, wantVerb)
			}
		}
	}
}

func TestSearchEngineNoSolution(t *test.T) {
	engine := NewSearchEngine(searchProgram(), intcode.DefaultMachineConfig(), makeSearchConfig(-1, 4))

	_, err := engine.Run(context.Background())
	if !errors.Is(err, intcode.ErrNoSolution) {
		t.Fatalf("Expected ErrNoSolution, got %v", err)
	}

	if err.Error() != "No noun and verb produce the target output [-1] within [0, 100) x [0, 100)" {
		t.Errorf("Error string doesn't match: %v", err)
	}

	if engine.Metrics.Evaluated.Load() != 10000 {
		t.Errorf("Expected every trial to be evaluated, got [%d]", engine.Metrics.Evaluated.Load())
	}
}

func TestSearchEngineCanceled(t *test.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewSearchEngine(searchProgram(), intcode.DefaultMachineConfig(), makeSearchConfig(12014, 2))
	if _, err := engine.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestTrialLoaderShards(t *test.T) {
	loader := NewTrialLoader(5, 7, 4)

	var indexes []int
	for id := uint(0); id < 3; id++ {
		for batch := range loader(context.Background(), id, 3) {
			if len(batch) > 4 {
				t.Errorf("Batch of [%d] trials exceeds batch size [4]", len(batch))
			}
			for _, trial := range batch {
				if trial.Index%3 != int(id) {
					t.Errorf("Trial index [%d] landed on processor [%d]", trial.Index, id)
				}
				if trial.Noun*7+trial.Verb != trial.Index {
					t.Errorf("Trial %+v has inconsistent noun and verb", trial)
				}
				indexes = append(indexes, trial.Index)
			}
		}
	}

	sort.Ints(indexes)
	if len(indexes) != 35 {
		t.Fatalf("Expected [35] trials, got [%d]", len(indexes))
	}
	for i, idx := range indexes {
		if idx != i {
			t.Fatalf("Trial index [%d] missing or duplicated", i)
		}
	}
}
