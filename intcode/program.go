package intcode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	DEFAULT_NOUN       = 12
	DEFAULT_VERB       = 2
	DEFAULT_TARGET     = 19690720
	DEFAULT_INPUT_SIZE = 100
)

var ErrNoSolution = errors.New("No noun and verb produce the target output")

// ParseProgram reads comma and newline separated integers.
func ParseProgram(r io.Reader) ([]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Failed to read program: %w", err)
	}

	fields := strings.FieldsFunc(string(raw), func(c rune) bool {
		return c == ',' || c == '\n' || c == '\r'
	})

	program := make([]int, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse program. Token [%s] at position [%d] is not an integer", field, i)
		}
		program = append(program, n)
	}

	if len(program) == 0 {
		return nil, fmt.Errorf("Failed to parse program. Input is empty")
	}

	return program, nil
}

// RunProgram runs a copy of program with noun and verb in place and returns
// memory[0]. The caller's slice is left untouched.
func RunProgram(program []int, noun, verb int) (int, error) {
	m := NewMachine(DefaultMachineConfig())
	m.LoadProgram(program)
	return m.RunWithInputs(noun, verb)
}

type SearchConfig struct {
	Target    int `toml:"target"`
	NounLimit int `toml:"noun_limit"`
	VerbLimit int `toml:"verb_limit"`
}

func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		Target:    DEFAULT_TARGET,
		NounLimit: DEFAULT_INPUT_SIZE,
		VerbLimit: DEFAULT_INPUT_SIZE,
	}
}

// FindNounVerb tries every noun and verb in [0,100), noun-major, and returns
// the first pair whose run outputs target.
func FindNounVerb(program []int, target int) (int, int, error) {
	sc := DefaultSearchConfig()
	sc.Target = target
	return Search(program, sc, DefaultMachineConfig())
}

// Search is FindNounVerb with configurable bounds. Trials that fail to run
// are not matches.
func Search(program []int, sc *SearchConfig, mc *MachineConfig) (int, int, error) {
	m := NewMachine(mc)
	m.LoadProgram(program)

	for noun := 0; noun < sc.NounLimit; noun++ {
		for verb := 0; verb < sc.VerbLimit; verb++ {
			out, err := m.RunWithInputs(noun, verb)
			if err != nil {
				continue
			}
			if out == sc.Target {
				return noun, verb, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("%w [%d] within [0, %d) x [0, %d)", ErrNoSolution, sc.Target, sc.NounLimit, sc.VerbLimit)
}

func Answer(noun, verb int) int {
	return 100*noun + verb
}
