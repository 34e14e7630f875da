package advent

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Solve runs p on input and logs each answer. When persist is non-nil the
// answers are recorded, and a change from the last answer for the same input
// is logged as a warning.
func Solve(ctx context.Context, tc *ToolConfig, p *Puzzle, input []byte, persist *Persistence) ([]*Answer, error) {
	start := time.Now()
	values, err := p.Solve(ctx, tc, input)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("Puzzle [%s] failed: %w", p.Name, err)
	}

	digest := InputDigest(input)
	answers := make([]*Answer, len(values))
	for i, v := range values {
		answers[i] = NewAnswer(p, uint(i+1), v, digest, elapsed)
		log.WithFields(log.Fields{
			"puzzle":  p.Name,
			"day":     p.Day,
			"part":    i + 1,
			"answer":  v,
			"elapsed": elapsed,
		}).Info("Solved")
	}

	if persist == nil {
		return answers, nil
	}

	for _, a := range answers {
		prev, err := persist.Latest(a.Puzzle, a.Part, a.InputDigest)
		if err != nil {
			return answers, err
		}
		if prev != nil && prev.Value != a.Value {
			log.Warnf("Puzzle [%s] part [%d] answer changed from [%d] to [%d] for the same input", a.Puzzle, a.Part, prev.Value, a.Value)
		}
	}

	if err := persist.SaveAnswers(answers); err != nil {
		return answers, err
	}
	return answers, nil
}

func SolveFile(ctx context.Context, tc *ToolConfig, p *Puzzle, path string, persist *Persistence) ([]*Answer, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to read puzzle input: %w", err)
	}
	return Solve(ctx, tc, p, input, persist)
}

// OpenPersistence opens the configured database, or returns nil when
// persistence isn't configured.
func OpenPersistence(tc *ToolConfig) (*Persistence, error) {
	if tc.Persistence == nil {
		return nil, nil
	}
	return NewPersistence(tc.Persistence)
}
