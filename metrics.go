package advent

import (
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// SearchMetrics counts what the processors did during one search. Counters
// are updated concurrently.
type SearchMetrics struct {
	Evaluated            atomic.Uint64
	Failed               atomic.Uint64
	Skipped              atomic.Uint64
	InstructionsExecuted atomic.Uint64
	Elapsed              time.Duration
}

func (m *SearchMetrics) Record(e *Evaluation) {
	m.Evaluated.Add(1)
	m.InstructionsExecuted.Add(uint64(e.InstructionsExecuted))
	if !e.MachineRun {
		m.Failed.Add(1)
		log.WithFields(log.Fields{
			"noun": e.Trial.Noun,
			"verb": e.Trial.Verb,
		}).Debugf("Trial failed: %v", e.MachineError)
	}
}

func (m *SearchMetrics) Fields() log.Fields {
	return log.Fields{
		"evaluated":    m.Evaluated.Load(),
		"failed":       m.Failed.Load(),
		"skipped":      m.Skipped.Load(),
		"instructions": m.InstructionsExecuted.Load(),
		"elapsed":      m.Elapsed,
	}
}
