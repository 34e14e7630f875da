package advent

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"nickandperla.net/advent/intcode"
)

// SearchEngine runs the noun and verb search across several Processors. It
// returns the same pair as intcode.Search: the first match in noun-major
// order.
type SearchEngine struct {
	Processors []*Processor
	Metrics    *SearchMetrics
	Config     *SearchConfig

	best  atomic.Int64
	mu    sync.Mutex
	match *Evaluation
}

func NewSearchEngine(program []int, mc *intcode.MachineConfig, sc *SearchConfig) *SearchEngine {
	workers := sc.Workers
	if workers == 0 {
		workers = 1
	}

	se := &SearchEngine{
		Metrics: &SearchMetrics{},
		Config:  sc,
	}
	se.best.Store(math.MaxInt64)

	loader := NewTrialLoader(sc.NounLimit, sc.VerbLimit, sc.BatchSize)
	selector := NewSelector(sc.Target)

	base := NewEvaluator(program, mc)
	se.Processors = make([]*Processor, workers)
	for i := range se.Processors {
		se.Processors[i] = NewProcessor(loader, se.report, base.Fork(), selector, se.Metrics, &se.best)
	}
	return se
}

func (se *SearchEngine) report(e *Evaluation) {
	se.mu.Lock()
	defer se.mu.Unlock()
	if se.match == nil || e.Trial.Index < se.match.Trial.Index {
		se.match = e
		se.best.Store(int64(e.Trial.Index))
	}
}

func (se *SearchEngine) Run(ctx context.Context) (*Evaluation, error) {
	start := time.Now()

	var wg sync.WaitGroup
	count := uint(len(se.Processors))
	for i, processor := range se.Processors {
		wg.Add(1)
		go func(p *Processor, id, total uint) {
			defer wg.Done()
			p.Run(ctx, id, total)
		}(processor, uint(i), count)
	}

	wg.Wait()
	se.Metrics.Elapsed = time.Since(start)
	log.WithFields(se.Metrics.Fields()).Debug("Search finished")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if se.match == nil {
		return nil, fmt.Errorf("%w [%d] within [0, %d) x [0, %d)", intcode.ErrNoSolution, se.Config.Target, se.Config.NounLimit, se.Config.VerbLimit)
	}
	return se.match, nil
}
