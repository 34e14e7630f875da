package advent

import (
	"context"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// TrialLoader streams the batches of trials that processor id (of total)
// should evaluate. The channel is closed once the shard is exhausted.
type TrialLoader func(ctx context.Context, id, total uint) <-chan []Trial

// TrialReporter receives every evaluation the Selector accepts.
type TrialReporter func(*Evaluation)

// NewTrialLoader shards the noun-major trial space round robin, so processor
// id gets trial indexes id, id+total, id+2*total, ...
func NewTrialLoader(nounLimit, verbLimit int, batchSize uint) TrialLoader {
	if batchSize == 0 {
		batchSize = DEFAULT_BATCH_SIZE
	}
	return func(ctx context.Context, id, total uint) <-chan []Trial {
		out := make(chan []Trial)
		go func() {
			defer close(out)
			count := nounLimit * verbLimit
			batch := make([]Trial, 0, batchSize)
			for i := int(id); i < count; i += int(total) {
				batch = append(batch, Trial{Index: i, Noun: i / verbLimit, Verb: i % verbLimit})
				if uint(len(batch)) == batchSize {
					select {
					case out <- batch:
					case <-ctx.Done():
						return
					}
					batch = make([]Trial, 0, batchSize)
				}
			}
			if len(batch) > 0 {
				select {
				case out <- batch:
				case <-ctx.Done():
				}
			}
		}()
		return out
	}
}

type Processor struct {
	Input     TrialLoader
	Report    TrialReporter
	Evaluator *Evaluator
	Selector  *Selector
	Metrics   *SearchMetrics
	// Trials past this index can't improve on a match already found.
	best *atomic.Int64
}

func (p *Processor) Run(ctx context.Context, id, total uint) {
	input := p.Input(ctx, id, total)
FOR:
	for {
		select {
		case trials := <-input:
			if trials == nil {
				log.Debugf("Closing processor %d", id)
				break FOR
			}
			for _, trial := range trials {
				if int64(trial.Index) > p.best.Load() {
					p.Metrics.Skipped.Add(1)
					continue
				}
				eval := p.Evaluator.Evaluate(trial)
				p.Metrics.Record(eval)
				if reason := p.Selector.Select(eval); reason == 0 {
					p.Report(eval)
				}
			}
		case <-ctx.Done():
			break FOR
		}
	}
}

func NewProcessor(loader TrialLoader, reporter TrialReporter, evaluator *Evaluator, selector *Selector, metrics *SearchMetrics, best *atomic.Int64) *Processor {
	return &Processor{
		Input:     loader,
		Report:    reporter,
		Evaluator: evaluator,
		Selector:  selector,
		Metrics:   metrics,
		best:      best,
	}
}
