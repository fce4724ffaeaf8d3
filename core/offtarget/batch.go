package offtarget

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/p-salvatierra/crispr-design/core/score"
)

// Assessed is a scored guide with its off-target assessment attached.
type Assessed struct {
	score.ScoredGuide
	Assessment
}

// Analyzer runs batch off-target assessment. Each guide is independent, so
// the batch fans out over a bounded worker pool. The Analyzer enforces no
// limit on batch size; callers bound the input (cost per guide is
// O(len(target) * guideLen)).
type Analyzer struct {
	MaxMismatches int
	Workers       int // <=0 means NumCPU

	// Progress, when non-nil, is called after each completed guide with
	// (done, total). Calls may come from multiple goroutines.
	Progress func(done, total int)
}

// NewAnalyzer returns an Analyzer with the default mismatch budget.
func NewAnalyzer() *Analyzer {
	return &Analyzer{MaxMismatches: DefaultMaxMismatches}
}

// Assess assesses a single guide with the analyzer's mismatch budget.
func (a *Analyzer) Assess(guideSeq, target string) Assessment {
	return Assess(guideSeq, target, a.MaxMismatches)
}

// AssessBatch assesses every guide against target. Results keep the input
// order regardless of worker scheduling. Cancellation of ctx aborts the
// batch and returns ctx.Err().
func (a *Analyzer) AssessBatch(ctx context.Context, guides []score.ScoredGuide, target string) ([]Assessed, error) {
	out := make([]Assessed, len(guides))

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range guides {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Assessed{
				ScoredGuide: guides[i],
				Assessment:  a.Assess(guides[i].Sequence, target),
			}
			if a.Progress != nil {
				mu.Lock()
				done++
				a.Progress(done, len(guides))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterByRisk keeps only guides whose risk level is at or below max.
func FilterByRisk(assessed []Assessed, max Level) []Assessed {
	var out []Assessed
	for _, a := range assessed {
		if a.Level <= max {
			out = append(out, a)
		}
	}
	return out
}
