// Package score ranks guide candidates with a heuristic efficiency model:
// GC content, poly-T termination signal and position along the target.
package score

import (
	"math"
	"sort"
	"strings"

	"github.com/p-salvatierra/crispr-design/core/dna"
	"github.com/p-salvatierra/crispr-design/core/guide"
)

// PolyTRun is the consecutive-T run length that flags a guide. Four or more
// T's can terminate pol III transcription mid-guide.
const PolyTRun = 4

// ScoredGuide is a guide with its derived scoring fields.
type ScoredGuide struct {
	guide.Guide
	GCContent  float64 // percent, 2 decimals
	HasPolyT   bool
	Efficiency float64 // 0..100, 2 decimals
	Rank       int     // 1-based after descending sort
}

// GCContent returns the percentage of G/C bases, rounded to 2 decimals.
// Empty input scores 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	return round2(float64(dna.GCCount(seq)) / float64(len(seq)) * 100)
}

// HasPolyT reports whether seq contains PolyTRun or more consecutive T's.
func HasPolyT(seq string) bool {
	return strings.Contains(seq, strings.Repeat("T", PolyTRun))
}

// GCScore maps GC percentage onto 0..100. The 40-60% optimum scores 100,
// 30-40 and 60-70 fall off linearly, and anything beyond is penalized hard.
func GCScore(gc float64) float64 {
	switch {
	case gc >= 40 && gc <= 60:
		return 100
	case gc >= 30 && gc < 40:
		return 50 + (gc-30)*5
	case gc > 60 && gc <= 70:
		return 50 + (70-gc)*5
	case gc < 30:
		return math.Max(0, gc*1.67)
	default: // gc > 70
		return math.Max(0, (100-gc)*1.67)
	}
}

// PositionScore favors guides whose PAM falls in the 5' half of the target;
// past the midpoint the score decays linearly from 100 toward 50.
func PositionScore(pamSite, seqLen int) float64 {
	r := float64(pamSite) / float64(seqLen)
	if r <= 0.5 {
		return 100
	}
	return 100 - (r-0.5)*100
}

// Efficiency combines the sub-scores for one guide sequence. seqLen <= 0
// means no position information, in which case the GC score stands alone.
//
// With position information the combination is gc*0.4 + pos*0.3 + 30. The
// flat +30 term and the weights not summing to 1 are inherited from the
// original tool and are part of the scoring contract; do not rebalance.
func Efficiency(seq string, pamSite, seqLen int) float64 {
	gcScore := GCScore(GCContent(seq))

	var overall float64
	if seqLen > 0 {
		overall = gcScore*0.4 + PositionScore(pamSite, seqLen)*0.3 + 30
	} else {
		overall = gcScore
	}
	if HasPolyT(seq) {
		overall -= 30
	}
	return round2(math.Max(0, overall))
}

// ScoreAll derives scoring fields for every guide and returns them sorted
// descending by efficiency. The sort is stable, so equal scores keep
// discovery order; ranks are a contiguous 1..N. Pass seqLen <= 0 to score
// without position information.
func ScoreAll(guides []guide.Guide, seqLen int) []ScoredGuide {
	scored := make([]ScoredGuide, 0, len(guides))
	for _, g := range guides {
		scored = append(scored, ScoredGuide{
			Guide:      g,
			GCContent:  GCContent(g.Sequence),
			HasPolyT:   HasPolyT(g.Sequence),
			Efficiency: Efficiency(g.Sequence, g.PAMSite, seqLen),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Efficiency > scored[j].Efficiency
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// Top returns the first n guides at or above minScore. The input must
// already be sorted by ScoreAll. n <= 0 means no count limit.
func Top(scored []ScoredGuide, n int, minScore float64) []ScoredGuide {
	var out []ScoredGuide
	for _, s := range scored {
		if s.Efficiency < minScore {
			continue
		}
		out = append(out, s)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
