// Package offtarget estimates unintended-cleavage risk by brute-force
// similarity search: every window of the target (both strands) within a
// mismatch budget of the guide is a potential off-target site.
package offtarget

import (
	"fmt"

	"github.com/p-salvatierra/crispr-design/core/dna"
)

// DefaultMaxMismatches is the usual concern threshold for Cas9 off-targets.
const DefaultMaxMismatches = 4

// Site is one near-match of a guide elsewhere in the target.
type Site struct {
	Position   int    // forward-strand coordinate of the window start
	Sequence   string // the matched window as scanned
	Mismatches int    // 1..maxMismatches; 0 (the on-target site) is excluded
	Strand     string // "+" or "-"
}

// Per-site weights by mismatch count. Closer matches cut more readily and
// dominate the aggregate risk.
var mismatchWeights = map[int]float64{
	1: 50,
	2: 25,
	3: 10,
	4: 5,
}

// MismatchCount returns the Hamming distance between equal-length sequences.
// ok is false when the lengths differ; such pairs are not comparable and
// never fit any mismatch budget.
func MismatchCount(a, b string) (n int, ok bool) {
	if len(a) != len(b) {
		return 0, false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n, true
}

// FindSimilar slides the guide across every window of target on both
// strands and records windows with 0 < mismatches <= maxMM. The perfect
// match is the on-target site and is excluded. Reverse-strand hits are
// mapped back to forward coordinates (len(target) - i - guideLen). Inputs
// are uppercased; strand scan order is forward then reverse.
func FindSimilar(guideSeq, target string, maxMM int) []Site {
	guideSeq = dna.Normalize(guideSeq)
	target = dna.Normalize(target)
	gl := len(guideSeq)
	if gl == 0 || len(target) < gl {
		return nil
	}

	var sites []Site
	scan := func(seq, strand string, mapPos func(int) int) {
		for i := 0; i+gl <= len(seq); i++ {
			window := seq[i : i+gl]
			mm, ok := MismatchCount(guideSeq, window)
			if !ok || mm == 0 || mm > maxMM {
				continue
			}
			sites = append(sites, Site{
				Position:   mapPos(i),
				Sequence:   window,
				Mismatches: mm,
				Strand:     strand,
			})
		}
	}

	scan(target, "+", func(i int) int { return i })
	scan(dna.RevCompString(target), "-", func(i int) int { return len(target) - i - gl })
	return sites
}

// RiskScore sums the per-site weights. Unweighted mismatch counts (outside
// 1..4) contribute nothing.
func RiskScore(sites []Site) float64 {
	total := 0.0
	for _, s := range sites {
		total += mismatchWeights[s.Mismatches]
	}
	return total
}

// Level is an ordinal risk bucket; higher means riskier.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelVeryHigh
)

var levelNames = [...]string{"None", "Low", "Medium", "High", "Very High"}

func (l Level) String() string {
	if l < LevelNone || l > LevelVeryHigh {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel maps a level name back to its ordinal.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return LevelNone, fmt.Errorf("unknown risk level %q (use None, Low, Medium, High or Very High)", s)
}

// Bucket maps a risk score onto a Level. Thresholds are monotone, so a
// higher score never yields a lower level.
func Bucket(score float64) Level {
	switch {
	case score == 0:
		return LevelNone
	case score < 25:
		return LevelLow
	case score < 100:
		return LevelMedium
	case score < 200:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// Assessment is the aggregated off-target picture for one guide.
type Assessment struct {
	Sites         []Site
	RiskScore     float64
	Level         Level
	NumOffTargets int
}

// Assess runs the full off-target assessment of one guide against target.
func Assess(guideSeq, target string, maxMM int) Assessment {
	sites := FindSimilar(guideSeq, target, maxMM)
	score := RiskScore(sites)
	return Assessment{
		Sites:         sites,
		RiskScore:     score,
		Level:         Bucket(score),
		NumOffTargets: len(sites),
	}
}
