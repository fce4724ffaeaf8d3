// Package guide locates SpCas9 target candidates: every NGG PAM context on
// either strand with a full-length protospacer upstream of it.
package guide

import (
	"github.com/p-salvatierra/crispr-design/core/dna"
)

// Strand markers recorded on guides; reverse-strand guides carry
// forward-strand PAM coordinates.
const (
	StrandPlus  = "+"
	StrandMinus = "-"
)

// Guide is one candidate guide RNA.
type Guide struct {
	Sequence    string // protospacer, Finder.GuideLength bases, 5'→3'
	PAMSite     int    // 0-based PAM offset in forward-strand coordinates
	PAMSequence string // the 3-base NGG context as matched
	Strand      string // "+" or "-"
	FullTarget  string // Sequence + PAMSequence
}

// Finder scans for PAM sites and extracts upstream guides.
type Finder struct {
	GuideLength int
	PAM         string // the constrained tail of the motif; "GG" for NGG
}

// NewFinder returns a Finder with SpCas9 defaults (20 nt guide, NGG PAM).
func NewFinder() Finder {
	return Finder{GuideLength: 20, PAM: "GG"}
}

// pamSpan is the full motif width: one unconstrained base plus the tail.
func (f Finder) pamSpan() int { return len(f.PAM) + 1 }

// FindPAMSites returns every offset i where seq[i+1:i+3] == "GG". The base
// at i itself is the N of NGG and is unconstrained. seq must already be
// uppercase.
func (f Finder) FindPAMSites(seq string) []int {
	var sites []int
	span := f.pamSpan()
	for i := 0; i+span <= len(seq); i++ {
		if seq[i+1:i+span] == f.PAM {
			sites = append(sites, i)
		}
	}
	return sites
}

// Extract returns the GuideLength bases immediately upstream of pamPos, or
// false when the PAM sits too close to the 5' end for a full guide.
func (f Finder) Extract(seq string, pamPos int) (string, bool) {
	start := pamPos - f.GuideLength
	if start < 0 || pamPos > len(seq) {
		return "", false
	}
	return seq[start:pamPos], true
}

// FindAll scans both strands of sequence for guides. The input is validated
// (ACGTN after normalization) and rejected with a typed error otherwise.
// Forward-strand guides come first, then reverse-strand guides; within a
// strand, increasing scan offset. Reverse hits are reported in
// forward-strand coordinates (originalPos = len(seq) - pamPos - 3).
// A sequence too short to hold guide+PAM yields an empty result, not an
// error.
func (f Finder) FindAll(sequence string) ([]Guide, error) {
	seq, err := dna.Validate(sequence)
	if err != nil {
		return nil, err
	}

	span := f.pamSpan()
	guides := f.scanInto(nil, seq, StrandPlus, func(pamPos int) int { return pamPos })

	rev := dna.RevCompString(seq)
	guides = f.scanInto(guides, rev, StrandMinus, func(pamPos int) int {
		return len(seq) - pamPos - span
	})
	return guides, nil
}

// scanInto appends guides found on seq to dst. mapPos converts a scan offset
// on seq into the coordinate recorded on the guide.
func (f Finder) scanInto(dst []Guide, seq, strand string, mapPos func(int) int) []Guide {
	span := f.pamSpan()
	for _, pamPos := range f.FindPAMSites(seq) {
		g, ok := f.Extract(seq, pamPos)
		if !ok {
			continue
		}
		pam := seq[pamPos : pamPos+span]
		dst = append(dst, Guide{
			Sequence:    g,
			PAMSite:     mapPos(pamPos),
			PAMSequence: pam,
			Strand:      strand,
			FullTarget:  g + pam,
		})
	}
	return dst
}
