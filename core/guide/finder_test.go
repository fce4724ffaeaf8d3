package guide

import (
	"reflect"
	"strings"
	"testing"

	"github.com/p-salvatierra/crispr-design/core/dna"
)

func TestFindPAMSites(t *testing.T) {
	f := NewFinder()
	tests := []struct {
		seq  string
		want []int
	}{
		{"AGGT", []int{0}},    // A-GG at 0
		{"TGGG", []int{0, 1}}, // overlapping windows each count
		{"ACGT", nil},
		{"GG", nil}, // too short for N+GG
		{"AGGAGG", []int{0, 3}},
	}
	for _, tc := range tests {
		got := f.FindPAMSites(tc.seq)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("FindPAMSites(%q) = %v, want %v", tc.seq, got, tc.want)
		}
	}
}

func TestFindPAMSitesExhaustive(t *testing.T) {
	// Every offset with GG at i+1..i+2 is a site; no others are.
	f := NewFinder()
	seq := "GGGATCGGAGGTTGG"
	sites := map[int]bool{}
	for _, i := range f.FindPAMSites(seq) {
		sites[i] = true
	}
	for i := 0; i+3 <= len(seq); i++ {
		want := seq[i+1:i+3] == "GG"
		if sites[i] != want {
			t.Errorf("offset %d: reported %v, want %v", i, sites[i], want)
		}
	}
}

func TestExtract(t *testing.T) {
	f := NewFinder()
	seq := strings.Repeat("A", 20) + "TGG"
	g, ok := f.Extract(seq, 20)
	if !ok || g != strings.Repeat("A", 20) {
		t.Fatalf("Extract = %q, %v", g, ok)
	}
	if _, ok := f.Extract(seq, 19); ok {
		t.Errorf("Extract should refuse a PAM with <20 upstream bases")
	}
}

func TestFindAllForward(t *testing.T) {
	f := NewFinder()
	// 20 A's, then TGG: one forward guide with PAM at 20.
	seq := strings.Repeat("A", 20) + "TGG"
	guides, err := f.FindAll(seq)
	if err != nil {
		t.Fatal(err)
	}
	var fwd []Guide
	for _, g := range guides {
		if g.Strand == StrandPlus {
			fwd = append(fwd, g)
		}
	}
	if len(fwd) != 1 {
		t.Fatalf("got %d forward guides, want 1 (%v)", len(fwd), fwd)
	}
	g := fwd[0]
	if g.Sequence != strings.Repeat("A", 20) || g.PAMSite != 20 || g.PAMSequence != "TGG" {
		t.Errorf("unexpected guide %+v", g)
	}
	if g.FullTarget != g.Sequence+g.PAMSequence || len(g.FullTarget) != 23 {
		t.Errorf("bad full target %q", g.FullTarget)
	}
}

func TestFindAllInvariants(t *testing.T) {
	f := NewFinder()
	seq := "ATGCATGCATGCATGCATGCAGGCTAGCTAGCTAGCTAGCCCATTGGA"
	guides, err := f.FindAll(seq)
	if err != nil {
		t.Fatal(err)
	}
	if len(guides) == 0 {
		t.Fatal("expected guides")
	}
	sawMinus := false
	for _, g := range guides {
		if len(g.Sequence) != 20 {
			t.Errorf("guide %q: length %d", g.Sequence, len(g.Sequence))
		}
		if !strings.HasSuffix(g.PAMSequence, "GG") {
			t.Errorf("PAM %q does not end in GG", g.PAMSequence)
		}
		if g.PAMSite < 0 || g.PAMSite+3 > len(seq) {
			t.Errorf("PAM site %d out of bounds", g.PAMSite)
		}
		if g.Strand == StrandMinus {
			sawMinus = true
		} else if sawMinus {
			t.Error("forward guide after reverse guide; strand ordering broken")
		}
	}
}

func TestFindAllReverseRoundTrip(t *testing.T) {
	// Re-scanning the reverse complement of [pos, pos+23) forward must
	// reproduce the reverse-strand guide/PAM pair.
	f := NewFinder()
	seq := "CCTAAAAAAAAAAAAAAAAAAAAATGCATGCATGCATGCATGC"
	guides, err := f.FindAll(seq)
	if err != nil {
		t.Fatal(err)
	}
	checked := 0
	for _, g := range guides {
		if g.Strand != StrandMinus {
			continue
		}
		region := seq[g.PAMSite : g.PAMSite+23]
		again, err := f.FindAll(dna.RevCompString(region))
		if err != nil {
			t.Fatal(err)
		}
		found := false
		for _, r := range again {
			if r.Strand == StrandPlus && r.Sequence == g.Sequence && r.PAMSequence == g.PAMSequence {
				found = true
			}
		}
		if !found {
			t.Errorf("reverse guide %+v not reproduced by forward re-scan", g)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("test sequence produced no reverse-strand guides")
	}
}

func TestFindAllShortSequence(t *testing.T) {
	f := NewFinder()
	guides, err := f.FindAll("ATGGATGG")
	if err != nil {
		t.Fatal(err)
	}
	if len(guides) != 0 {
		t.Errorf("short sequence should yield no guides, got %v", guides)
	}
}

func TestFindAllInvalidInput(t *testing.T) {
	f := NewFinder()
	if _, err := f.FindAll("ATGQ" + strings.Repeat("A", 30)); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestFindAllLowercase(t *testing.T) {
	f := NewFinder()
	up, err := f.FindAll(strings.Repeat("A", 20) + "TGG")
	if err != nil {
		t.Fatal(err)
	}
	low, err := f.FindAll(strings.Repeat("a", 20) + "tgg")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(up, low) {
		t.Errorf("case normalization broken: %v vs %v", up, low)
	}
}
