package dna

import (
	"bytes"
	"errors"
	"testing"
)

func TestRevCompSimple(t *testing.T) {
	got := RevComp([]byte("AGTC"))
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AGTC) = %s, want %s", got, want)
	}
}

func TestRevCompN(t *testing.T) {
	if got := RevCompString("ANGT"); got != "ACNT" {
		t.Errorf("RevCompString(ANGT) = %s, want ACNT", got)
	}
}

func TestRevCompEmpty(t *testing.T) {
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
	if out := RevComp([]byte("")); len(out) != 0 {
		t.Errorf("RevComp(\"\") length = %d, want 0", len(out))
	}
}

func TestRevCompInvolution(t *testing.T) {
	in := "ATGCATTTGCAGGACCTNAT"
	if got := RevCompString(RevCompString(in)); got != in {
		t.Errorf("RevComp(RevComp(%s)) = %s", in, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"atgc", "ATGC", false},
		{" AT GC\n", "ATGC", false},
		{"ATGNC", "ATGNC", false},
		{"ATGXC", "", true},
		{"", "", true},
		{"  ", "", true},
	}
	for _, tc := range tests {
		got, err := Validate(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Errorf("Validate(%q) err = %v, wantErr %v", tc.raw, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Validate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestValidateErrorDetail(t *testing.T) {
	_, err := Validate("ATGZC")
	var ise *InvalidSequenceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected *InvalidSequenceError, got %v", err)
	}
	if ise.Base != 'Z' || ise.Pos != 3 {
		t.Errorf("got base %q at %d, want Z at 3", ise.Base, ise.Pos)
	}
}

func TestGCCount(t *testing.T) {
	tests := []struct {
		seq  string
		want int
	}{
		{"ATGC", 2},
		{"GGGG", 4},
		{"AAAA", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := GCCount(tc.seq); got != tc.want {
			t.Errorf("GCCount(%q) = %d, want %d", tc.seq, got, tc.want)
		}
	}
}

func TestBaseCounts(t *testing.T) {
	got := BaseCounts("AATGCN")
	if got['A'] != 2 || got['T'] != 1 || got['G'] != 1 || got['C'] != 1 || got['N'] != 1 {
		t.Errorf("BaseCounts(AATGCN) = %v", got)
	}
}
