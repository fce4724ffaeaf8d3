// Package dna holds the sequence primitives shared by the guide finder and
// the off-target scanner: normalization, alphabet validation and
// reverse-complementing.
package dna

import (
	"fmt"
	"strings"
	"unicode"
)

// Alphabet accepted at the core boundary. N is allowed so that masked or
// ambiguous reference positions pass validation; it never forms a valid PAM
// context on its own.
const Alphabet = "ACGTN"

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// InvalidSequenceError reports the first byte outside the ACGTN alphabet.
type InvalidSequenceError struct {
	Base byte
	Pos  int // 0-based offset in the normalized sequence
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d; allowed: A C G T N", e.Base, e.Pos)
}

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an *InvalidSequenceError if any
// character falls outside ACGTN. An empty sequence is an error.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(Alphabet, rune(s[i])) {
			return "", &InvalidSequenceError{Base: s[i], Pos: i}
		}
	}
	return s, nil
}

// RevComp returns the reverse complement. Bytes outside the alphabet map
// to N rather than panicking; validated input never hits that path.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// RevCompString is the string convenience wrapper around RevComp.
func RevCompString(seq string) string {
	return string(RevComp([]byte(seq)))
}

// GCCount returns the number of G and C bases in seq.
func GCCount(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			n++
		}
	}
	return n
}

// BaseCounts returns per-base totals for A, C, G, T and N.
func BaseCounts(seq string) map[byte]int {
	counts := map[byte]int{'A': 0, 'C': 0, 'G': 0, 'T': 0, 'N': 0}
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	return counts
}
