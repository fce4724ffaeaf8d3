// Package fasta reads FASTA input for the guide designer. The tool works on
// one target sequence at a time, so records are read whole; there is no
// chunked streaming.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadAll parses every record from r. Sequence lines are concatenated
// verbatim; case-normalization and alphabet checks happen at the core
// boundary, not here.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		cur  *Record
		seq  strings.Builder
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Seq = seq.String()
		recs = append(recs, *cur)
		cur = nil
		seq.Reset()
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ";"): // legacy comment lines
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			id := strings.TrimSpace(strings.TrimPrefix(line, ">"))
			if i := strings.IndexAny(id, " \t"); i >= 0 {
				id = id[:i]
			}
			cur = &Record{ID: id}
		default:
			if cur == nil {
				// headerless input: treat as a single anonymous record
				cur = &Record{ID: "seq1"}
			}
			seq.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	if len(recs) == 0 {
		return nil, fmt.Errorf("no FASTA records found")
	}
	return recs, nil
}

// First returns the first record from r. Extra records are legal input but
// ignored; the count of skipped records is returned so callers can warn.
func First(r io.Reader) (Record, int, error) {
	recs, err := ReadAll(r)
	if err != nil {
		return Record{}, 0, err
	}
	return recs[0], len(recs) - 1, nil
}
