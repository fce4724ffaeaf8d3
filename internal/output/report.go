package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/p-salvatierra/crispr-design/core/dna"
	"github.com/p-salvatierra/crispr-design/core/score"
)

// ReportTopN is how many leading guides the summary report lists.
const ReportTopN = 5

// Report is the plain-text/JSON summary of one analysis run.
type Report struct {
	SequenceID  string         `json:"sequence_id"`
	Length      int            `json:"length"`
	GCContent   float64        `json:"gc_content"`
	BaseCounts  map[string]int `json:"base_counts"`
	TotalGuides int            `json:"total_guides"`
	Top         []Row          `json:"top_guides"`
	Chart       *Chart         `json:"chart,omitempty"`
}

// BuildReport assembles a Report from the validated target sequence and its
// full ranked guide table.
func BuildReport(id, seq string, rows []Row) Report {
	counts := map[string]int{}
	for b, n := range dna.BaseCounts(seq) {
		counts[string(b)] = n
	}
	top := rows
	if len(top) > ReportTopN {
		top = top[:ReportTopN]
	}
	return Report{
		SequenceID:  id,
		Length:      len(seq),
		GCContent:   score.GCContent(seq),
		BaseCounts:  counts,
		TotalGuides: len(rows),
		Top:         top,
	}
}

// WriteReport renders the report as plain text.
func WriteReport(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "CRISPR guide design report\n")
	fmt.Fprintf(&b, "==========================\n\n")
	fmt.Fprintf(&b, "Sequence:     %s\n", r.SequenceID)
	fmt.Fprintf(&b, "Length:       %d bp\n", r.Length)
	fmt.Fprintf(&b, "GC content:   %.2f%%\n", r.GCContent)
	fmt.Fprintf(&b, "Base counts:  A=%d C=%d G=%d T=%d N=%d\n",
		r.BaseCounts["A"], r.BaseCounts["C"], r.BaseCounts["G"], r.BaseCounts["T"], r.BaseCounts["N"])
	fmt.Fprintf(&b, "Guides found: %d\n\n", r.TotalGuides)

	if len(r.Top) == 0 {
		fmt.Fprintf(&b, "No guides found.\n")
	} else {
		fmt.Fprintf(&b, "Top %d guides:\n", len(r.Top))
		for _, row := range r.Top {
			fmt.Fprintf(&b, "  %2d. %s %s  %s  pos %-6d score %6.2f\n",
				row.Rank, row.GuideSequence, row.PAMSequence, row.Strand, row.PAMSite, row.Efficiency)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSONReport renders the report (including any attached chart data)
// as indented JSON.
func WriteJSONReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
