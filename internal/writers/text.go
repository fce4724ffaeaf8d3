package writers

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/p-salvatierra/crispr-design/internal/output"
)

func init() {
	registerScored("text", writeScoredText)
	registerAssessed("text", writeAssessedText)
	registerScored("tsv", writeScoredTSV)
	registerAssessed("tsv", writeAssessedTSV)
}

func scoredFields(r output.Row) []string {
	return []string{
		r.GuideSequence,
		strconv.Itoa(r.PAMSite),
		r.PAMSequence,
		r.Strand,
		r.FullTarget,
		formatFloat(r.GCContent),
		strconv.FormatBool(r.HasPolyT),
		formatFloat(r.Efficiency),
		strconv.Itoa(r.Rank),
	}
}

func assessedFields(r output.AssessedRow) []string {
	return append(scoredFields(r.Row),
		strconv.Itoa(r.NumOffTargets),
		formatFloat(r.RiskScore),
		r.RiskLevel,
	)
}

// formatFloat matches the 2-decimal contract of the scoring fields.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// text: aligned columns for terminals (tabwriter).
func writeScoredText(w io.Writer, rows []output.Row, opt Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if opt.Header {
		fmt.Fprintln(tw, strings.Join(output.ScoredColumns, "\t"))
	}
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(scoredFields(r), "\t"))
	}
	return tw.Flush()
}

func writeAssessedText(w io.Writer, rows []output.AssessedRow, opt Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if opt.Header {
		fmt.Fprintln(tw, strings.Join(output.AssessedColumns, "\t"))
	}
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(assessedFields(r), "\t"))
	}
	return tw.Flush()
}

// tsv: raw tab separation for downstream tools.
func writeScoredTSV(w io.Writer, rows []output.Row, opt Options) error {
	if opt.Header {
		if _, err := fmt.Fprintln(w, strings.Join(output.ScoredColumns, "\t")); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(scoredFields(r), "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeAssessedTSV(w io.Writer, rows []output.AssessedRow, opt Options) error {
	if opt.Header {
		if _, err := fmt.Fprintln(w, strings.Join(output.AssessedColumns, "\t")); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(assessedFields(r), "\t")); err != nil {
			return err
		}
	}
	return nil
}
