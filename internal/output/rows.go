// Package output owns the tabular row model the writers and report render:
// a stable column schema over the core's scored and assessed guides.
package output

import (
	"github.com/p-salvatierra/crispr-design/core/offtarget"
	"github.com/p-salvatierra/crispr-design/core/score"
)

// Row is one ranked guide in the output table.
type Row struct {
	GuideSequence string  `json:"guide_sequence"`
	PAMSite       int     `json:"pam_site"`
	PAMSequence   string  `json:"pam_sequence"`
	Strand        string  `json:"strand"`
	FullTarget    string  `json:"full_target"`
	GCContent     float64 `json:"gc_content"`
	HasPolyT      bool    `json:"has_poly_t"`
	Efficiency    float64 `json:"efficiency_score"`
	Rank          int     `json:"rank"`
}

// AssessedRow augments Row with the off-target columns.
type AssessedRow struct {
	Row
	NumOffTargets int     `json:"num_offtargets"`
	RiskScore     float64 `json:"offtarget_risk_score"`
	RiskLevel     string  `json:"offtarget_risk_level"`
}

// ScoredColumns is the header for Row tables, in emission order.
var ScoredColumns = []string{
	"guide_sequence", "pam_site", "pam_sequence", "strand", "full_target",
	"gc_content", "has_poly_t", "efficiency_score", "rank",
}

// AssessedColumns extends ScoredColumns with the off-target fields.
var AssessedColumns = append(append([]string(nil), ScoredColumns...),
	"num_offtargets", "offtarget_risk_score", "offtarget_risk_level",
)

// FromScored converts one scored guide into a Row.
func FromScored(s score.ScoredGuide) Row {
	return Row{
		GuideSequence: s.Sequence,
		PAMSite:       s.PAMSite,
		PAMSequence:   s.PAMSequence,
		Strand:        s.Strand,
		FullTarget:    s.FullTarget,
		GCContent:     s.GCContent,
		HasPolyT:      s.HasPolyT,
		Efficiency:    s.Efficiency,
		Rank:          s.Rank,
	}
}

// FromAssessed converts one assessed guide into an AssessedRow.
func FromAssessed(a offtarget.Assessed) AssessedRow {
	return AssessedRow{
		Row:           FromScored(a.ScoredGuide),
		NumOffTargets: a.NumOffTargets,
		RiskScore:     a.RiskScore,
		RiskLevel:     a.Level.String(),
	}
}

// ScoredRows maps a scored batch into rows, preserving order.
func ScoredRows(scored []score.ScoredGuide) []Row {
	rows := make([]Row, 0, len(scored))
	for _, s := range scored {
		rows = append(rows, FromScored(s))
	}
	return rows
}

// AssessedRows maps an assessed batch into rows, preserving order.
func AssessedRows(assessed []offtarget.Assessed) []AssessedRow {
	rows := make([]AssessedRow, 0, len(assessed))
	for _, a := range assessed {
		rows = append(rows, FromAssessed(a))
	}
	return rows
}
