package writers

import (
	"encoding/csv"
	"io"

	"github.com/p-salvatierra/crispr-design/internal/output"
)

func init() {
	registerScored("csv", writeScoredCSV)
	registerAssessed("csv", writeAssessedCSV)
}

func writeScoredCSV(w io.Writer, rows []output.Row, opt Options) error {
	cw := csv.NewWriter(w)
	if opt.Header {
		if err := cw.Write(output.ScoredColumns); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := cw.Write(scoredFields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeAssessedCSV(w io.Writer, rows []output.AssessedRow, opt Options) error {
	cw := csv.NewWriter(w)
	if opt.Header {
		if err := cw.Write(output.AssessedColumns); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := cw.Write(assessedFields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
