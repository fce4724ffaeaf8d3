package writers

import (
	"encoding/json"
	"io"

	"github.com/p-salvatierra/crispr-design/internal/output"
)

func init() {
	registerScored("json", func(w io.Writer, rows []output.Row, _ Options) error {
		return writeJSON(w, rows)
	})
	registerAssessed("json", func(w io.Writer, rows []output.AssessedRow, _ Options) error {
		return writeJSON(w, rows)
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
