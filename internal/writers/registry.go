package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/p-salvatierra/crispr-design/internal/output"
)

// Options apply to every tabular format that can carry a header line.
type Options struct {
	Header bool
}

// ScoredFunc renders the ranked guide table.
type ScoredFunc func(w io.Writer, rows []output.Row, opt Options) error

// AssessedFunc renders the table with off-target columns.
type AssessedFunc func(w io.Writer, rows []output.AssessedRow, opt Options) error

// Writer registries (format → handler), populated from init() blocks in the
// per-format files.
var (
	scored   = map[string]ScoredFunc{}
	assessed = map[string]AssessedFunc{}
)

func registerScored(format string, fn ScoredFunc)     { scored[format] = fn }
func registerAssessed(format string, fn AssessedFunc) { assessed[format] = fn }

// WriteScored dispatches to the registered writer for format.
func WriteScored(format string, w io.Writer, rows []output.Row, opt Options) error {
	fn, ok := scored[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (have: %v)", format, Formats())
	}
	return fn(w, rows, opt)
}

// WriteAssessed dispatches to the registered writer for format.
func WriteAssessed(format string, w io.Writer, rows []output.AssessedRow, opt Options) error {
	fn, ok := assessed[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (have: %v)", format, Formats())
	}
	return fn(w, rows, opt)
}

// Known reports whether format has registered writers.
func Known(format string) bool {
	_, ok := scored[format]
	return ok
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(scored))
	for n := range scored {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
