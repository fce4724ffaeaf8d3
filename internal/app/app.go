// Package app wires the core pipeline together for the CLI: resolve the
// target sequence, find and score guides, optionally assess off-target risk,
// and hand the table to a writer.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/p-salvatierra/crispr-design/core/dna"
	"github.com/p-salvatierra/crispr-design/core/fasta"
	"github.com/p-salvatierra/crispr-design/core/guide"
	"github.com/p-salvatierra/crispr-design/core/offtarget"
	"github.com/p-salvatierra/crispr-design/core/score"
	"github.com/p-salvatierra/crispr-design/internal/config"
	"github.com/p-salvatierra/crispr-design/internal/output"
	"github.com/p-salvatierra/crispr-design/internal/writers"
)

// Process exit codes, stable for scripting.
const (
	ExitOK       = 0
	ExitNoGuides = 1 // clean run, empty result
	ExitUsage    = 2 // bad flags or bad input sequence
	ExitIO       = 3 // read/write failure
)

// Options are the per-run settings resolved from flags and config.
type Options struct {
	Sequence  string // inline target sequence
	FastaPath string // FASTA file path, "-" for stdin; exclusive with Sequence

	Output string // text | tsv | csv | json
	Header bool

	Top      int     // cap on ranked guides; 0 = all
	MinScore float64 // efficiency floor for selection

	Assess        bool // run off-target assessment on the selection
	MaxMismatches int
	MaxRisk       string
	Workers       int

	ReportJSON bool // report command: JSON (with chart data) instead of text
	Quiet      bool
}

// NewLogger returns the app's stderr logger; quiet drops info chatter.
func NewLogger(stderr io.Writer, quiet bool) *slog.Logger {
	lvl := slog.LevelInfo
	if quiet {
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
}

// target resolves the input sequence from Options.
func target(opts Options) (id, seq string, err error) {
	switch {
	case opts.Sequence != "" && opts.FastaPath != "":
		return "", "", fmt.Errorf("provide a sequence argument or --fasta, not both")
	case opts.Sequence != "":
		return "input", opts.Sequence, nil
	case opts.FastaPath != "":
		rec, skipped, err := fasta.ReadFile(opts.FastaPath)
		if err != nil {
			return "", "", err
		}
		if skipped > 0 {
			return rec.ID, rec.Seq, &extraRecordsError{rec: rec, skipped: skipped}
		}
		return rec.ID, rec.Seq, nil
	default:
		return "", "", fmt.Errorf("no target sequence: pass one as an argument or via --fasta")
	}
}

// extraRecordsError is a warning carrier, not a failure: the first record is
// still usable.
type extraRecordsError struct {
	rec     fasta.Record
	skipped int
}

func (e *extraRecordsError) Error() string {
	return fmt.Sprintf("FASTA has %d extra record(s); using the first (%s)", e.skipped, e.rec.ID)
}

// analyze runs find + score on a normalized sequence and applies the
// Top/MinScore selection.
func analyze(cfg config.Config, opts Options, seq string) ([]score.ScoredGuide, error) {
	finder := guide.Finder{GuideLength: cfg.Guide.Length, PAM: cfg.Guide.PAM}
	guides, err := finder.FindAll(seq)
	if err != nil {
		return nil, err
	}
	scored := score.ScoreAll(guides, len(seq))
	if opts.Top > 0 || opts.MinScore > 0 {
		scored = score.Top(scored, opts.Top, opts.MinScore)
	}
	return scored, nil
}

// Run executes the find/assess pipeline and writes the table to stdout.
// It returns a process exit code; diagnostics go to the logger on stderr.
func Run(ctx context.Context, cfg config.Config, opts Options, stdout, stderr io.Writer) int {
	log := NewLogger(stderr, opts.Quiet)

	id, seq, err := target(opts)
	if ee, ok := err.(*extraRecordsError); ok {
		log.Warn(ee.Error())
	} else if err != nil {
		log.Error(err.Error())
		return ExitUsage
	}
	seq = dna.Normalize(seq) // coordinates are relative to the normalized sequence

	scored, err := analyze(cfg, opts, seq)
	if err != nil {
		log.Error("invalid target sequence", "err", err)
		return ExitUsage
	}
	log.Info("guides found", "sequence", id, "length", len(seq), "guides", len(scored))

	var werr error
	emitted := len(scored)
	if opts.Assess {
		analyzer := &offtarget.Analyzer{
			MaxMismatches: opts.MaxMismatches,
			Workers:       opts.Workers,
			Progress: func(done, total int) {
				if done == total || done%25 == 0 {
					log.Info("off-target assessment", "done", done, "total", total)
				}
			},
		}
		assessed, err := analyzer.AssessBatch(ctx, scored, seq)
		if err != nil {
			log.Error("off-target assessment failed", "err", err)
			return ExitIO
		}
		maxRisk, err := offtarget.ParseLevel(opts.MaxRisk)
		if err != nil {
			log.Error(err.Error())
			return ExitUsage
		}
		kept := offtarget.FilterByRisk(assessed, maxRisk)
		log.Info("risk filter", "kept", len(kept), "of", len(assessed), "ceiling", maxRisk.String())

		emitted = len(kept)
		werr = writers.WriteAssessed(opts.Output, stdout, output.AssessedRows(kept), writers.Options{Header: opts.Header})
	} else {
		werr = writers.WriteScored(opts.Output, stdout, output.ScoredRows(scored), writers.Options{Header: opts.Header})
	}

	if writers.IsBrokenPipe(werr) {
		return ExitOK
	}
	if werr != nil {
		log.Error("write failed", "err", werr)
		return ExitIO
	}
	if emitted == 0 {
		log.Info("no guides meet the criteria")
		return ExitNoGuides
	}
	return ExitOK
}

// RunReport writes the plain-text or JSON summary report for a target.
func RunReport(_ context.Context, cfg config.Config, opts Options, stdout, stderr io.Writer) int {
	log := NewLogger(stderr, opts.Quiet)

	id, seq, err := target(opts)
	if ee, ok := err.(*extraRecordsError); ok {
		log.Warn(ee.Error())
	} else if err != nil {
		log.Error(err.Error())
		return ExitUsage
	}
	seq = dna.Normalize(seq)

	scored, err := analyze(cfg, opts, seq)
	if err != nil {
		log.Error("invalid target sequence", "err", err)
		return ExitUsage
	}

	rows := output.ScoredRows(scored)
	rep := output.BuildReport(id, seq, rows)
	if opts.ReportJSON {
		chart := output.BuildChart(rows)
		rep.Chart = &chart
		werr := output.WriteJSONReport(stdout, rep)
		if writers.IsBrokenPipe(werr) {
			return ExitOK
		}
		if werr != nil {
			log.Error("write failed", "err", werr)
			return ExitIO
		}
	} else {
		werr := output.WriteReport(stdout, rep)
		if writers.IsBrokenPipe(werr) {
			return ExitOK
		}
		if werr != nil {
			log.Error("write failed", "err", werr)
			return ExitIO
		}
	}
	if len(rows) == 0 {
		return ExitNoGuides
	}
	return ExitOK
}
