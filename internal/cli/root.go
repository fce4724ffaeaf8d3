// Package cli is for command line interactions with the crispr-design
// application.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/p-salvatierra/crispr-design/internal/app"
	"github.com/p-salvatierra/crispr-design/internal/config"
	"github.com/p-salvatierra/crispr-design/internal/version"
)

var (
	settings *viper.Viper

	settingsFile string
	flagFasta    string
	flagOutput   string
	flagNoHeader bool
	flagQuiet    bool

	// set by commands after app.Run; Execute reports it to main
	exitCode int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crispr-design",
	Short: "Design CRISPR-Cas9 guide RNAs for a target DNA sequence",
	Long: `Find candidate guide RNAs (NGG PAM sites with 20 nt protospacers) in a
target sequence, rank them by a heuristic efficiency score, and optionally
estimate off-target risk by brute-force comparison against the same sequence.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&settingsFile, "settings", "", "settings file (default $HOME/.crispr-design.yaml)")
	pf.StringVarP(&flagFasta, "fasta", "f", "", "read the target from a FASTA file ('-' for stdin)")
	pf.StringVarP(&flagOutput, "output", "o", "text", "output format: text | tsv | csv | json")
	pf.BoolVar(&flagNoHeader, "no-header", false, "suppress the header line in tabular output")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "only log errors")
}

// loadSettings prepares the viper instance: defaults, then the optional
// settings file. A missing default file is fine; an explicit --settings path
// that cannot be read is not.
func loadSettings() error {
	settings = viper.New()
	config.SetDefaults(settings)

	if settingsFile != "" {
		settings.SetConfigFile(settingsFile)
		if err := settings.ReadInConfig(); err != nil {
			return fmt.Errorf("read settings: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home, no default settings file
	}
	settings.AddConfigPath(home)
	settings.SetConfigName(".crispr-design")
	settings.SetConfigType("yaml")
	if err := settings.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	return nil
}

// baseOptions assembles the app options shared by every subcommand.
func baseOptions(cfg config.Config, args []string) app.Options {
	opts := app.Options{
		FastaPath:     flagFasta,
		Output:        flagOutput,
		Header:        !flagNoHeader,
		Top:           cfg.Scoring.Top,
		MinScore:      cfg.Scoring.MinScore,
		MaxMismatches: cfg.OffTarget.MaxMismatches,
		MaxRisk:       cfg.OffTarget.MaxRisk,
		Workers:       cfg.OffTarget.Workers,
		Quiet:         flagQuiet,
	}
	if len(args) > 0 {
		opts.Sequence = args[0]
	}
	return opts
}

// Execute adds all child commands to the root command and runs it. It
// returns the process exit code for main.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return app.ExitUsage
	}
	return exitCode
}
