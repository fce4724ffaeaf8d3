package cli

import (
	"github.com/spf13/cobra"

	"github.com/p-salvatierra/crispr-design/internal/app"
	"github.com/p-salvatierra/crispr-design/internal/config"
)

var reportJSON bool

// reportCmd writes the run summary: sequence stats plus the best guides.
var reportCmd = &cobra.Command{
	Use:   "report [sequence]",
	Short: "Summarize a target: sequence stats and the top 5 guides",
	Example: `  crispr-design report --fasta target.fa
  crispr-design report --fasta target.fa --json | jq .chart`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New(settings)
		if err != nil {
			return err
		}
		opts := baseOptions(cfg, args)
		// the report covers the whole table, not a selection
		opts.Top, opts.MinScore = 0, 0
		opts.ReportJSON = reportJSON
		exitCode = app.RunReport(cmd.Context(), cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit the report as JSON with chart data")
	rootCmd.AddCommand(reportCmd)
}
