package cli

import (
	"github.com/spf13/cobra"

	"github.com/p-salvatierra/crispr-design/internal/app"
	"github.com/p-salvatierra/crispr-design/internal/config"
)

// assessCmd runs find + score and then the off-target assessment over the
// selected guides.
var assessCmd = &cobra.Command{
	Use:   "assess [sequence]",
	Short: "Assess off-target risk for the top-ranked guides",
	Long: `Find and rank guides, then brute-force scan the full target (both
strands) for near-matches of each selected guide within the mismatch budget.
Guides are annotated with an aggregate risk score and level, and filtered by
the risk ceiling.

The scan costs O(guides x target length), so the selection flags bound how
many guides are assessed.`,
	Example: `  crispr-design assess --fasta target.fa
  crispr-design assess --fasta target.fa --max-mismatches 3 --max-risk Low
  crispr-design assess --fasta target.fa --top 5 --output json`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindSelectionFlags(cmd); err != nil {
			return err
		}
		for key, flag := range map[string]string{
			"offtarget.max-mismatches": "max-mismatches",
			"offtarget.max-risk":       "max-risk",
			"offtarget.workers":        "workers",
		} {
			if err := settings.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New(settings)
		if err != nil {
			return err
		}
		opts := baseOptions(cfg, args)
		opts.Assess = true
		exitCode = app.Run(cmd.Context(), cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	addSelectionFlags(assessCmd)
	assessCmd.Flags().Int("max-mismatches", 4, "mismatch budget per off-target site (1-4)")
	assessCmd.Flags().String("max-risk", "Medium", "risk ceiling: None | Low | Medium | High | 'Very High'")
	assessCmd.Flags().Int("workers", 0, "parallel assessment workers (0 = all CPUs)")
	rootCmd.AddCommand(assessCmd)
}
