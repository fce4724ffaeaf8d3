package cli

import (
	"github.com/spf13/cobra"

	"github.com/p-salvatierra/crispr-design/internal/app"
	"github.com/p-salvatierra/crispr-design/internal/config"
)

// findCmd scans a target for guides and prints the ranked table.
var findCmd = &cobra.Command{
	Use:   "find [sequence]",
	Short: "Find and rank guide RNAs in a target sequence",
	Long: `Scan the target sequence (both strands) for NGG PAM sites, extract the
20 nt guide upstream of each, and rank the candidates by efficiency score.
The target comes from the positional argument or from --fasta.`,
	Example: `  crispr-design find ATGCATGCATGCATGCATGCTGGACGT...
  crispr-design find --fasta target.fa --output csv > guides.csv
  crispr-design find --fasta - --top 0 --min-score 0 < target.fa`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindSelectionFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New(settings)
		if err != nil {
			return err
		}
		opts := baseOptions(cfg, args)
		exitCode = app.Run(cmd.Context(), cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	addSelectionFlags(findCmd)
	rootCmd.AddCommand(findCmd)
}

// addSelectionFlags registers the ranked-table selection flags; their
// defaults mirror the settings file keys they shadow.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top", 10, "keep the N best guides (0 = all)")
	cmd.Flags().Float64("min-score", 50, "minimum efficiency score (0 = no floor)")
}

// bindSelectionFlags wires the flags into viper so explicit flags win over
// the settings file, which wins over defaults.
func bindSelectionFlags(cmd *cobra.Command) error {
	if err := settings.BindPFlag("scoring.top", cmd.Flags().Lookup("top")); err != nil {
		return err
	}
	return settings.BindPFlag("scoring.min-score", cmd.Flags().Lookup("min-score"))
}
