package commands

import (
	"github.com/spf13/cobra"

	"github.com/konnector-tools/billgraph/internal/linkresult"
	"github.com/konnector-tools/billgraph/internal/stats"
)

func newStatsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <filename>",
		Short: "Summarize link results: counts, totals and unlinked bills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

			records, err := linkresult.Load(args[0])
			if err != nil {
				return err
			}
			s := stats.Summarize(records)
			if len(s.Unlinked) > 0 {
				logger.Warn("bills without operation", "count", len(s.Unlinked))
			}
			return s.WriteText(cmd.OutOrStdout())
		},
	}
}
