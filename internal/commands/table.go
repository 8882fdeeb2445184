package commands

import (
	"github.com/spf13/cobra"

	"github.com/konnector-tools/billgraph/internal/export"
	"github.com/konnector-tools/billgraph/internal/linkresult"
)

func newTableCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table <filename>",
		Short: "Print link results as CSV, one row per record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

			records, err := linkresult.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded link results", "file", args[0], "records", len(records))
			return export.WriteRecords(cmd.OutOrStdout(), records)
		},
	}
}
