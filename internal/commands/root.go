package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konnector-tools/billgraph/internal/buildinfo"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// The root command itself renders a link results file as a graph.
func NewRootCommand() *cobra.Command {
	var opts globalOptions
	var ropts renderOptions

	rootCmd := &cobra.Command{
		Use:   "billgraph <filename>",
		Short: "Graph which bank operations paid which bills",
		Long: `Reads the link results written by a konnector run with
LINK_RESULTS_FILENAME set and prints a Graphviz graph of bills and the
bank operations that paid or reimbursed them.

  billgraph /tmp/result-link-bills.json | dot -Grankdir=LR -Tpng -o output.png

A file named like a subcommand (stats, table, config) must be given as a
path, e.g. billgraph ./stats.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts, ropts, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "render style file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.Flags().StringVarP(&ropts.output, "output", "o", "", "write the graph to a file instead of stdout")
	rootCmd.Flags().StringVar(&ropts.rankdir, "rankdir", "", "graph rank direction (TB, LR, BT, RL)")

	rootCmd.AddCommand(newStatsCommand(&opts))
	rootCmd.AddCommand(newTableCommand(&opts))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
