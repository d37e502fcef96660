package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"DrinkMarket/pkg/kit"
)

var (
	// Global flags
	seedPath string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "marketctl",
	Short: "Query a wine and beer market catalog",
	Long: `marketctl builds a market from a YAML seed file (or the built-in demo
catalog) and runs a single query against it. Every query is timed and the
timing is logged to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger = kit.NewLogger("marketctl", level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var hasCmd = &cobra.Command{
	Use:   "has [title]",
	Short: "Report whether a drink with the exact title is in stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runHas,
}

var sortedCmd = &cobra.Command{
	Use:   "sorted",
	Short: "List all drink titles in ascending order",
	Args:  cobra.NoArgs,
	RunE:  runSorted,
}

var betweenCmd = &cobra.Command{
	Use:   "between [from] [to]",
	Short: "List drinks produced between two YYYY-MM-DD dates, inclusive",
	Args:  cobra.ExactArgs(2),
	RunE:  runBetween,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every wine and beer as loaded",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demo queries against the built-in catalog",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML seed file (defaults to the built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log call starts as well as timings")

	rootCmd.AddCommand(hasCmd, sortedCmd, betweenCmd, showCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
