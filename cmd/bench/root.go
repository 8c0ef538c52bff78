package bench

import (
	"strings"

	"github.com/gollections/gollections/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// BenchCommands represents the bench command group
	BenchCommands = &cobra.Command{
		Use:     "bench",
		Short:   "Benchmark the collection types",
		Long:    "Runs micro-benchmarks over the list, deque and dict collections plus a concurrent-map baseline, printing per-operation timings.",
		RunE:    run,
		PreRunE: processBenchConfig,
	}

	benchKeySpread  = 1024
	benchNumThreads = 10
	benchSkip       = make([]string, 0)
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "skip"
	BenchCommands.PersistentFlags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. list-append,dict-get)"))
	key = "threads"
	BenchCommands.PersistentFlags().Int(key, 10, util.WrapString("Number of threads to use for the concurrent baseline benchmarks"))
	key = "keys"
	BenchCommands.PersistentFlags().Int(key, 1024, util.WrapString("How many different keys/elements to cycle through"))
	key = "csv"
	BenchCommands.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "metrics"
	BenchCommands.Flags().Bool(key, false, util.WrapString("Print collected histograms in Prometheus text format after the run"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	benchKeySpread = viper.GetInt("keys")
	benchNumThreads = viper.GetInt("threads")
	if skip := viper.GetString("skip"); skip != "" {
		benchSkip = strings.Split(skip, ",")
	}

	return nil
}
