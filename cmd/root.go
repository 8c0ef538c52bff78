package cmd

import (
	"fmt"
	"os"

	"github.com/gollections/gollections/cmd/bench"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "gollections",
		Short: "python-flavored collections for Go",
		Long: fmt.Sprintf(`gollections (v%s)

Generic collection types for Go with python semantics: a small-buffer
list, a ring-buffer deque and insertion-ordered dict, set and counter.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gollections",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gollections v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(bench.BenchCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
