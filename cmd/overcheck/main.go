package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Overflow results are already rendered by the check output;
		// only genuine usage or runtime errors need echoing.
		if !errors.Is(err, ErrCheckOverflow) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "overcheck",
	Short:   "Overflow checks for values, collections, and system resources",
	Long:    "Overcheck is an educational CLI that flags overflow conditions: values and collections over their size limits, and memory or disk usage over a percent threshold.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
