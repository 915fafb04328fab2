package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"overcheck/pkg/alloccheck"
	"overcheck/pkg/units"
)

var (
	simulateElements int64
	simulateBytes    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a buffer overflow with a real allocation",
	Long: `Attempt a real allocation of zeroed 8-byte slots and report the
elapsed time, or the overflow when the runtime refuses the allocation.

Examples:
  overcheck simulate --elements 1000
  overcheck simulate --bytes 100M
  overcheck simulate --elements 4611686018427387904   # overflow`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&simulateElements, "elements", 0,
		"number of 8-byte slots to allocate")
	simulateCmd.Flags().StringVar(&simulateBytes, "bytes", "",
		"allocation size as bytes (e.g., 100M, 1G) instead of --elements")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if err := requireExactlyOne(
		flagSet{"--elements", cmd.Flags().Changed("elements")},
		flagSet{"--bytes", simulateBytes != ""},
	); err != nil {
		return err
	}

	elements := simulateElements
	if simulateBytes != "" {
		size, err := units.ParseSize(simulateBytes)
		if err != nil {
			return fmt.Errorf("invalid --bytes value: %w", err)
		}
		elements = int64(size / 8) //nolint:gosec // bounded by ParseSize units
	}

	return runCheck(&alloccheck.Check{Elements: elements})
}
