package main

import (
	"github.com/spf13/cobra"

	"overcheck/pkg/diskcheck"
	"overcheck/pkg/memcheck"
)

var (
	memoryThreshold float64
	diskPath        string
	diskThreshold   float64
	drivesThreshold float64
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Check host memory usage against a percent threshold",
	Long: `Check that host virtual memory usage stays under a percent
threshold.

Examples:
  overcheck memory
  overcheck memory --threshold 80`,
	RunE: runMemoryCheck,
}

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Check disk usage against a percent threshold",
	Long: `Check that disk usage at a path stays under a percent threshold.

Examples:
  overcheck disk
  overcheck disk --path /var --threshold 80`,
	RunE: runDiskCheck,
}

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "Check removable drive usage against a percent threshold",
	Long: `Enumerate mounted volumes, filter the removable ones, and check
each one's usage against a percent threshold. Volumes that cannot be
queried are skipped.

Examples:
  overcheck drives
  overcheck drives --threshold 75`,
	RunE: runDrivesCheck,
}

func init() {
	memoryCmd.Flags().Float64Var(&memoryThreshold, "threshold", 0,
		"used-percent threshold (default 90)")
	diskCmd.Flags().StringVar(&diskPath, "path", "",
		"filesystem path to check (default /)")
	diskCmd.Flags().Float64Var(&diskThreshold, "threshold", 0,
		"used-percent threshold (default 90)")
	drivesCmd.Flags().Float64Var(&drivesThreshold, "threshold", 0,
		"used-percent threshold (default 90)")
	rootCmd.AddCommand(memoryCmd)
	rootCmd.AddCommand(diskCmd)
	rootCmd.AddCommand(drivesCmd)
}

func runMemoryCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&memcheck.Check{
		Threshold: memoryThreshold,
		Mem:       &memcheck.RealMemoryQuerier{},
	})
}

func runDiskCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&diskcheck.Check{
		Path:      diskPath,
		Threshold: diskThreshold,
		Disk:      &diskcheck.RealDiskQuerier{},
	})
}

func runDrivesCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&diskcheck.Sweep{
		Threshold: drivesThreshold,
		Disk:      &diskcheck.RealDiskQuerier{},
	})
}
