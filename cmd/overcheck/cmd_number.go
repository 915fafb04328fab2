package main

import (
	"github.com/spf13/cobra"

	"overcheck/pkg/numcheck"
)

var numberFloat bool

var numberCmd = &cobra.Command{
	Use:   "number <value>",
	Short: "Check a number against its representable range",
	Long: `Check that a number fits the representable range of its kind:
int64 for integers, float64 for floats. The raw input is parsed by the
check itself, so values too wide for the native type are detected
instead of being rejected upstream.

Examples:
  overcheck number 42
  overcheck number 9223372036854775808   # overflow (past int64)
  overcheck number 1e309 --float         # overflow (past float64)`,
	Args: cobra.ExactArgs(1),
	RunE: runNumberCheck,
}

func init() {
	numberCmd.Flags().BoolVar(&numberFloat, "float", false,
		"check against float64 range instead of int64")
	rootCmd.AddCommand(numberCmd)
}

func runNumberCheck(_ *cobra.Command, args []string) error {
	kind := numcheck.Integer
	if numberFloat {
		kind = numcheck.Float
	}
	return runCheck(&numcheck.Check{Raw: args[0], Kind: kind})
}
