package main

import (
	"github.com/spf13/cobra"

	"overcheck/pkg/textcheck"
)

var stringMaxLen int

var charCmd = &cobra.Command{
	Use:   "char <value>",
	Short: "Check that a value is a single character",
	Long: `Check that a value holds exactly one character.

Examples:
  overcheck char a
  overcheck char é
  overcheck char ab        # overflow`,
	Args: cobra.ExactArgs(1),
	RunE: runCharCheck,
}

var stringCmd = &cobra.Command{
	Use:   "string <value>",
	Short: "Check a string against a maximum length",
	Long: `Check that a string does not exceed a maximum length in characters.

Examples:
  overcheck string hello
  overcheck string hello --max-len 3   # overflow`,
	Args: cobra.ExactArgs(1),
	RunE: runStringCheck,
}

func init() {
	stringCmd.Flags().IntVar(&stringMaxLen, "max-len", 0,
		"maximum string length (default 255)")
	rootCmd.AddCommand(charCmd)
	rootCmd.AddCommand(stringCmd)
}

func runCharCheck(_ *cobra.Command, args []string) error {
	return runCheck(&textcheck.Char{Value: args[0]})
}

func runStringCheck(_ *cobra.Command, args []string) error {
	return runCheck(&textcheck.String{Value: args[0], MaxLen: stringMaxLen})
}
