package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"overcheck/pkg/sizecheck"
)

var (
	collectionSize int
	collectionJSON string
	collectionMax  int
)

var arrayCmd = &cobra.Command{
	Use:   "array",
	Short: "Check an array size against a maximum",
	Long: `Check that an array does not exceed a maximum size. The size is
given directly or counted from a JSON array payload.

Examples:
  overcheck array --size 15 --max 10        # overflow
  overcheck array --json '[1,2,3]' --max 5`,
	RunE: makeCollectionRunner(sizecheck.KindArray),
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Check a list size against a maximum",
	Long: `Check that a list does not exceed a maximum size. Same check as
array with a list tag.

Examples:
  overcheck list --size 3 --max 10
  overcheck list --json '[1,2,3]' --max 2   # overflow`,
	RunE: makeCollectionRunner(sizecheck.KindList),
}

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Check a stack depth against a maximum",
	Long: `Check that a stack does not exceed a maximum depth. Same check as
array with a stack tag.

Examples:
  overcheck stack --size 12 --max 8   # overflow`,
	RunE: makeCollectionRunner(sizecheck.KindStack),
}

func init() {
	for _, cmd := range []*cobra.Command{arrayCmd, listCmd, stackCmd} {
		cmd.Flags().IntVar(&collectionSize, "size", -1,
			"observed number of elements")
		cmd.Flags().StringVar(&collectionJSON, "json", "",
			"JSON array payload to count instead of --size")
		cmd.Flags().IntVar(&collectionMax, "max", 0,
			"maximum allowed size")
		rootCmd.AddCommand(cmd)
	}
}

func makeCollectionRunner(kind sizecheck.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := requireExactlyOne(
			flagSet{"--size", cmd.Flags().Changed("size")},
			flagSet{"--json", collectionJSON != ""},
		); err != nil {
			return err
		}

		size := collectionSize
		if collectionJSON != "" {
			n, err := sizecheck.CountJSON(collectionJSON)
			if err != nil {
				return fmt.Errorf("invalid --json value: %w", err)
			}
			size = n
		}
		return runCheck(&sizecheck.Check{Size: size, Max: collectionMax, Kind: kind})
	}
}
