package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"overcheck/pkg/sizecheck"
)

var (
	matrixRows    int
	matrixCols    int
	matrixJSON    string
	matrixMaxRows int
	matrixMaxCols int
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Check matrix dimensions against maximums",
	Long: `Check that a matrix does not exceed maximum dimensions. The shape
is given as --rows/--cols or read from a JSON array-of-arrays payload;
for ragged payloads the column count is the widest row.

Examples:
  overcheck matrix --rows 5 --cols 3 --max-rows 5 --max-cols 5
  overcheck matrix --json '[[1,2],[3,4,5]]' --max-rows 2 --max-cols 2   # overflow`,
	RunE: runMatrixCheck,
}

func init() {
	matrixCmd.Flags().IntVar(&matrixRows, "rows", 0, "observed row count")
	matrixCmd.Flags().IntVar(&matrixCols, "cols", 0, "observed column count")
	matrixCmd.Flags().StringVar(&matrixJSON, "json", "",
		"JSON array-of-arrays payload to measure instead of --rows/--cols")
	matrixCmd.Flags().IntVar(&matrixMaxRows, "max-rows", 0, "maximum allowed rows")
	matrixCmd.Flags().IntVar(&matrixMaxCols, "max-cols", 0, "maximum allowed columns")
	rootCmd.AddCommand(matrixCmd)
}

func runMatrixCheck(cmd *cobra.Command, _ []string) error {
	if err := requireExactlyOne(
		flagSet{"--rows/--cols", cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols")},
		flagSet{"--json", matrixJSON != ""},
	); err != nil {
		return err
	}

	var widths []int
	if matrixJSON != "" {
		w, err := sizecheck.WidthsJSON(matrixJSON)
		if err != nil {
			return fmt.Errorf("invalid --json value: %w", err)
		}
		widths = w
	} else {
		widths = make([]int, matrixRows)
		for i := range widths {
			widths[i] = matrixCols
		}
	}

	return runCheck(&sizecheck.Matrix{
		Widths:  widths,
		MaxRows: matrixMaxRows,
		MaxCols: matrixMaxCols,
	})
}
