package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"overcheck/pkg/checkfile"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run checks from an .overcheck file",
	Long: `Run every check listed in an .overcheck file, one command per
line. Without --file the file is found by searching upward from the
current directory.

Example file:
  # thresholds for this project
  memory --threshold 80
  disk --path /var/lib/data
  simulate --bytes 100M`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to .overcheck file (default: search up from current directory)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := checkfile.FindFile(wd, runFile)
	if err != nil {
		return err
	}

	commands, err := checkfile.ParseFile(path)
	if err != nil {
		return err
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	for _, command := range commands {
		parts := strings.Fields(command)
		if len(parts) == 0 {
			continue
		}

		if parts[0] == "overcheck" {
			parts[0] = executable
		}

		execCmd := exec.Command(parts[0], parts[1:]...)
		execCmd.Stdout = os.Stdout
		execCmd.Stderr = os.Stderr
		execCmd.Stdin = os.Stdin

		if err := execCmd.Run(); err != nil {
			var exitError *exec.ExitError
			if errors.As(err, &exitError) {
				os.Exit(exitError.ExitCode())
			}
			return fmt.Errorf("failed to execute command %q: %w", command, err)
		}
	}

	return nil
}
