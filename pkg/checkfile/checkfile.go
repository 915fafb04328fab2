// Package checkfile locates and parses .overcheck files: scripted
// sequences of overcheck commands, one per line.
package checkfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindFile returns the path of the .overcheck file to run. An explicit
// path wins; otherwise the search walks up from startDir, stopping at the
// home directory or the first .git boundary.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("overcheck file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		path := filepath.Join(currentDir, ".overcheck")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(".overcheck file not found")
}

// ParseFile reads an .overcheck file and returns the command lines to run,
// skipping blanks and comments and prefixing bare lines with "overcheck".
func ParseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading .overcheck file
	if err != nil {
		return nil, fmt.Errorf("failed to read overcheck file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	commands := []string{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if !strings.HasPrefix(trimmed, "overcheck") {
			trimmed = "overcheck " + trimmed
		}

		commands = append(commands, trimmed)
	}

	return commands, nil
}
