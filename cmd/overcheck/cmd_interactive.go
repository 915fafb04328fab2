package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"overcheck/pkg/alloccheck"
	"overcheck/pkg/check"
	"overcheck/pkg/diskcheck"
	"overcheck/pkg/limits"
	"overcheck/pkg/memcheck"
	"overcheck/pkg/numcheck"
	"overcheck/pkg/output"
	"overcheck/pkg/sizecheck"
	"overcheck/pkg/textcheck"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run checks from a menu-driven console session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := &session{
			in:     bufio.NewScanner(cmd.InOrStdin()),
			out:    cmd.OutOrStdout(),
			limits: limits.Default(),
		}
		s.loop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// session is the menu-driven console front end. It holds the threshold
// set and the live OS queriers; all checking goes through the shared
// check packages.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	limits limits.Limits
}

func (s *session) loop() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "=== Overflow Checker ===")
		fmt.Fprintln(s.out, "1. Character and string")
		fmt.Fprintln(s.out, "2. Integers and floats")
		fmt.Fprintln(s.out, "3. Arrays and matrices")
		fmt.Fprintln(s.out, "4. Lists and stacks")
		fmt.Fprintln(s.out, "5. Memory, disk, and removable drives")
		fmt.Fprintln(s.out, "6. Buffer overflow simulation")
		fmt.Fprintln(s.out, "7. Quit")

		choice, ok := s.promptInt("Enter an option number: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			s.testText()
		case 2:
			s.testNumbers()
		case 3:
			s.testArraysAndMatrices()
		case 4:
			s.testListsAndStacks()
		case 5:
			s.testSystem()
		case 6:
			s.testSimulation()
		case 7:
			return
		default:
			fmt.Fprintln(s.out, "Invalid option. Enter a number between 1 and 7.")
		}
	}
}

func (s *session) testText() {
	char, ok := s.prompt("Enter a character: ")
	if !ok {
		return
	}
	s.show(&textcheck.Char{Value: char})

	maxLen, ok := s.promptIntDefault(fmt.Sprintf("Enter the maximum string length (default %d): ", s.limits.MaxStringLen), s.limits.MaxStringLen)
	if !ok {
		return
	}
	str, ok := s.prompt("Enter a string: ")
	if !ok {
		return
	}
	s.show(&textcheck.String{Value: str, MaxLen: maxLen})
}

func (s *session) testNumbers() {
	raw, ok := s.prompt("Enter an integer (try a very large value): ")
	if !ok {
		return
	}
	s.show(&numcheck.Check{Raw: raw, Kind: numcheck.Integer})

	raw, ok = s.prompt("Enter a float (try a very large value): ")
	if !ok {
		return
	}
	s.show(&numcheck.Check{Raw: raw, Kind: numcheck.Float})
}

func (s *session) testArraysAndMatrices() {
	max, ok := s.promptInt("Enter the maximum array size: ")
	if !ok {
		return
	}
	size, ok := s.promptInt(fmt.Sprintf("Enter the array size to test (try > %d): ", max))
	if !ok {
		return
	}
	s.show(&sizecheck.Check{Size: size, Max: max, Kind: sizecheck.KindArray})

	maxRows, ok := s.promptInt("Enter the maximum number of rows: ")
	if !ok {
		return
	}
	maxCols, ok := s.promptInt("Enter the maximum number of columns: ")
	if !ok {
		return
	}
	rows, ok := s.promptInt(fmt.Sprintf("Enter the number of rows to test (try > %d): ", maxRows))
	if !ok {
		return
	}
	cols, ok := s.promptInt(fmt.Sprintf("Enter the number of columns to test (try > %d): ", maxCols))
	if !ok {
		return
	}
	widths := make([]int, rows)
	for i := range widths {
		widths[i] = cols
	}
	s.show(&sizecheck.Matrix{Widths: widths, MaxRows: maxRows, MaxCols: maxCols})
}

func (s *session) testListsAndStacks() {
	max, ok := s.promptInt("Enter the maximum list size: ")
	if !ok {
		return
	}
	size, ok := s.promptInt(fmt.Sprintf("Enter the list size to test (try > %d): ", max))
	if !ok {
		return
	}
	s.show(&sizecheck.Check{Size: size, Max: max, Kind: sizecheck.KindList})

	max, ok = s.promptInt("Enter the maximum stack depth: ")
	if !ok {
		return
	}
	size, ok = s.promptInt(fmt.Sprintf("Enter the stack depth to test (try > %d): ", max))
	if !ok {
		return
	}
	s.show(&sizecheck.Check{Size: size, Max: max, Kind: sizecheck.KindStack})
}

func (s *session) testSystem() {
	s.show(&memcheck.Check{Threshold: s.limits.MemoryPct, Mem: &memcheck.RealMemoryQuerier{}})

	path, ok := s.promptDefault("Enter a disk path (default /): ", "/")
	if !ok {
		return
	}
	s.show(&diskcheck.Check{Path: path, Threshold: s.limits.DiskPct, Disk: &diskcheck.RealDiskQuerier{}})

	s.show(&diskcheck.Sweep{Threshold: s.limits.DiskPct, Disk: &diskcheck.RealDiskQuerier{}})
}

func (s *session) testSimulation() {
	elements, ok := s.promptInt("Enter the number of elements to allocate: ")
	if !ok {
		return
	}
	s.show(&alloccheck.Check{Elements: int64(elements)})
}

func (s *session) show(c check.Checker) {
	result := c.Run()
	log.Debug().Str("check", result.Name).Str("status", string(result.Status)).Msg("check complete")
	output.PrintResult(result)
}

// prompt reads one trimmed line; ok is false on EOF.
func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) promptDefault(label, def string) (string, bool) {
	v, ok := s.prompt(label)
	if !ok {
		return "", false
	}
	if v == "" {
		v = def
	}
	return v, true
}

func (s *session) promptInt(label string) (int, bool) {
	for {
		v, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Enter a whole number.")
			continue
		}
		return n, true
	}
}

func (s *session) promptIntDefault(label string, def int) (int, bool) {
	v, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input, using the default.")
		return def, true
	}
	return n, true
}
