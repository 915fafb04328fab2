package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"overcheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status. Detail lines are
// indented under the status tag.
func PrintResult(r check.Result) {
	var tag string
	if r.OK() {
		tag = fmt.Sprintf("%s[OK]%s", green, reset)
	} else {
		tag = fmt.Sprintf("%s[OVERFLOW]%s", red, reset)
	}
	fmt.Printf("%s %s\n", tag, r.Name)

	indent := strings.Repeat(" ", indentWidth(r))
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
}

// indentWidth aligns details under the name, past the status tag.
func indentWidth(r check.Result) int {
	if r.OK() {
		return len("[OK] ")
	}
	return len("[OVERFLOW] ")
}

// formatLabel dims a leading "label:" prefix in a detail line.
func formatLabel(d string) string {
	if dim == "" {
		return d
	}
	idx := strings.Index(d, ": ")
	if idx < 0 {
		return d
	}
	return dim + d[:idx+1] + reset + d[idx+1:]
}
