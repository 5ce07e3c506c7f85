// Package diff renders human-readable comparisons of two rendered
// values. It provides a line-based diff with collapsing of long
// common runs, optional ANSI coloring, and abbreviation of long
// single-line renderings.
//
// The matching core treats this package as an opaque text
// transformation service; the diff algorithm itself comes from
// go-difflib.
package diff

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"
)

// NoColorEnv disables ANSI coloring of diff output when set.
const NoColorEnv = "MATCHERS_NO_COLOR"

// collapseThreshold is the length of a common-line run above which
// the middle of the run is omitted.
const collapseThreshold = 5

// collapseMargin is how many common lines are kept on each side of
// an omitted run.
const collapseMargin = 2

const (
	ansiRed    = "\x1b[1;31m"
	ansiGreen  = "\x1b[1;32m"
	ansiItalic = "\x1b[3m"
	ansiReset  = "\x1b[0m"
)

// Summarize returns a line diff between the rendered expected and
// actual values, or "" when the actual rendering fits on a single
// line (a single-line phrase is clearer than a diff there). Lines
// present only in the actual rendering are prefixed with '-', lines
// present only in the expected rendering with '+'.
func Summarize(expected, actual string) string {
	actualLines := strings.Split(actual, "\n")
	if len(actualLines) < 2 {
		return ""
	}
	expectedLines := strings.Split(expected, "\n")

	opcodes := difflib.NewMatcher(actualLines, expectedLines).GetOpCodes()
	if allEqual(opcodes) {
		return "No difference found between rendered values."
	}

	color := colorEnabled()
	var out []string
	for _, op := range opcodes {
		switch op.Tag {
		case 'e':
			out = append(out, collapseCommon(actualLines[op.I1:op.I2], color)...)
		case 'd':
			out = append(out, styleAll(actualLines[op.I1:op.I2], '-', ansiRed, color)...)
		case 'i':
			out = append(out, styleAll(expectedLines[op.J1:op.J2], '+', ansiGreen, color)...)
		case 'r':
			out = append(out, styleAll(actualLines[op.I1:op.I2], '-', ansiRed, color)...)
			out = append(out, styleAll(expectedLines[op.J1:op.J2], '+', ansiGreen, color)...)
		}
	}
	return strings.Join(out, "\n")
}

func allEqual(opcodes []difflib.OpCode) bool {
	for _, op := range opcodes {
		if op.Tag != 'e' {
			return false
		}
	}
	return true
}

// collapseCommon renders a run of unchanged lines, omitting the
// middle of runs longer than collapseThreshold.
func collapseCommon(lines []string, color bool) []string {
	if len(lines) <= collapseThreshold {
		return styleAll(lines, ' ', "", color)
	}
	omitted := len(lines) - 2*collapseMargin
	out := styleAll(lines[:collapseMargin], ' ', "", color)
	out = append(out, styleLine(
		fmt.Sprintf("<---- %d common lines omitted ---->", omitted),
		' ', ansiItalic, color,
	))
	return append(out, styleAll(lines[len(lines)-collapseMargin:], ' ', "", color)...)
}

func styleAll(lines []string, header byte, ansi string, color bool) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, styleLine(line, header, ansi, color))
	}
	return out
}

func styleLine(line string, header byte, ansi string, color bool) string {
	if color && ansi != "" {
		return ansi + string(header) + line + ansiReset
	}
	return string(header) + line
}

// colorEnabled reports whether diff output should carry ANSI
// styling: stdout must be a terminal and NoColorEnv must be unset.
func colorEnabled() bool {
	if _, noColor := os.LookupEnv(NoColorEnv); noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
