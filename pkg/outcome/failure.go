package outcome

import (
	"fmt"
	"runtime"
	"strings"
)

// Location is the source position of an assertion.
type Location struct {
	File string
	Line int
}

// Here captures the caller's source position. skip counts stack
// frames above Here, with 0 meaning the direct caller.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "<unknown>"}
	}
	return Location{File: file, Line: line}
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Failure describes one failed assertion. It implements error so
// that fatal assertion paths can return it directly.
type Failure struct {
	// Description is the rendered failure message, without the
	// trailing source location.
	Description string
	// CustomMessage is optional context supplied by the test author,
	// printed after the description.
	CustomMessage string
	// Actual is the rendered actual value, when the failure comes
	// from matching a value. Empty for condition and explicit
	// failures.
	Actual string
	// Location is where the assertion was written.
	Location Location
}

// NewFailure creates a Failure for the given rendered description at
// the given location.
func NewFailure(description string, location Location) *Failure {
	return &Failure{Description: description, Location: location}
}

// WithActual records the rendered actual value.
func (f *Failure) WithActual(actual string) *Failure {
	f.Actual = actual
	return f
}

// WithMessage sets the custom message. Calling it again replaces the
// previous message; the last write wins.
func (f *Failure) WithMessage(format string, args ...any) *Failure {
	f.CustomMessage = fmt.Sprintf(format, args...)
	return f
}

// Error renders the failure: the description, the custom message if
// any, and the source location on the final line.
func (f *Failure) Error() string {
	var sb strings.Builder
	sb.WriteString(f.Description)
	if f.CustomMessage != "" {
		sb.WriteByte('\n')
		sb.WriteString(f.CustomMessage)
	}
	fmt.Fprintf(&sb, "\n  at %s", f.Location)
	return sb.String()
}
