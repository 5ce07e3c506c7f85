package matcher

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// prettyPrintThreshold is the rendered length above which values
// are pretty-printed across multiple lines.
const prettyPrintThreshold = 60

// spewConfig renders long values deterministically: no pointer
// addresses or capacities, and map keys sorted.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// FormatValue renders a value for failure messages. Short values
// use Go-syntax formatting on a single line; values whose rendering
// exceeds prettyPrintThreshold are pretty-printed.
func FormatValue(v any) string {
	s := fmt.Sprintf("%#v", v)
	if len(s) <= prettyPrintThreshold {
		return s
	}
	return strings.TrimRight(spewConfig.Sdump(v), "\n")
}
