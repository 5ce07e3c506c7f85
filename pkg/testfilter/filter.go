// Package testfilter decides which tests should run in the current
// process, combining a name filter with shard assignment. Both are
// configured through environment variables set by the surrounding
// test infrastructure.
package testfilter

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/zyedidia/glob"
)

// FilterEnv names the environment variable holding the test name
// filter. Its value is a ':'-separated list of patterns, optionally
// followed by '-' and a second list of patterns to exclude:
//
//	Foo.*:Bar.Baz-Foo.Slow*
//
// A pattern without wildcard characters must equal the test name
// exactly. An empty positive section admits every name.
const FilterEnv = "TESTBRIDGE_TEST_ONLY"

// Filter selects test names against positive and negative pattern
// lists.
type Filter struct {
	positive []pattern
	negative []pattern
}

// pattern is either a literal name or a compiled glob.
type pattern struct {
	exact string
	glob  *glob.Glob
}

func compilePattern(spec string) (pattern, error) {
	if !strings.ContainsAny(spec, "*?") {
		return pattern{exact: spec}, nil
	}
	g, err := glob.Compile(spec)
	if err != nil {
		return pattern{}, fmt.Errorf("compiling test filter pattern %q: %w", spec, err)
	}
	return pattern{glob: g}, nil
}

func (p pattern) matches(name string) bool {
	if p.glob != nil {
		return p.glob.MatchString(name)
	}
	return p.exact == name
}

// New parses a filter specification. The empty specification admits
// everything.
func New(spec string) (*Filter, error) {
	f := &Filter{}
	positive := spec
	if idx := strings.IndexByte(spec, '-'); idx >= 0 {
		positive = spec[:idx]
		for _, section := range splitSections(spec[idx+1:]) {
			p, err := compilePattern(section)
			if err != nil {
				return nil, err
			}
			f.negative = append(f.negative, p)
		}
	}
	for _, section := range splitSections(positive) {
		p, err := compilePattern(section)
		if err != nil {
			return nil, err
		}
		f.positive = append(f.positive, p)
	}
	return f, nil
}

// splitSections splits a ':'-separated pattern list, dropping empty
// sections.
func splitSections(spec string) []string {
	var out []string
	for _, section := range strings.Split(spec, ":") {
		if section != "" {
			out = append(out, section)
		}
	}
	return out
}

// Matches reports whether the filter admits the given test name.
func (f *Filter) Matches(name string) bool {
	for _, p := range f.negative {
		if p.matches(name) {
			return false
		}
	}
	if len(f.positive) == 0 {
		return true
	}
	for _, p := range f.positive {
		if p.matches(name) {
			return true
		}
	}
	return false
}

var envFilter = sync.OnceValue(func() *Filter {
	f, err := New(os.Getenv(FilterEnv))
	if err != nil {
		// A broken filter must not silently skip tests.
		panic(err)
	}
	return f
})

// ShouldRun reports whether the named test should run in this
// process: it must pass the name filter and belong to this shard.
// The environment is read once and cached.
func ShouldRun(name string) bool {
	return envFilter().Matches(name) && envShard().Contains(name)
}
