// Package description provides the hierarchical text values that
// matchers use to describe themselves and to explain why a
// particular value did or did not match.
//
// A Description is built from blocks of text and nested
// sub-descriptions. Nested descriptions render with one additional
// level of indentation. The blocks of a description can optionally
// be decorated as a bullet list or an enumerated list. Rendering is
// deterministic given the tree, and no newline is emitted after the
// final block.
package description

import (
	"fmt"
	"strings"
)

// indentationSize is the number of spaces added per nesting level.
const indentationSize = 2

// decoration selects the prefix rendered before each block.
type decoration int

const (
	decorationNone decoration = iota
	decorationBullet
	decorationEnumerate
)

// Description is a composable, hierarchical block of text. The zero
// value is an empty description; use New to obtain one.
type Description struct {
	blocks        []block
	decoration    decoration
	initialIndent int
}

// block is either a literal run of lines or a nested description.
type block struct {
	lines  []string
	nested *Description
}

// New creates an empty Description.
func New() *Description {
	return &Description{}
}

// Text appends a block of text. Multi-line text is split so that
// every line is indented correctly when rendered.
func (d *Description) Text(text string) *Description {
	d.blocks = append(d.blocks, block{lines: splitLines(text)})
	return d
}

// Textf appends a block of text built from a format string.
func (d *Description) Textf(format string, args ...any) *Description {
	return d.Text(fmt.Sprintf(format, args...))
}

// Nested appends inner as a nested block. It renders at the next
// level of indentation.
func (d *Description) Nested(inner *Description) *Description {
	d.blocks = append(d.blocks, block{nested: inner})
	return d
}

// Collect appends every element of inner as a nested block.
func (d *Description) Collect(inner []*Description) *Description {
	for _, i := range inner {
		d.Nested(i)
	}
	return d
}

// Indent shifts the whole rendered output right by one indentation
// level.
func (d *Description) Indent() *Description {
	d.initialIndent = indentationSize
	return d
}

// BulletList renders each block preceded by "* ". Lines after the
// first within a block are aligned with the first.
func (d *Description) BulletList() *Description {
	d.decoration = decorationBullet
	return d
}

// Enumerate renders each block preceded by its zero-based index.
// Lines after the first within a block are aligned with the first.
func (d *Description) Enumerate() *Description {
	d.decoration = decorationEnumerate
	return d
}

// Len returns the number of blocks.
func (d *Description) Len() int {
	return len(d.blocks)
}

// IsEmpty reports whether the description has no blocks.
func (d *Description) IsEmpty() bool {
	return len(d.blocks) == 0
}

// String renders the description.
func (d *Description) String() string {
	var sb strings.Builder
	d.render(&sb, d.initialIndent, "")
	return sb.String()
}

// render writes the blocks, indented by indentation spaces, with
// prior prefix text that must precede the first line.
func (d *Description) render(sb *strings.Builder, indentation int, priorPrefix string) {
	if len(d.blocks) == 0 {
		return
	}

	padding := d.enumerationPadding()
	d.blocks[0].render(sb, indentation, priorPrefix+d.prefix(0, padding))
	for i, b := range d.blocks[1:] {
		sb.WriteByte('\n')
		b.render(sb, indentation+len(priorPrefix), d.prefix(i+1, padding))
	}
}

// prefix returns the decoration for the block at the given index.
func (d *Description) prefix(index, padding int) string {
	switch d.decoration {
	case decorationBullet:
		return "* "
	case decorationEnumerate:
		return fmt.Sprintf("%*d. ", padding, index)
	default:
		return ""
	}
}

// enumerationPadding returns the width of the widest enumeration
// label, so that multi-digit indices stay aligned.
func (d *Description) enumerationPadding() int {
	if d.decoration != decorationEnumerate {
		return 0
	}
	padding := 1
	for n := len(d.blocks) - 1; n >= 10; n /= 10 {
		padding++
	}
	return padding
}

func (b block) render(sb *strings.Builder, indentation int, prefix string) {
	if b.nested != nil {
		extra := indentationSize - len(prefix)
		if extra < 0 {
			extra = 0
		}
		b.nested.render(sb, indentation+extra, prefix)
		return
	}
	if len(b.lines) == 0 {
		return
	}
	writePadding(sb, indentation)
	sb.WriteString(prefix)
	sb.WriteString(b.lines[0])
	blockIndentation := indentation + len(prefix)
	for _, line := range b.lines[1:] {
		sb.WriteByte('\n')
		writePadding(sb, blockIndentation)
		sb.WriteString(line)
	}
}

func writePadding(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}

func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
