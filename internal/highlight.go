package internal

import (
	"errors"
	"strings"

	"github.com/fatih/color"
)

var ErrNoOccurrence = errors.New("reported line does not contain the pattern")

// Palette holds the styles used on stdout. Colour is forced on regardless of tty.
type Palette struct {
	Match  *color.Color
	LineNo *color.Color
	Header *color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Match:  forced(color.FgRed),
		LineNo: forced(color.FgCyan),
		Header: forced(color.FgGreen),
	}
}

func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// Highlight styles every non-overlapping occurrence of pattern, scanning left to
// right, and returns the rendered line with the number of styled spans.
// An empty pattern leaves the line untouched.
func (p Palette) Highlight(line, pattern string) (string, int) {
	if pattern == "" {
		return line, 0
	}
	var sb strings.Builder
	sb.Grow(len(line) + 16)
	spans := 0
	rest := line
	for {
		i := strings.Index(rest, pattern)
		if i < 0 {
			break
		}
		sb.WriteString(rest[:i])
		sb.WriteString(p.Match.Sprint(pattern))
		rest = rest[i+len(pattern):]
		spans++
	}
	sb.WriteString(rest)
	return sb.String(), spans
}
