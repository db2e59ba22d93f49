package internal

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripStyles(s string) string { return ansiEscape.ReplaceAllString(s, "") }

func TestHighlight_EveryOccurrence(t *testing.T) {
	p := DefaultPalette()
	red := p.Match.Sprint("foo")

	got, spans := p.Highlight("bar foo baz foo", "foo")
	assert.Equal(t, 2, spans)
	assert.Equal(t, "bar "+red+" baz "+red, got)
}

func TestHighlight_ForcedColour(t *testing.T) {
	got, _ := DefaultPalette().Highlight("foo", "foo")
	assert.Equal(t, "\x1b[31mfoo\x1b[0m", got)
}

func TestHighlight_NonOverlapping(t *testing.T) {
	p := DefaultPalette()
	aa := p.Match.Sprint("aa")

	got, spans := p.Highlight("aaaaa", "aa")
	assert.Equal(t, 2, spans)
	assert.Equal(t, aa+aa+"a", got)
}

func TestHighlight_NoOccurrence(t *testing.T) {
	got, spans := DefaultPalette().Highlight("nothing here", "foo")
	assert.Equal(t, 0, spans)
	assert.Equal(t, "nothing here", got)
}

func TestHighlight_EmptyPattern(t *testing.T) {
	got, spans := DefaultPalette().Highlight("abc", "")
	assert.Equal(t, 0, spans)
	assert.Equal(t, "abc", got)
}

func TestHighlight_RoundTripAndSpanCount(t *testing.T) {
	p := DefaultPalette()
	span := regexp.MustCompile("\x1b\\[31m(.*?)\x1b\\[0m")
	cases := []struct{ line, pattern string }{
		{"foo", "foo"},
		{"bar foo baz", "foo"},
		{"foofoofoo", "foo"},
		{"aaaa", "a"},
		{"abababa", "aba"},
		{"  spaced  out  ", " "},
		{"ünïcödé ünï", "ünï"},
		{"tail match", "match"},
	}
	for _, tc := range cases {
		got, spans := p.Highlight(tc.line, tc.pattern)
		assert.Equal(t, tc.line, stripStyles(got), "round trip %q/%q", tc.line, tc.pattern)

		found := span.FindAllStringSubmatch(got, -1)
		assert.Len(t, found, spans, "%q/%q", tc.line, tc.pattern)
		for _, m := range found {
			assert.Equal(t, tc.pattern, m[1])
		}
		assert.Equal(t, nonOverlappingCount(tc.line, tc.pattern), spans, "%q/%q", tc.line, tc.pattern)
	}
}

func nonOverlappingCount(line, pattern string) int {
	return strings.Count(line, pattern)
}
