package internal

import (
	"fmt"
	"io"
)

type flusher interface {
	Flush() error
}

// Reporter writes matched lines. Headers are printed lazily, once per file, on
// the file's first match; every header after the first gets a blank line before it.
type Reporter struct {
	w       io.Writer
	palette Palette
	pattern string

	file    string
	pending bool
	headers int
}

func NewReporter(w io.Writer, pattern string, palette Palette) *Reporter {
	return &Reporter{w: w, pattern: pattern, palette: palette}
}

// StartFile arms a header for name. Stream mode never calls it.
func (r *Reporter) StartFile(name string) {
	r.file = name
	r.pending = true
}

// Headers returns how many file headers were written so far.
func (r *Reporter) Headers() int { return r.headers }

// Line renders "<n>:<highlighted line>".
func (r *Reporter) Line(lineNo int, line string) error {
	rendered, spans := r.palette.Highlight(line, r.pattern)
	if spans == 0 && r.pattern != "" {
		return fmt.Errorf("line %d: %w", lineNo, ErrNoOccurrence)
	}
	if r.pending {
		if err := r.header(); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.w, "%s:%s\n", r.palette.LineNo.Sprint(lineNo), rendered); err != nil {
		return err
	}
	// a buffered writer still emits every line as it is found
	if fl, ok := r.w.(flusher); ok {
		return fl.Flush()
	}
	return nil
}

func (r *Reporter) header() error {
	sep := ""
	if r.headers > 0 {
		sep = "\n"
	}
	if _, err := fmt.Fprintf(r.w, "%s%s\n", sep, r.palette.Header.Sprint(r.file)); err != nil {
		return err
	}
	r.pending = false
	r.headers++
	return nil
}
