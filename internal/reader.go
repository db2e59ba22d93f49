package internal

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader yields lines of at most limit-1 bytes. Longer lines come back in
// fragments, each one counted as a line. limit <= 0 means no bound.
type LineReader struct {
	br  *bufio.Reader
	max int
	buf []byte
}

func NewLineReader(br *bufio.Reader, limit int) *LineReader {
	return &LineReader{br: br, max: limit}
}

// Next returns the next line without its newline. ok is false once input is exhausted.
func (lr *LineReader) Next() (line string, ok bool, err error) {
	lr.buf = lr.buf[:0]
	for {
		if lr.max > 0 && len(lr.buf) >= lr.max-1 {
			return string(lr.buf), true, nil
		}
		b, err := lr.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(lr.buf) > 0 {
					return string(lr.buf), true, nil
				}
				return "", false, nil
			}
			return "", false, err
		}
		if b == '\n' {
			return string(lr.buf), true, nil
		}
		lr.buf = append(lr.buf, b)
	}
}

// ScanLines reports every line containing pattern, with its 1-based number, and
// returns how many lines matched.
func ScanLines(br *bufio.Reader, pattern string, maxLine int, onMatch func(lineNo int, line string) error) (int, error) {
	lr := NewLineReader(br, maxLine)
	lineNo := 0
	matches := 0
	for {
		line, ok, err := lr.Next()
		if err != nil {
			return matches, err
		}
		if !ok {
			return matches, nil
		}
		lineNo++
		if !strings.Contains(line, pattern) {
			continue
		}
		matches++
		if err := onMatch(lineNo, line); err != nil {
			return matches, err
		}
	}
}
