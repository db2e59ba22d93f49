package internal

import (
	"bufio"
	"bytes"
)

// Verdict is the per-file keep/skip decision.
type Verdict int

const (
	Keep Verdict = iota
	SkipVCS
	SkipUnreadable
	SkipBinary
)

func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case SkipVCS:
		return "vcs"
	case SkipUnreadable:
		return "unreadable"
	case SkipBinary:
		return "binary"
	}
	return "unknown"
}

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// classifyContent decides on content alone; path rules run before a file is opened.
func classifyContent(br *bufio.Reader) Verdict {
	if IsELF(br) {
		return SkipBinary
	}
	return Keep
}

// IsELF peeks at the first four bytes without consuming them.
// Shorter input is never binary.
func IsELF(br *bufio.Reader) bool {
	head, err := br.Peek(len(elfMagic))
	if err != nil || len(head) < len(elfMagic) {
		return false
	}
	return bytes.Equal(head, elfMagic[:])
}
