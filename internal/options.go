package internal

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultMaxLineLength bounds a single line read, terminator included.
	DefaultMaxLineLength = 1024
	// DefaultMaxOpenDirs bounds how many directories may be open at once while walking.
	DefaultMaxOpenDirs = 20
)

// DefaultVCSMarkers are path segments whose subtrees are never searched.
var DefaultVCSMarkers = []string{".git", ".hg", ".svn"}

// SearchOptions - public options from CLI and config file.
type SearchOptions struct {
	Pattern       string
	Root          string
	MaxLineLength int
	MaxOpenDirs   int
	VCSMarkers    []string
	Archives      bool
	LogLevel      string
	LogFile       string

	markers map[string]struct{}
}

// DefaultSearchOptions returns options with every limit set to its default.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Root:          ".",
		MaxLineLength: DefaultMaxLineLength,
		MaxOpenDirs:   DefaultMaxOpenDirs,
		VCSMarkers:    append([]string(nil), DefaultVCSMarkers...),
		LogLevel:      "warn",
	}
}

// Validate checks invariants.
func (o *SearchOptions) Validate() error {
	if o.MaxLineLength < 0 {
		return fmt.Errorf("max-line-length must not be negative, got %d", o.MaxLineLength)
	}
	if o.MaxLineLength == 1 {
		return errors.New("max-line-length must leave room for at least one byte")
	}
	if o.MaxOpenDirs < 0 {
		return fmt.Errorf("max-open-dirs must not be negative, got %d", o.MaxOpenDirs)
	}
	return nil
}

// Prepare strips the pattern's trailing newline, builds lookup maps and fills defaults.
// Root is left alone: an explicit empty root is a missing path, not ".".
func (o *SearchOptions) Prepare() {
	o.Pattern = strings.TrimSuffix(o.Pattern, "\n")
	if o.MaxOpenDirs == 0 {
		o.MaxOpenDirs = DefaultMaxOpenDirs
	}
	o.markers = make(map[string]struct{}, len(o.VCSMarkers))
	for _, m := range o.VCSMarkers {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		o.markers[m] = struct{}{}
	}
}

// markerSet falls back to the defaults when Prepare was never called.
func (o *SearchOptions) markerSet() map[string]struct{} {
	if o.markers != nil {
		return o.markers
	}
	m := make(map[string]struct{}, len(DefaultVCSMarkers))
	for _, s := range DefaultVCSMarkers {
		m[s] = struct{}{}
	}
	return m
}
