package internal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const AppName = "linefinder"

// Exit codes. Path-not-found shares ExitNoMatch; the diagnostic tells them apart.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitUsage   = 2
)

// Mode is how a run reads its input.
type Mode int

const (
	ModeUsage Mode = iota
	ModeTree
	ModePiped
)

// SelectMode applies the invocation rule: no arguments on a terminal is a usage
// error; a terminal stdin or an explicit PATH walks the tree; otherwise stdin is read.
func SelectMode(nargs int, stdinTTY bool) Mode {
	if nargs == 0 && stdinTTY {
		return ModeUsage
	}
	if stdinTTY || nargs > 1 {
		return ModeTree
	}
	return ModePiped
}

// Invocation is what the command line hands to Run.
type Invocation struct {
	Args     []string // PATTERN [PATH]
	StdinTTY bool
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run performs one search and returns the process exit code.
func Run(ctx context.Context, opts SearchOptions, inv Invocation) int {
	mode := SelectMode(len(inv.Args), inv.StdinTTY)
	if mode == ModeUsage {
		fmt.Fprintf(inv.Stderr, "Usage: %s PATTERN [PATH]\n", AppName)
		return ExitUsage
	}
	if len(inv.Args) == 0 {
		fmt.Fprintf(inv.Stderr, "%s: No pattern provided\n", AppName)
		return ExitNoMatch
	}

	opts.Pattern = inv.Args[0]
	switch {
	case mode == ModeTree && len(inv.Args) > 1:
		opts.Root = inv.Args[1]
	case opts.Root == "":
		opts.Root = "."
	}
	opts.Prepare()

	out := bufio.NewWriter(inv.Stdout)
	finder := NewFinder(opts, out, inv.Stderr)

	var (
		matches int
		err     error
	)
	if mode == ModeTree {
		matches, err = finder.SearchTree(ctx, opts.Root)
	} else {
		matches, err = finder.SearchStream(inv.Stdin)
	}
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = ferr
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrPathNotFound):
		fmt.Fprintf(inv.Stderr, "%s: %s: No such file or directory\n", AppName, opts.Root)
		return ExitNoMatch
	case errors.Is(err, ErrDirBudgetExceeded):
		fmt.Fprintf(inv.Stderr, "%s: %v\n", AppName, err)
		return ExitNoMatch
	default:
		if ctx.Err() != nil {
			logrus.Warn("Search cancelled")
		} else {
			logrus.WithError(err).Error("Search failed")
		}
		return ExitNoMatch
	}

	if matches == 0 {
		return ExitNoMatch
	}
	return ExitMatch
}
