package internal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

// Finder runs one search: a tree walk or a single stream.
type Finder struct {
	opts   SearchOptions
	rep    *Reporter
	stderr io.Writer
	Stats  RunStats
}

// NewFinder expects opts to be validated and prepared. Results go to out,
// per-file diagnostics to errOut.
func NewFinder(opts SearchOptions, out, errOut io.Writer) *Finder {
	if errOut == nil {
		errOut = io.Discard
	}
	return &Finder{
		opts:   opts,
		rep:    NewReporter(out, opts.Pattern, DefaultPalette()),
		stderr: errOut,
	}
}

// SearchTree collects every candidate under root first, then scans them in order.
// It returns the total number of matching lines.
func (f *Finder) SearchTree(ctx context.Context, root string) (int, error) {
	f.Stats.Start()
	defer f.Stats.Log()
	defer func() { f.Stats.FilesMatched = f.rep.Headers() }()

	paths, err := CollectPaths(ctx, root, f.opts)
	if err != nil {
		return 0, err
	}
	f.Stats.FilesFound = len(paths)

	total := 0
	for _, path := range paths {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		n, err := f.searchPath(ctx, path)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SearchStream scans r with no classification and no headers.
func (f *Finder) SearchStream(r io.Reader) (int, error) {
	f.Stats.Start()
	defer f.Stats.Log()

	n, err := ScanLines(bufio.NewReader(r), f.opts.Pattern, f.opts.MaxLineLength, f.rep.Line)
	f.Stats.Matches += n
	return n, err
}

func (f *Finder) searchPath(ctx context.Context, path string) (int, error) {
	if f.opts.IsVCSPath(path) {
		f.skip(path, SkipVCS)
		return 0, nil
	}
	if f.opts.Archives && IsArchive(path) {
		return f.searchArchive(ctx, path)
	}

	file, err := os.Open(path)
	if err != nil {
		f.unreadable(path, err)
		return 0, nil
	}
	defer file.Close()

	return f.searchReader(file, path)
}

// searchReader applies the binary check and scans one file's content under name.
// Read errors end that file only; reporter errors end the run.
func (f *Finder) searchReader(r io.Reader, name string) (int, error) {
	br := bufio.NewReader(r)
	if v := classifyContent(br); v != Keep {
		f.skip(name, v)
		return 0, nil
	}
	f.Stats.FilesScanned++
	f.rep.StartFile(name)

	var repErr error
	n, err := ScanLines(br, f.opts.Pattern, f.opts.MaxLineLength, func(lineNo int, line string) error {
		if err := f.rep.Line(lineNo, line); err != nil {
			repErr = err
			return err
		}
		return nil
	})
	f.Stats.Matches += n
	if repErr != nil {
		return n, repErr
	}
	if err != nil && !errors.Is(err, io.EOF) {
		f.Stats.Errors++
		logrus.WithError(err).WithField("file", name).Error("Error reading file")
	}
	return n, nil
}

// unreadable logs the failure and tells the user on the run's error stream.
func (f *Finder) unreadable(name string, err error) {
	f.Stats.Errors++
	f.skip(name, SkipUnreadable)
	logrus.WithError(err).WithField("file", name).Error("Error opening file")

	var pe *iofs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	fmt.Fprintf(f.stderr, "%s: %s: %v\n", AppName, name, err)
}

func (f *Finder) skip(path string, v Verdict) {
	f.Stats.FilesSkipped++
	logrus.WithFields(logrus.Fields{"file": path, "reason": v}).Debug("Skip file")
}
