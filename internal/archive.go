package internal

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"

	"github.com/mholt/archives"
	"github.com/sirupsen/logrus"
)

const maxArchiveFiles = 10000 // zip-bomb protection

var errArchiveLimit = errors.New("archive file limit reached")

// searchArchive scans every regular entry of the archive at archivePath as if it
// were a file named "<archivePath>/<entry>". An archive that cannot be opened is
// skipped like an unreadable file.
func (f *Finder) searchArchive(ctx context.Context, archivePath string) (int, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		f.unreadable(archivePath, err)
		return 0, nil
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer closer.Close()
	}

	total, count := 0, 0
	var fatal error
	walkErr := iofs.WalkDir(fsys, ".", func(inner string, d iofs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"archive": archivePath, "inner": inner}).Warn("Skip unreadable archive entry")
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if count >= maxArchiveFiles {
			logrus.Warnf("Archive %s truncated: too many files (>= %d)", archivePath, maxArchiveFiles)
			return errArchiveLimit
		}
		count++

		name := archivePath + "/" + inner
		if inner == "." {
			// single compressed file such as log.txt.gz
			name = archivePath
		}
		if f.opts.IsVCSPath(name) {
			f.skip(name, SkipVCS)
			return nil
		}
		entry, err := fsys.Open(inner)
		if err != nil {
			f.unreadable(name, err)
			return nil
		}
		defer entry.Close()

		n, err := f.searchReader(entry, name)
		total += n
		if err != nil {
			fatal = err
			return err
		}
		return nil
	})
	if fatal != nil {
		return total, fatal
	}
	if walkErr != nil && !errors.Is(walkErr, errArchiveLimit) {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		logrus.WithError(walkErr).WithField("archive", archivePath).Warn("Archive walk stopped")
	}
	return total, nil
}
