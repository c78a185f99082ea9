// Package archive owns the staging area for files destined for the
// run's compressed bundle, and the bundle itself. The staging
// directory has exactly one owner: whoever called Open must call Close
// on every exit path.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
)

// DefaultOutDir is where sealed archives land.
const DefaultOutDir = "/tmp"

// ErrNothingStaged reports that Seal found an empty staging area and
// skipped creating an archive.
var ErrNothingStaged = errors.New("nothing staged")

var nowFunc = time.Now

// Area is one run's staging directory.
type Area struct {
	dir string
	// OutDir overrides where Seal writes; empty means DefaultOutDir.
	OutDir string
	once   sync.Once
}

// Open creates a process-unique staging directory. It is widened to
// world-writable because the copy step may run under a different
// effective identity than the archiver; failure to widen is returned
// as a warning string, never an error.
func Open() (*Area, string, error) {
	dir, err := os.MkdirTemp("", "oralog-stage-")
	if err != nil {
		return nil, "", fmt.Errorf("create staging dir: %w", err)
	}
	var warning string
	if err := os.Chmod(dir, 0o777); err != nil {
		warning = fmt.Sprintf("staging dir %s kept default permissions: %v", dir, err)
	}
	return &Area{dir: dir}, warning, nil
}

// Dir exposes the staging path for logs and warnings.
func (a *Area) Dir() string { return a.dir }

// Stage copies src byte-for-byte into the staging area under its base
// name. A failure comes back as a single error carrying the context an
// operator needs (source state, staging directory state, writability);
// nothing escapes past the call.
func (a *Area) Stage(src string) error {
	dest := filepath.Join(a.dir, filepath.Base(src))
	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("stage %s: %w%s", filepath.Base(src), err, a.describeFailure(src))
	}
	return nil
}

// describeFailure gathers listing-style diagnostics for a failed copy.
// This runs only when composing the warning, never during the copy.
func (a *Area) describeFailure(src string) string {
	var parts []string
	if fi, err := os.Stat(src); err == nil {
		parts = append(parts, fmt.Sprintf("source mode %s size %d", fi.Mode(), fi.Size()))
	} else {
		parts = append(parts, fmt.Sprintf("source stat: %v", err))
	}
	if fi, err := os.Stat(a.dir); err == nil {
		parts = append(parts, fmt.Sprintf("staging mode %s", fi.Mode()))
	} else {
		parts = append(parts, fmt.Sprintf("staging stat: %v", err))
	}
	if probe, err := os.CreateTemp(a.dir, ".probe-*"); err == nil {
		probe.Close()
		os.Remove(probe.Name())
		parts = append(parts, "staging writable")
	} else {
		parts = append(parts, "staging not writable")
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// Seal compresses the staged files into
// <OutDir>/logs_<YYYYMMDD_HHMMSS>.tar.gz. An empty area returns
// ErrNothingStaged and leaves no file; any failure removes the partial
// archive so a bad bundle never survives.
func (a *Area) Seal() (string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return "", fmt.Errorf("list staging dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", ErrNothingStaged
	}

	outDir := a.OutDir
	if outDir == "" {
		outDir = DefaultOutDir
	}
	path := filepath.Join(outDir, "logs_"+nowFunc().Format("20060102_150405")+".tar.gz")
	if err := a.writeArchive(path, names); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("create archive: %w", err)
	}
	return path, nil
}

func (a *Area) writeArchive(path string, names []string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	for _, name := range names {
		if err := a.addEntry(tw, name); err != nil {
			tw.Close()
			gz.Close()
			out.Close()
			return err
		}
	}

	if err := tw.Close(); err != nil {
		gz.Close()
		out.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (a *Area) addEntry(tw *tar.Writer, name string) error {
	path := filepath.Join(a.dir, name)
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	header, err := tar.FileInfoHeader(fi, "")
	if err != nil {
		return err
	}
	header.Name = name
	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(tw, f)
	return err
}

// Close removes the staging directory. Safe to call any number of
// times and after the directory is already gone; the first call does
// the work.
func (a *Area) Close() error {
	var err error
	a.once.Do(func() {
		err = os.RemoveAll(a.dir)
	})
	return err
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}
