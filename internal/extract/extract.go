// Package extract renders the tail of the interesting log files under
// a diagnostic home and optionally hands them off for archival.
package extract

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"oralog/internal/paths"
)

// DefaultTailLines is how much of each log is rendered when the caller
// does not ask for a specific amount.
const DefaultTailLines = 100

// filterMarkers are matched case-insensitively against every line of a
// log when filter mode is on.
var filterMarkers = []string{"error", "warn", "ora-"}

// Extractor walks diagnostic homes one at a time. Failures local to a
// single file degrade to warnings; nothing here aborts the run.
type Extractor struct {
	Out       io.Writer
	Warn      io.Writer
	TailLines int
	Filter    bool
	// Stage copies one file into the staging area when archiving is on;
	// nil means archiving is off. The staging directory itself is never
	// visible to this package.
	Stage func(src string) error
	Log   *log.Logger
}

// HomeResult tallies one home's contribution to the run.
type HomeResult struct {
	Rendered int
	Staged   int
	Warnings int
}

// Add folds another home's tally into this one.
func (r *HomeResult) Add(other HomeResult) {
	r.Rendered += other.Rendered
	r.Staged += other.Staged
	r.Warnings += other.Warnings
}

// ExtractHome processes the trace directory of one diagnostic home.
// Homes without a trace directory are sparse, not broken; they are
// skipped without a word.
func (e *Extractor) ExtractHome(homePath string) HomeResult {
	var res HomeResult

	traceDir := filepath.Join(homePath, "trace")
	if exists, _ := paths.DirExists(traceDir); !exists {
		e.logf("home %s: no trace directory", homePath)
		return res
	}

	for _, path := range selectLogs(traceDir) {
		e.processFile(path, &res)
	}
	return res
}

// selectLogs applies the fixed selection rule: when any alert*.log
// exists directly in the trace directory, all of them are taken;
// otherwise the single *.log with the newest modification time;
// otherwise nothing. Globs are non-recursive and lexically ordered,
// which also decides modification-time ties.
func selectLogs(traceDir string) []string {
	alerts, _ := filepath.Glob(filepath.Join(traceDir, "alert*.log"))
	if len(alerts) > 0 {
		return alerts
	}

	generic, _ := filepath.Glob(filepath.Join(traceDir, "*.log"))
	var newest string
	var newestMod time.Time
	for _, path := range generic {
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		if newest == "" || fi.ModTime().After(newestMod) {
			newest = path
			newestMod = fi.ModTime()
		}
	}
	if newest == "" {
		return nil
	}
	return []string{newest}
}

func (e *Extractor) processFile(path string, res *HomeResult) {
	lines, err := tailLines(path, e.tail())
	if err != nil {
		e.warnf(res, "cannot read %s: %v", path, err)
		e.describe(path)
	} else {
		fmt.Fprintf(e.Out, "==> %s <==\n", path)
		for _, line := range lines {
			fmt.Fprintln(e.Out, line)
		}
		res.Rendered++
		e.logf("rendered %d lines of %s", len(lines), path)
	}

	if e.Filter {
		matched, err := e.renderFiltered(path)
		if err != nil {
			e.warnf(res, "cannot filter %s: %v", path, err)
		} else {
			e.logf("filter matched %d lines in %s", matched, path)
		}
	}

	if e.Stage != nil {
		if err := e.Stage(path); err != nil {
			e.warnf(res, "%v", err)
		} else {
			res.Staged++
			e.logf("staged %s", filepath.Base(path))
		}
	}
}

// renderFiltered emits every line of the whole file matching one of the
// fixed markers. It adds to the base render and never replaces it; a
// file with no matches contributes nothing, not even a header.
func (e *Extractor) renderFiltered(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	matched := 0
	scanner := newLineScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !matchesFilter(line) {
			continue
		}
		if matched == 0 {
			fmt.Fprintf(e.Out, "==> %s (filtered) <==\n", path)
		}
		fmt.Fprintln(e.Out, line)
		matched++
	}
	return matched, scanner.Err()
}

func matchesFilter(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range filterMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// describe appends an ls-style listing of an unreadable file to the
// warning stream so the operator can see why access failed.
func (e *Extractor) describe(path string) {
	fi, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(e.Warn, "  %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(e.Warn, "  %s: mode %s, size %d, modified %s\n",
		path, fi.Mode(), fi.Size(), fi.ModTime().Format(time.RFC3339))
}

func (e *Extractor) tail() int {
	if e.TailLines > 0 {
		return e.TailLines
	}
	return DefaultTailLines
}

func (e *Extractor) warnf(res *HomeResult, format string, args ...any) {
	res.Warnings++
	fmt.Fprintf(e.Warn, "warning: "+format+"\n", args...)
}

func (e *Extractor) logf(format string, args ...any) {
	if e.Log != nil {
		e.Log.Printf(format, args...)
	}
}
