package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"oralog/internal/adr"
	"oralog/internal/adrci"
	"oralog/internal/archive"
	"oralog/internal/extract"
	"oralog/internal/logx"
	"oralog/internal/paths"
	"oralog/internal/profile"
	"oralog/internal/tui"
	"oralog/internal/version"
)

// Execute runs the command with the process streams and exits with its
// code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// newQuerier builds the real tool client; tests substitute fakes.
var newQuerier = func(prof profile.Profile, logger *log.Logger) (adr.Querier, string, error) {
	bin, err := adrci.Locate(prof.ADRCI, prof.OracleHome())
	if err != nil {
		return nil, "", err
	}
	return &adrci.Client{Bin: bin, Env: prof.Environ(), Logger: logger}, bin, nil
}

// archiveOutDir redirects sealed archives away from /tmp in tests.
var archiveOutDir string

type run struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	log      *log.Logger
	styled   bool
	warnings int
}

func (r *run) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.warnings++
	line := "warning: " + msg
	if r.styled {
		line = tui.WarnStyle.Render(line)
	}
	fmt.Fprintln(r.stderr, line)
	r.log.Printf("warning: %s", msg)
}

func (r *run) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	line := "error: " + msg
	if r.styled {
		line = tui.ErrorStyle.Render(line)
	}
	fmt.Fprintln(r.stderr, line)
	r.log.Printf("error: %s", msg)
}

// Run executes one collection pass and returns the process exit code.
// It never calls os.Exit on its own paths so tests can drive it end to
// end; the interrupt watcher is the single exception.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		return 1
	}
	if opts.Version {
		fmt.Fprintf(stdout, "oralog %s\n", version.Version)
		return 0
	}
	if opts.Help {
		usage(stdout, fs)
	}

	mode := tui.DetectMode(stdin, stdout)
	r := &run{stdin: stdin, stdout: stdout, stderr: stderr, log: logx.Discard(), styled: mode == tui.ModeTUI}
	if logger, closer, err := logx.New(); err == nil {
		r.log = logger
		defer closer.Close()
	} else {
		r.warnf("run log unavailable: %v", err)
	}
	r.log.Printf("oralog %s starting, args=%q", version.Version, args)

	ctx := context.Background()
	prof := r.loadProfile()

	q, bin, err := newQuerier(prof, r.log)
	if err != nil {
		r.errorf("%v", err)
		return 1
	}
	r.log.Printf("query tool: %s", bin)

	var status *tui.StatusWriter
	if mode == tui.ModeTUI {
		status = tui.NewStatusWriter(stderr)
		status.Update("probing diagnostic environment")
	}
	env, probeWarnings := adr.Probe(ctx, paths.Identity(), prof.Base, q)
	if status != nil {
		status.Stop()
	}
	for _, w := range probeWarnings {
		r.warnf("%s", w)
	}
	r.log.Printf("environment: base=%s components=%v", env.BaseDir, env.Caps.List())

	requested, code, ok := r.selectKind(opts, fs, env, mode)
	if !ok {
		return code
	}
	kinds, err := adr.Resolve(env, requested)
	if err != nil {
		r.errorf("%v", err)
		return 1
	}
	r.log.Printf("selected %s, resolved to %v", requested, kinds)

	var area *archive.Area
	var stageFn func(string) error
	if opts.Zip {
		a, warning, err := archive.Open()
		if err != nil {
			r.warnf("archiving disabled: %v", err)
		} else {
			area = a
			if warning != "" {
				r.warnf("%s", warning)
			}
			if archiveOutDir != "" {
				area.OutDir = archiveOutDir
			}
			defer area.Close()
			defer watchInterrupt(area)()
			stageFn = area.Stage
			r.log.Printf("staging area: %s", area.Dir())
		}
	}

	type kindPlan struct {
		kind  adr.Kind
		homes []adr.Home
	}
	var plan []kindPlan
	totalHomes := 0
	for _, kind := range kinds {
		homes, err := adr.Catalog(ctx, env, kind, q)
		if err != nil {
			r.errorf("%v", err)
			return 1
		}
		if len(homes) == 0 {
			r.warnf("no diagnostic homes registered for %s", kind)
		}
		for _, h := range homes {
			r.log.Printf("home %s: %s", h.Kind, h.Path)
		}
		plan = append(plan, kindPlan{kind: kind, homes: homes})
		totalHomes += len(homes)
	}
	if totalHomes == 0 {
		r.errorf("%v", adr.ErrNoHomes)
		return 1
	}

	ex := &extract.Extractor{
		Out:       stdout,
		Warn:      stderr,
		TailLines: opts.TailLines,
		Filter:    opts.Grep,
		Stage:     stageFn,
		Log:       r.log,
	}
	var total extract.HomeResult
	visited := 0
	for _, p := range plan {
		var kindTotal extract.HomeResult
		for _, h := range p.homes {
			visited++
			kindTotal.Add(ex.ExtractHome(h.Path))
		}
		if len(p.homes) > 0 && kindTotal.Rendered == 0 {
			fmt.Fprintf(stdout, "no logs found for %s\n", p.kind)
		}
		total.Add(kindTotal)
	}
	r.warnings += total.Warnings

	archivePath := ""
	if area != nil {
		path, err := area.Seal()
		switch {
		case errors.Is(err, archive.ErrNothingStaged):
			r.warnf("nothing staged; archive skipped")
		case err != nil:
			r.warnf("%v", err)
		default:
			archivePath = path
			r.log.Printf("sealed %s", path)
		}
	}

	fmt.Fprintf(stdout, "\nvisited %d homes: %d files rendered, %d staged, %d warnings\n",
		visited, total.Rendered, total.Staged, r.warnings)
	if archivePath != "" {
		fmt.Fprintf(stdout, "archive: %s\n", archivePath)
	}
	r.log.Printf("done: homes=%d rendered=%d staged=%d warnings=%d",
		visited, total.Rendered, total.Staged, r.warnings)
	return 0
}

// loadProfile reads the identity profile. Absence or damage only costs
// the run its tool-location hints, so both degrade to a warning and the
// probe carries on.
func (r *run) loadProfile() profile.Profile {
	path, err := paths.ProfileFile()
	if err != nil {
		r.warnf("profile location unknown: %v", err)
		return profile.Profile{}
	}
	prof, found, err := profile.Load(path)
	switch {
	case err != nil:
		r.warnf("profile %s unusable: %v", path, err)
		return profile.Profile{}
	case !found:
		r.warnf("no profile at %s; tool location hints may be missing", path)
	}
	return prof
}

// selectKind resolves which component the run is about: the validated
// positional token when present, otherwise an interactive selection.
func (r *run) selectKind(opts Options, fs *pflag.FlagSet, env adr.Environment, mode tui.OutputMode) (adr.Kind, int, bool) {
	if opts.Component != "" {
		kind, err := adr.ParseKind(opts.Component)
		if err != nil {
			r.errorf("%v", err)
			usage(r.stderr, fs)
			return "", 1, false
		}
		return kind, 0, true
	}
	if opts.NoInput {
		r.errorf("no component specified")
		return "", 1, false
	}

	options := adr.Available(env)
	if len(options) == 0 {
		r.errorf("no components available in this environment")
		return "", 1, false
	}

	var (
		kind adr.Kind
		err  error
	)
	if mode == tui.ModeTUI {
		kind, err = tui.RunMenu(r.stdin, r.stdout, options)
	} else {
		kind, err = tui.PromptPlain(r.stdin, r.stdout, r.stderr, options)
	}
	if err != nil {
		r.errorf("%v", err)
		return "", 1, false
	}
	return kind, 0, true
}

// watchInterrupt removes the staging area when the process is torn
// down mid-run; deferred Close covers every normal path. The returned
// stop function releases the watcher.
func watchInterrupt(area *archive.Area) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigCh; !ok {
			return
		}
		area.Close()
		os.Exit(1)
	}()
	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
