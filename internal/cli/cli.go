// Package cli wires the probe, catalog, selection, extraction, and
// archive stages into the oralog command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"oralog/internal/extract"
)

// Options is the run configuration resolved from the command line,
// built once and passed down. Nothing reads flags after this.
type Options struct {
	Zip       bool
	Grep      bool
	Help      bool
	NoInput   bool
	Version   bool
	TailLines int
	Component string
}

func newFlagSet(errOut io.Writer) (*pflag.FlagSet, *Options) {
	opts := &Options{}
	fs := pflag.NewFlagSet("oralog", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.BoolVarP(&opts.Zip, "zip", "z", false, "copy rendered logs into a staging area and seal a /tmp archive")
	fs.BoolVarP(&opts.Grep, "grep", "g", false, "also print whole-file lines matching error, warn, or ORA-")
	fs.BoolVarP(&opts.Help, "help", "h", false, "print usage, then carry on")
	fs.BoolVar(&opts.NoInput, "no-input", false, "never prompt; requires a component argument")
	fs.IntVar(&opts.TailLines, "tail", extract.DefaultTailLines, "lines rendered from the end of each log")
	fs.BoolVarP(&opts.Version, "version", "V", false, "print version and exit")
	fs.Usage = func() { usage(errOut, fs) }
	return fs, opts
}

// parseArgs resolves the command line. pflag reports unknown flags to
// errOut itself; the returned error only signals a usage failure.
func parseArgs(args []string, errOut io.Writer) (Options, *pflag.FlagSet, error) {
	fs, opts := newFlagSet(errOut)
	if err := fs.Parse(args); err != nil {
		return Options{}, fs, err
	}
	rest := fs.Args()
	switch {
	case len(rest) > 1:
		// Mirror pflag's own failure shape: message, then usage.
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(rest[1:], " "))
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return Options{}, fs, err
	case len(rest) == 1:
		opts.Component = rest[0]
	}
	return *opts, fs, nil
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `Usage: oralog [options] [component]

Renders the tail of every interesting diagnostic log registered on
this host, with optional filtering and archival.

Components:
  database   database instance logs
  asm        ASM instance logs
  crs        Clusterware (CRS) logs
  listener   net listener logs
  all        everything available on this host

Options:
`)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprint(w, `
Run without a component to pick one interactively from what the host
actually has.
`)
}
