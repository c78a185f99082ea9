package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"oralog/internal/adr"
)

// ErrAborted reports that the operator ended the selection without
// choosing anything.
var ErrAborted = errors.New("selection aborted")

// PromptPlain runs the selection on plain streams: a numbered menu,
// one input line per attempt, invalid input reported and re-prompted
// until a valid choice or EOF.
func PromptPlain(in io.Reader, out, errOut io.Writer, options []adr.Kind) (adr.Kind, error) {
	chooser := NewChooser(options)

	fmt.Fprintln(out, "Select logs to collect:")
	for i, kind := range options {
		fmt.Fprintf(out, "  %d) %-8s %s\n", i+1, kind, kind.Label())
	}
	fmt.Fprint(out, "choice: ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if chooser.Submit(scanner.Text()) == Resolved {
			fmt.Fprintln(out)
			return chooser.Choice(), nil
		}
		fmt.Fprintf(errOut, "invalid choice %q\n", chooser.InvalidInput())
		fmt.Fprint(out, "choice: ")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read selection: %w", err)
	}
	return "", ErrAborted
}
