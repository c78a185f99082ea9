// Package adrci locates and invokes the Automatic Diagnostic Repository
// command interpreter, and parses the two reports this tool needs from
// it: the repository base path and the registered home listing.
package adrci

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"oralog/internal/paths"
)

const toolName = "adrci"

// ErrToolUnavailable reports that no usable adrci executable exists on
// this host. Callers treat it as fatal: without the interpreter there
// is no repository to inspect.
var ErrToolUnavailable = errors.New("adrci not available on this host")

// lookPath is stubbed in tests.
var lookPath = exec.LookPath

// Locate resolves the adrci executable to invoke. An explicitly
// configured path wins and must exist; otherwise $ORACLE_HOME/bin/adrci
// is tried (profile environment first, process environment as
// fallback), then the system PATH.
func Locate(explicit, oracleHome string) (string, error) {
	if explicit != "" {
		if exists, _ := paths.FileExists(explicit); exists {
			return explicit, nil
		}
		return "", fmt.Errorf("configured adrci path %s is not usable: %w", explicit, ErrToolUnavailable)
	}
	if oracleHome == "" {
		oracleHome = os.Getenv("ORACLE_HOME")
	}
	if oracleHome != "" {
		candidate := filepath.Join(oracleHome, "bin", toolName)
		if exists, _ := paths.FileExists(candidate); exists {
			return candidate, nil
		}
	}
	if path, err := lookPath(toolName); err == nil {
		return path, nil
	}
	return "", ErrToolUnavailable
}

// QueryError reports a failed interpreter invocation. The first stderr
// line rides along so operator-facing warnings can name the cause
// without dumping the whole transcript.
type QueryError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("adrci %s: %v (%s)", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("adrci %s: %v", e.Command, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Client invokes one adrci binary. Bin must be set; Runner defaults to
// the real CmdRunner, Logger may be nil.
type Client struct {
	Bin    string
	Runner Runner
	Env    []string
	Logger *log.Logger
}

// ShowBase reports the repository base directory the interpreter is
// configured with. Unparseable output is an error like any invocation
// failure; the caller decides how to degrade.
func (c *Client) ShowBase(ctx context.Context) (string, error) {
	res, err := c.query(ctx, "show base")
	if err != nil {
		return "", err
	}
	base := ParseBase(string(res.Stdout))
	if base == "" {
		return "", &QueryError{Command: "show base", Err: errors.New("no base path in output")}
	}
	return base, nil
}

// ShowHomes reports the registered home paths relative to the base, in
// the interpreter's own order. Parsed lines are returned even when the
// invocation failed so callers can work from partial output.
func (c *Client) ShowHomes(ctx context.Context) ([]string, error) {
	res, err := c.query(ctx, "show homes")
	return ParseHomes(string(res.Stdout)), err
}

func (c *Client) query(ctx context.Context, command string) (RunResult, error) {
	runner := c.Runner
	if runner == nil {
		runner = CmdRunner{}
	}
	res, err := runner.Run(ctx, c.Bin, []string{"exec=" + command}, RunOptions{Env: c.Env})
	if c.Logger != nil {
		c.Logger.Printf("adrci exec=%q: stdout=%dB stderr=%dB err=%v", command, len(res.Stdout), len(res.Stderr), err)
	}
	if err != nil {
		return res, &QueryError{Command: command, Stderr: firstLine(res.Stderr), Err: err}
	}
	return res, nil
}
