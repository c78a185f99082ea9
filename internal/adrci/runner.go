package adrci

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// RunOptions carries the per-invocation settings for the query tool.
// Env entries are KEY=VALUE pairs appended to the inherited process
// environment, e.g. ORACLE_HOME from the identity profile.
type RunOptions struct {
	Env []string
}

// RunResult holds the captured output of one tool invocation.
type RunResult struct {
	Stdout []byte
	Stderr []byte
}

// Runner executes external commands. Tests substitute fakes that
// replay canned tool output.
type Runner interface {
	Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error)
}

// CmdRunner is the real Runner backed by os/exec.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	return RunResult{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}, err
}

var _ Runner = CmdRunner{}
