package adrci

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFakeTool(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, toolName)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return path
}

func TestLocateExplicitPath(t *testing.T) {
	path := writeFakeTool(t, t.TempDir())

	got, err := Locate(path, "")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != path {
		t.Fatalf("got %q, want %q", got, path)
	}
}

func TestLocateExplicitPathMissing(t *testing.T) {
	_, err := Locate("/nonexistent/adrci", "")
	if !errors.Is(err, ErrToolUnavailable) {
		t.Fatalf("expected ErrToolUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "/nonexistent/adrci") {
		t.Fatalf("error should name the configured path: %v", err)
	}
}

func TestLocateOracleHome(t *testing.T) {
	home := t.TempDir()
	binDir := filepath.Join(home, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeFakeTool(t, binDir)

	got, err := Locate("", home)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocatePathFallback(t *testing.T) {
	t.Setenv("ORACLE_HOME", "")
	orig := lookPath
	defer func() { lookPath = orig }()
	lookPath = func(file string) (string, error) {
		if file != toolName {
			t.Fatalf("unexpected lookup %q", file)
		}
		return "/usr/local/bin/adrci", nil
	}

	got, err := Locate("", "")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != "/usr/local/bin/adrci" {
		t.Fatalf("got %q", got)
	}
}

func TestLocateNothingFound(t *testing.T) {
	t.Setenv("ORACLE_HOME", "")
	orig := lookPath
	defer func() { lookPath = orig }()
	lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	_, err := Locate("", filepath.Join(t.TempDir(), "nohome"))
	if !errors.Is(err, ErrToolUnavailable) {
		t.Fatalf("expected ErrToolUnavailable, got %v", err)
	}
}

type scriptRunner struct {
	stdout  string
	stderr  string
	err     error
	command string
	args    []string
	env     []string
}

func (r *scriptRunner) Run(_ context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	r.command = command
	r.args = append([]string(nil), args...)
	r.env = append([]string(nil), opts.Env...)
	return RunResult{Stdout: []byte(r.stdout), Stderr: []byte(r.stderr)}, r.err
}

func TestClientShowBase(t *testing.T) {
	runner := &scriptRunner{stdout: "ADR base is \"/u01/app/oracle\"\n"}
	c := &Client{Bin: "/opt/bin/adrci", Runner: runner, Env: []string{"ORACLE_SID=orcl1"}}

	base, err := c.ShowBase(context.Background())
	if err != nil {
		t.Fatalf("show base: %v", err)
	}
	if base != "/u01/app/oracle" {
		t.Fatalf("base = %q", base)
	}
	if runner.command != "/opt/bin/adrci" {
		t.Fatalf("command = %q", runner.command)
	}
	if len(runner.args) != 1 || runner.args[0] != "exec=show base" {
		t.Fatalf("args = %v", runner.args)
	}
	if len(runner.env) != 1 || runner.env[0] != "ORACLE_SID=orcl1" {
		t.Fatalf("env not forwarded: %v", runner.env)
	}
}

func TestClientShowBaseUnparseable(t *testing.T) {
	runner := &scriptRunner{stdout: "garbage\n"}
	c := &Client{Bin: "adrci", Runner: runner}

	_, err := c.ShowBase(context.Background())
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if qerr.Command != "show base" {
		t.Fatalf("command = %q", qerr.Command)
	}
}

func TestClientShowHomesPartialOnFailure(t *testing.T) {
	runner := &scriptRunner{
		stdout: "ADR Homes: \ndiag/rdbms/orcl/orcl1\n",
		stderr: "DIA-48447: permission denied\ndetail line\n",
		err:    errors.New("exit status 1"),
	}
	c := &Client{Bin: "adrci", Runner: runner}

	homes, err := c.ShowHomes(context.Background())
	if len(homes) != 1 || homes[0] != "diag/rdbms/orcl/orcl1" {
		t.Fatalf("partial homes not returned: %v", homes)
	}
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if qerr.Stderr != "DIA-48447: permission denied" {
		t.Fatalf("stderr tail = %q", qerr.Stderr)
	}
	if !strings.Contains(qerr.Error(), "DIA-48447") {
		t.Fatalf("message should carry the stderr tail: %v", qerr)
	}
}

func TestClientShowHomesClean(t *testing.T) {
	runner := &scriptRunner{stdout: "ADR Homes: \ndiag/asm/+asm/+ASM1\ndiag/crs/db01/crs\n"}
	c := &Client{Bin: "adrci", Runner: runner}

	homes, err := c.ShowHomes(context.Background())
	if err != nil {
		t.Fatalf("show homes: %v", err)
	}
	if len(homes) != 2 {
		t.Fatalf("homes = %v", homes)
	}
	if len(runner.args) != 1 || runner.args[0] != "exec=show homes" {
		t.Fatalf("args = %v", runner.args)
	}
}
