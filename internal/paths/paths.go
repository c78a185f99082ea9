// Package paths resolves the user-level state locations: the profile
// file and the run-log directory under ~/.oralog.
package paths

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

const stateDirName = ".oralog"

// StateDir returns the user-level state directory (~/.oralog).
// It creates the directory if it does not exist.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, stateDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return dir, nil
}

// LogsDir returns the run-log directory (~/.oralog/logs).
// It creates the directory if it does not exist.
func LogsDir() (string, error) {
	state, err := StateDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(state, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create logs dir: %w", err)
	}
	return dir, nil
}

// ProfileFile returns the identity profile location
// (~/.oralog/profile.yaml) without creating anything; the file is
// optional and readers handle its absence.
func ProfileFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	return filepath.Join(home, stateDirName, "profile.yaml"), nil
}

// Identity returns the account name this run acts as. $USER wins when
// set, matching how database installs are addressed on shared hosts;
// the OS account database is the fallback.
func Identity() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "oracle"
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
