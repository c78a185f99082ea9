package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
)

// OutputMode describes how the selection prompt is rendered.
type OutputMode int

const (
	// ModeTUI runs the full-screen bubbletea menu.
	ModeTUI OutputMode = iota
	// ModePlain falls back to a line-based numbered prompt.
	ModePlain
)

// DetectMode decides whether the interactive menu can run on the given
// streams. Both ends must be character devices, and TERM must name a
// capable terminal.
func DetectMode(in io.Reader, out io.Writer) OutputMode {
	if !isCharDevice(in) || !isCharDevice(out) {
		return ModePlain
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}

func isCharDevice(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
