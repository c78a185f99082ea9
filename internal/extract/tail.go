package extract

import (
	"bufio"
	"io"
	"os"
)

// Alert logs carry occasional very long XML lines; give the scanner
// room well past bufio's default.
const maxLineBytes = 1 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}

// tailLines returns the last n lines of the file, without trailing
// newlines, or the whole file when it is shorter. A ring buffer keeps
// memory bounded by n regardless of file size.
func tailLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ring := make([]string, 0, n)
	next := 0
	wrapped := false

	scanner := newLineScanner(f)
	for scanner.Scan() {
		if len(ring) < n {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[next] = scanner.Text()
		next = (next + 1) % n
		wrapped = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !wrapped {
		return ring, nil
	}
	ordered := make([]string, 0, n)
	ordered = append(ordered, ring[next:]...)
	ordered = append(ordered, ring[:next]...)
	return ordered, nil
}
