package tui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StatusWriter renders a one-line spinner while the probe and catalog
// phases run. Stop it before anything else writes to the same stream.
type StatusWriter struct {
	w       io.Writer
	mu      sync.Mutex
	message string
	started time.Time
	done    chan struct{}
	stopped bool
}

// NewStatusWriter starts a background spinner on w.
func NewStatusWriter(w io.Writer) *StatusWriter {
	sw := &StatusWriter{
		w:       w,
		started: time.Now(),
		done:    make(chan struct{}),
	}
	go sw.loop()
	return sw
}

// Update changes the message next to the spinner and restarts the
// elapsed display for the new phase.
func (sw *StatusWriter) Update(msg string) {
	sw.mu.Lock()
	sw.message = msg
	sw.started = time.Now()
	sw.mu.Unlock()
}

// Stop clears the status line and ends the spinner. Safe to call more
// than once; once it returns, nothing further is written to the stream.
func (sw *StatusWriter) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.stopped {
		return
	}
	sw.stopped = true
	close(sw.done)
	fmt.Fprint(sw.w, "\r\033[K")
}

func (sw *StatusWriter) loop() {
	tick := 0
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sw.done:
			return
		case <-ticker.C:
			sw.mu.Lock()
			if sw.stopped {
				sw.mu.Unlock()
				return
			}
			frame := spinnerFrames[tick%len(spinnerFrames)]
			tick++
			fmt.Fprintf(sw.w, "\r\033[K%s %s (%.1fs)", frame, sw.message, time.Since(sw.started).Seconds())
			sw.mu.Unlock()
		}
	}
}
