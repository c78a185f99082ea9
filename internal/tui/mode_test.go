package tui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer keeps the spinner goroutine's writes race-free.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDetectModeNonFileStreams(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	if got := DetectMode(in, &out); got != ModePlain {
		t.Fatalf("mode = %v, want ModePlain for buffers", got)
	}
}

func TestStatusWriterRendersAndClears(t *testing.T) {
	var buf syncBuffer
	sw := NewStatusWriter(&buf)
	sw.Update("probing diagnostic environment")
	time.Sleep(350 * time.Millisecond)
	sw.Stop()

	if !strings.Contains(buf.String(), "probing diagnostic environment") {
		t.Fatalf("status line never rendered: %q", buf.String())
	}

	// Second stop is a no-op.
	sw.Stop()
}
