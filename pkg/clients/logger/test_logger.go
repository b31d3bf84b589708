package logger

import (
	"strings"
	"sync"
	"testing"
)

// testWriter writes to the test log until the test completes, output from
// goroutines which outlive the test is dropped
type testWriter struct {
	t    *testing.T
	mu   sync.Mutex
	done bool
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.done {
		w.t.Log(strings.TrimRight(string(p), "\n"))
	}

	return len(p), nil
}

// NewTestLogger creates a debug level logger which writes to the test output
func NewTestLogger(t *testing.T) Logger {
	w := &testWriter{t: t}
	t.Cleanup(func() {
		w.mu.Lock()
		w.done = true
		w.mu.Unlock()
	})

	return NewLogger(w, LogLevelDebug)
}
