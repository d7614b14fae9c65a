// Package redirect provides scoped substitution of the process's standard
// output stream.
//
// os.Stdout is process-global state. A package mutex guards each swap and
// restore so the assignments themselves are never torn, and windows nested
// on a single goroutine compose: each window restores exactly the stream it
// saw when it opened. Concurrent windows on separate goroutines still race
// on the shared stream, and code that spawns its own goroutines writing to
// standard output during a window has that output redirected or not
// depending on timing. Those races are inherent to global-stream redirection
// and are documented limitations of this package.
package redirect

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// mu guards swaps of os.Stdout so a save/set or restore is never torn.
var mu sync.Mutex

// Stdout runs fn with os.Stdout replaced by w. The prior stream is restored
// on every exit path, including a panic raised by fn.
func Stdout(w *os.File, fn func()) {
	mu.Lock()
	prev := os.Stdout
	os.Stdout = w
	mu.Unlock()

	defer func() {
		mu.Lock()
		os.Stdout = prev
		mu.Unlock()
	}()

	fn()
}

// Discard runs fn with standard output redirected to the null device. The
// device handle is opened per call and closed when the window ends, and the
// prior stream is restored on every exit path. If the null device cannot be
// opened, fn does not run and the open error is returned.
func Discard(fn func()) error {
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open null device: %w", err)
	}
	defer null.Close()

	Stdout(null, fn)
	return nil
}

// Capture runs fn and returns everything it wrote to standard output.
// Intended for tests of code whose output is normally suppressed.
func Capture(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("open capture pipe: %w", err)
	}

	out := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		out <- string(b)
	}()

	func() {
		defer w.Close()
		Stdout(w, fn)
	}()

	return <-out, nil
}
