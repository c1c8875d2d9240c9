package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
// An error from fn is logged, not failed, so callers can assert on it separately.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	// Buffered so the reader never blocks if the test fails early.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		_, _ = io.Copy(&output, r)
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh
	_ = r.Close()

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// WithStdin replaces os.Stdin with a reader over content until the test ends.
//
// Example:
//
//	testutil.WithStdin(t, "http://example.com/\nHTTP://bad/\n")
func WithStdin(t *testing.T, content string) {
	t.Helper()

	path := WriteFile(t, t.TempDir(), "stdin", content)
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open stdin fixture: %v", err)
	}

	origStdin := os.Stdin
	os.Stdin = f
	t.Cleanup(func() {
		os.Stdin = origStdin
		_ = f.Close()
	})
}

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path. The test fails if the file cannot be written.
//
// Example:
//
//	cfg := testutil.WriteFile(t, t.TempDir(), ".rfcurl.yaml", "output: json\n")
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
