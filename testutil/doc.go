// Package testutil provides the testing helpers shared by the rfcurl packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Feeding stdin to code that reads it (WithStdin)
//   - Writing fixture files into a test directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestCheckCommand(t *testing.T) {
//	    path := testutil.WriteFile(t, t.TempDir(), "urls.txt", "http://example.com/\n")
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCheck(path)
//	    })
//
//	    if !strings.Contains(output, "1 valid") {
//	        t.Error("expected summary line")
//	    }
//	}
package testutil
