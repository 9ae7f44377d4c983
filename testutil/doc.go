// Package testutil provides common testing utilities for the urlprefix packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput, CaptureOutputErr)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing fixture files into a temporary directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestEndpointsCommand(t *testing.T) {
//	    path := testutil.WriteFile(t, "urlprefix.yaml", fixture)
//	    output, err := testutil.CaptureOutputErr(t, func() error {
//	        return runCommand("endpoints", "--config", path)
//	    })
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	}
package testutil
