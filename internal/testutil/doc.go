// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that touch process-wide state
// (working directory, environment) or the real filesystem. Each Must* helper
// fails the test immediately on error; helpers that change state return a
// function that restores it, suitable for t.Cleanup.
package testutil
