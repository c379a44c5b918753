// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Separators returns the characters treated as path separators on goos.
// Windows accepts both slashes; every other supported OS only uses '/'.
func Separators(goos string) string {
	if goos == Windows {
		return `/\`
	}
	return "/"
}

// CurrentSeparators returns Separators for the running OS.
func CurrentSeparators() string {
	return Separators(runtime.GOOS)
}
