// SPDX-License-Identifier: MPL-2.0

// Package types defines the value types shared by the path utilities and the
// CLI. They carry validation but no behavior that touches the filesystem.
//
// This package is a leaf dependency: it imports only the standard library.
package types
