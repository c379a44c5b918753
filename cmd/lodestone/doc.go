// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for lodestone.
//
// This package implements the Cobra command hierarchy: the path commands
// (clean, unique, sanitize, reserve), the rules page and configuration
// management. Commands are built from an App so tests can swap the
// filesystem, configuration source and output streams.
package cmd
