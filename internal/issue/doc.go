// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error handling for the lodestone CLI.
//
// ActionableError carries the failed operation, the path involved and
// suggestions for the user. Issue holds longer Markdown guidance for the
// failure classes the CLI can run into, rendered with glamour.
package issue
