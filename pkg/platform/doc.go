// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating-system specific constants used when
// reasoning about path syntax.
package platform
