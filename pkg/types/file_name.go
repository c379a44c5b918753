// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ForbiddenFileNameChars lists the characters that are illegal or hazardous
// in a file name on at least one common platform.
const ForbiddenFileNameChars = `*:"'\/?<>|`

// ErrInvalidFileName is the sentinel error wrapped by InvalidFileNameError.
var ErrInvalidFileName = errors.New("invalid file name")

type (
	// FileName is a single path element: the final segment of a path,
	// without any directory component.
	FileName string

	// InvalidFileNameError is returned when a FileName is empty, names the
	// current or parent directory, or contains a forbidden character.
	InvalidFileNameError struct {
		Value  FileName
		Reason string
	}
)

// String returns the string representation of the FileName.
func (n FileName) String() string { return string(n) }

// Validate returns an error if n cannot be used as a file or directory name.
func (n FileName) Validate() error {
	switch {
	case strings.TrimSpace(string(n)) == "":
		return &InvalidFileNameError{Value: n, Reason: "must contain non-whitespace characters"}
	case n == "." || n == "..":
		return &InvalidFileNameError{Value: n, Reason: "must not name a directory reference"}
	case strings.ContainsAny(string(n), ForbiddenFileNameChars):
		return &InvalidFileNameError{Value: n, Reason: fmt.Sprintf("must not contain any of %s", ForbiddenFileNameChars)}
	}
	return nil
}

// Error implements the error interface for InvalidFileNameError.
func (e *InvalidFileNameError) Error() string {
	return fmt.Sprintf("invalid file name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidFileName for errors.Is() compatibility.
func (e *InvalidFileNameError) Unwrap() error { return ErrInvalidFileName }
