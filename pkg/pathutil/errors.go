// SPDX-License-Identifier: MPL-2.0

package pathutil

import (
	"errors"
	"fmt"

	"github.com/lodestone/lodestone/pkg/types"
)

var (
	// ErrNoValidFileNameChars is returned by Clean when nothing usable is left
	// of the final segment once forbidden characters are removed.
	ErrNoValidFileNameChars = errors.New("path did not contain any valid filename characters")
	// ErrExistenceCheck is matched by errors returned when probing whether a
	// path exists fails for a reason other than the path being absent.
	ErrExistenceCheck = errors.New("existence check failed")
	// ErrNoFileName is returned by Reserve for paths without a final segment.
	ErrNoFileName = errors.New("path has no file name")
	// ErrReserveExhausted is the sentinel error wrapped by ReserveError.
	ErrReserveExhausted = errors.New("could not reserve a unique name")
)

type (
	// EmptyFileNameError is returned by Clean when the cleaned final segment
	// would be empty (or a bare directory reference).
	EmptyFileNameError struct {
		Path types.FilesystemPath
	}

	// ExistenceCheckError is returned by Unique when the filesystem could not
	// tell whether a candidate exists. Treating such a path as free would hand
	// out a name that may already be taken.
	ExistenceCheckError struct {
		Path types.FilesystemPath
		Err  error
	}

	// ReserveError is returned by Reserve when every attempt lost the race
	// against a concurrent creator.
	ReserveError struct {
		Path     types.FilesystemPath
		Attempts int
	}
)

// Error implements the error interface for EmptyFileNameError.
func (e *EmptyFileNameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNoValidFileNameChars, e.Path)
}

// Unwrap returns ErrNoValidFileNameChars for errors.Is() compatibility.
func (e *EmptyFileNameError) Unwrap() error { return ErrNoValidFileNameChars }

// Error implements the error interface for ExistenceCheckError.
func (e *ExistenceCheckError) Error() string {
	return fmt.Sprintf("checking whether %q exists: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *ExistenceCheckError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExistenceCheck.
func (e *ExistenceCheckError) Is(target error) bool { return target == ErrExistenceCheck }

// Error implements the error interface for ReserveError.
func (e *ReserveError) Error() string {
	return fmt.Sprintf("%s for %q after %d attempt(s)", ErrReserveExhausted, e.Path, e.Attempts)
}

// Unwrap returns ErrReserveExhausted for errors.Is() compatibility.
func (e *ReserveError) Unwrap() error { return ErrReserveExhausted }
