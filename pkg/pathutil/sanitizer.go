// SPDX-License-Identifier: MPL-2.0

package pathutil

import (
	"errors"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/lodestone/lodestone/pkg/types"
)

type (
	// Sanitizer cleans and disambiguates paths against a filesystem.
	// It holds no mutable state and is safe for concurrent use; callers must
	// not share a single *types.FilesystemPath between goroutines.
	Sanitizer struct {
		fs     afero.Fs
		logger *log.Logger
	}

	// Option configures a Sanitizer.
	Option func(*Sanitizer)
)

// defaultSanitizer backs the package-level functions.
var defaultSanitizer = New()

// WithFs sets the filesystem used to probe for and create entries.
func WithFs(fsys afero.Fs) Option {
	return func(s *Sanitizer) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithLogger sets the logger that receives probe and collision events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sanitizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Sanitizer bound to the OS filesystem unless WithFs says
// otherwise. Without WithLogger nothing is logged.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		fs:     afero.NewOsFs(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clean removes forbidden characters from the final segment of p using the
// OS filesystem sanitizer. See Sanitizer.Clean.
func Clean(p *types.FilesystemPath) (*types.FilesystemPath, error) {
	return defaultSanitizer.Clean(p)
}

// Unique disambiguates p against the OS filesystem. See Sanitizer.Unique.
func Unique(p *types.FilesystemPath) (*types.FilesystemPath, error) {
	return defaultSanitizer.Unique(p)
}

// Sanitize runs Clean and then Unique against the OS filesystem.
func Sanitize(p *types.FilesystemPath) (*types.FilesystemPath, error) {
	return defaultSanitizer.Sanitize(p)
}

// Sanitize runs Clean followed by Unique on p.
func (s *Sanitizer) Sanitize(p *types.FilesystemPath) (*types.FilesystemPath, error) {
	if _, err := s.Clean(p); err != nil {
		return nil, err
	}
	return s.Unique(p)
}

// exists reports whether an entry occupies p. A dangling symlink counts as
// occupied when the filesystem can lstat.
func (s *Sanitizer) exists(p types.FilesystemPath) (bool, error) {
	var err error
	if lst, ok := s.fs.(afero.Lstater); ok {
		_, _, err = lst.LstatIfPossible(string(p))
	} else {
		_, err = s.fs.Stat(string(p))
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &ExistenceCheckError{Path: p, Err: err}
	}
}
