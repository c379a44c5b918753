// SPDX-License-Identifier: MPL-2.0

package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lodestone/lodestone/pkg/fspath"
	"github.com/lodestone/lodestone/pkg/types"
)

const (
	// EntryFile reserves a name by creating an empty regular file.
	EntryFile EntryKind = iota
	// EntryDir reserves a name by creating a directory.
	EntryDir
)

const (
	reservedFilePerm fs.FileMode = 0o644
	reservedDirPerm  fs.FileMode = 0o755
)

// EntryKind selects what Reserve creates.
type EntryKind int

// String returns "file" or "dir".
func (k EntryKind) String() string {
	if k == EntryDir {
		return "dir"
	}
	return "file"
}

// Reserve cleans p, picks a unique name for it and creates the entry
// exclusively. If another creator takes the chosen name between the probe and
// the create, Reserve probes again, up to maxAttempts times (values below 1
// mean a single attempt). On success p names the created entry.
func (s *Sanitizer) Reserve(p *types.FilesystemPath, kind EntryKind, maxAttempts int) (*types.FilesystemPath, error) {
	if p == nil {
		return nil, ErrNoFileName
	}
	if _, ok := fspath.FileName(*p); !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoFileName, *p)
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	cleaned := *p
	if _, err := s.Clean(&cleaned); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := cleaned
		if _, err := s.Unique(&candidate); err != nil {
			return nil, err
		}

		err := s.create(candidate, kind)
		if err == nil {
			s.logger.Debug("reserved name", "path", candidate, "kind", kind, "attempt", attempt)
			*p = candidate
			return p, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("creating %s %q: %w", kind, candidate, err)
		}
		s.logger.Warn("name was taken before it could be created", "path", candidate, "attempt", attempt)
	}

	return nil, &ReserveError{Path: cleaned, Attempts: maxAttempts}
}

func (s *Sanitizer) create(p types.FilesystemPath, kind EntryKind) error {
	if kind == EntryDir {
		return s.fs.Mkdir(string(p), reservedDirPerm)
	}

	f, err := s.fs.OpenFile(string(p), os.O_RDWR|os.O_CREATE|os.O_EXCL, reservedFilePerm)
	if err != nil {
		return err
	}
	return f.Close()
}
