// SPDX-License-Identifier: MPL-2.0

package pathutil

import (
	"regexp"
	"strings"
	"sync"

	"github.com/lodestone/lodestone/pkg/fspath"
	"github.com/lodestone/lodestone/pkg/types"
)

// invalidFileNameChars matches any single forbidden character. It is compiled
// on first use and shared for the lifetime of the process.
var invalidFileNameChars = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile("[" + regexp.QuoteMeta(types.ForbiddenFileNameChars) + "]")
})

// Clean strips forbidden characters from the final segment of p and trims the
// surrounding whitespace of what remains. Paths without a final segment, and
// segments that contain no forbidden character, are left untouched, which
// makes Clean idempotent. The parent part of p is never modified.
//
// If nothing usable remains, Clean returns an *EmptyFileNameError and p is
// not modified.
func (s *Sanitizer) Clean(p *types.FilesystemPath) (*types.FilesystemPath, error) {
	if p == nil {
		return nil, nil
	}
	name, ok := fspath.FileName(*p)
	if !ok {
		return p, nil
	}

	re := invalidFileNameChars()
	if !re.MatchString(string(name)) {
		return p, nil
	}

	cleaned := types.FileName(strings.TrimSpace(re.ReplaceAllString(string(name), "")))
	if err := cleaned.Validate(); err != nil {
		return nil, &EmptyFileNameError{Path: *p}
	}

	s.logger.Debug("cleaned file name", "from", name, "to", cleaned)
	*p = fspath.WithFileName(*p, cleaned)
	return p, nil
}
