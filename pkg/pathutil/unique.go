// SPDX-License-Identifier: MPL-2.0

package pathutil

import (
	"fmt"

	"github.com/lodestone/lodestone/pkg/fspath"
	"github.com/lodestone/lodestone/pkg/types"
)

// Unique rewrites the final segment of p so that no filesystem entry exists
// at p. A path that does not exist is returned unchanged. Otherwise a
// disambiguator is inserted before the extension, counting up from 1:
// "Cargo.toml" becomes "Cargo (1).toml", then "Cargo (2).toml", and "src"
// becomes "src (1)". The unsuffixed name is never reused once taken.
//
// Unique does not validate that p is clean. It fails only when the
// filesystem cannot answer an existence probe, in which case p is left
// untouched.
func (s *Sanitizer) Unique(p *types.FilesystemPath) (*types.FilesystemPath, error) {
	if p == nil {
		return nil, nil
	}
	name, ok := fspath.FileName(*p)
	if !ok {
		return p, nil
	}

	taken, err := s.exists(*p)
	if err != nil {
		return nil, err
	}
	if !taken {
		return p, nil
	}

	stem, ext, hasExt := fspath.SplitExt(name)
	for n := 1; ; n++ {
		candidate := fspath.WithFileName(*p, disambiguate(stem, ext, hasExt, n))
		taken, err := s.exists(candidate)
		if err != nil {
			return nil, err
		}
		if !taken {
			s.logger.Debug("resolved name collision", "path", *p, "unique", candidate, "probes", n+1)
			*p = candidate
			return p, nil
		}
		s.logger.Debug("name taken", "path", candidate)
	}
}

func disambiguate(stem, ext string, hasExt bool, n int) types.FileName {
	if hasExt {
		return types.FileName(fmt.Sprintf("%s (%d).%s", stem, n, ext))
	}
	return types.FileName(fmt.Sprintf("%s (%d)", stem, n))
}
