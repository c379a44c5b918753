// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed helpers around path/filepath for
// types.FilesystemPath, including final-segment surgery that leaves the
// parent part of a path exactly as the caller wrote it.
package fspath

import (
	"path/filepath"
	"strings"

	"github.com/lodestone/lodestone/pkg/platform"
	"github.com/lodestone/lodestone/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// FileName returns the final segment of p. Trailing separators are ignored.
// The boolean is false when p has no final segment: an empty path, a root,
// or a path ending in "." or "..".
func FileName(p types.FilesystemPath) (types.FileName, bool) {
	_, name, ok := splitFinal(string(p), platform.CurrentSeparators())
	return types.FileName(name), ok
}

// WithFileName replaces the final segment of p with name and returns the
// result. The parent part is preserved verbatim; trailing separators after
// the old segment are dropped. If p has no final segment it is returned
// unchanged.
func WithFileName(p types.FilesystemPath, name types.FileName) types.FilesystemPath {
	parent, _, ok := splitFinal(string(p), platform.CurrentSeparators())
	if !ok {
		return p
	}
	return types.FilesystemPath(parent + string(name))
}

// SplitExt splits a file name into stem and extension. The extension is the
// text after the last '.', without the dot. A leading dot does not start an
// extension, so ".minecraft" has no extension; "world." has an empty one.
func SplitExt(name types.FileName) (stem, ext string, hasExt bool) {
	s := string(name)
	i := strings.LastIndexByte(s, '.')
	if i <= 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// splitFinal splits s into the parent prefix (including its trailing
// separator and any volume name) and the final segment.
func splitFinal(s, seps string) (parent, name string, ok bool) {
	vol := filepath.VolumeName(s)
	rest := s[len(vol):]

	end := len(rest)
	for end > 0 && strings.IndexByte(seps, rest[end-1]) >= 0 {
		end--
	}
	if end == 0 {
		return "", "", false
	}

	start := strings.LastIndexAny(rest[:end], seps) + 1
	name = rest[start:end]
	if name == "." || name == ".." {
		return "", "", false
	}
	return vol + rest[:start], name, true
}
