// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/lodestone/lodestone/pkg/platform"
	"github.com/lodestone/lodestone/pkg/types"
)

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := JoinStr(types.FilesystemPath("instances"), "Vanilla", "mods")
	want := types.FilesystemPath(filepath.Join("instances", "Vanilla", "mods"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   types.FilesystemPath
		want   types.FileName
		wantOK bool
	}{
		{"/some/file", "file", true},
		{"./Cargo.toml", "Cargo.toml", true},
		{"src", "src", true},
		{"a/b/", "b", true},
		{"a/b//", "b", true},
		{"", "", false},
		{"/", "", false},
		{"//", "", false},
		{".", "", false},
		{"..", "", false},
		{"a/..", "", false},
		{"a/.", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			t.Parallel()
			got, ok := FileName(tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FileName(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWithFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path types.FilesystemPath
		name types.FileName
		want types.FilesystemPath
	}{
		{"/some/file", "other", "/some/other"},
		{"./Cargo.toml", "Cargo (1).toml", "./Cargo (1).toml"},
		{"./src", "src (1)", "./src (1)"},
		{"src", "src (1)", "src (1)"},
		{"a/b/", "c", "a/c"},
		{"a//b", "c", "a//c"},
		{"/", "x", "/"},
		{"", "x", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			t.Parallel()
			if got := WithFileName(tt.path, tt.name); got != tt.want {
				t.Errorf("WithFileName(%q, %q) = %q, want %q", tt.path, tt.name, got, tt.want)
			}
		})
	}
}

func TestSplitExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       types.FileName
		wantStem   string
		wantExt    string
		wantHasExt bool
	}{
		{"Cargo.toml", "Cargo", "toml", true},
		{"src", "src", "", false},
		{"world.tar.gz", "world.tar", "gz", true},
		{".minecraft", ".minecraft", "", false},
		{".config.cue", ".config", "cue", true},
		{"world.", "world", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()
			stem, ext, hasExt := SplitExt(tt.name)
			if stem != tt.wantStem || ext != tt.wantExt || hasExt != tt.wantHasExt {
				t.Errorf("SplitExt(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.name, stem, ext, hasExt, tt.wantStem, tt.wantExt, tt.wantHasExt)
			}
		})
	}
}

func TestSplitFinal_WindowsSeparators(t *testing.T) {
	t.Parallel()

	seps := platform.Separators(platform.Windows)
	parent, name, ok := splitFinal(`instances\mods/Sodium.jar`, seps)
	if !ok || parent != `instances\mods/` || name != "Sodium.jar" {
		t.Errorf("splitFinal() = (%q, %q, %v), want (%q, %q, true)", parent, name, ok, `instances\mods/`, "Sodium.jar")
	}

	// On POSIX a backslash is an ordinary character inside the segment.
	if runtime.GOOS != platform.Windows {
		_, name, ok = splitFinal(`dir/a\b`, platform.Separators(platform.Linux))
		if !ok || name != `a\b` {
			t.Errorf("splitFinal() name = %q, want %q", name, `a\b`)
		}
	}
}
