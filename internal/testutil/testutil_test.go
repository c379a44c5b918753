// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "LODESTONE_TESTUTIL_PROBE"

	restoreUnset := MustUnsetenv(t, key)
	restore := MustSetenv(t, key, "value")
	if got := os.Getenv(key); got != "value" {
		t.Fatalf("Getenv(%s) = %q, want %q", key, got, "value")
	}
	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s should be unset after restore", key)
	}
	restoreUnset()
}

func TestMustChdir_Restores(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	restore := MustChdir(t, dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if wd != dir && wd != resolved {
		t.Errorf("Getwd() = %q, want %q", wd, dir)
	}

	restore()
	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Errorf("Getwd() after restore = %q, want %q", after, before)
	}
}

func TestMustWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "level.dat")
	MustWriteFile(t, path, []byte("data"))

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("ReadFile() = %q, want %q", got, "data")
	}
}

func TestSetHomeDir(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(SetHomeDir(t, dir))

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	if home != dir {
		t.Errorf("UserHomeDir() = %q, want %q", home, dir)
	}
}
