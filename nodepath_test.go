package duplicates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suseejs/duplicates/internal/testutil"
)

func TestSplitPaths(t *testing.T) {
	sep := string(os.PathListSeparator)
	got := splitPaths(strings.Join([]string{"/a", "", "/b"}, sep))
	testutil.SliceEqual(t, []string{"/a", "/b"}, got, "empty segments dropped")
	testutil.Len(t, splitPaths(""), 0)
}

func TestDedup(t *testing.T) {
	got := dedup([]string{"/a", "/b", "/a", "/c", "/b"})
	testutil.SliceEqual(t, []string{"/a", "/b", "/c"}, got)
}

func TestFilterExistingDirs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.js")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got := filterExistingDirs([]string{dir, file, filepath.Join(dir, "missing")})
	testutil.SliceEqual(t, []string{dir}, got, "only existing directories survive")
}

func TestDiscoverNodePaths(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	sep := string(os.PathListSeparator)
	t.Setenv("NODE_PATH", dirA+sep+dirB+sep+dirA+sep+"/does/not/exist")

	got := discoverNodePaths(nil)
	testutil.SliceEqual(t, []string{dirA, dirB}, got)
}

func TestDiscoverNodePathsUnset(t *testing.T) {
	t.Setenv("NODE_PATH", "")
	testutil.Len(t, discoverNodePaths(nil), 0)
}

func TestLoadWithNodePathFallback(t *testing.T) {
	fallback := t.TempDir()
	if err := os.WriteFile(filepath.Join(fallback, "extra.js"), []byte("const extra = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NODE_PATH", fallback)

	primary := t.TempDir()
	if err := os.WriteFile(filepath.Join(primary, "main.js"), []byte("const main = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mods, err := Load(MustDir(primary), WithNodePaths())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	testutil.Len(t, mods, 2)
}
