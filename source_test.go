package duplicates

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/suseejs/duplicates/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readAll(t *testing.T, src Source, path string) string {
	t.Helper()
	f, err := src.Open(path)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", path, err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestDirListsOnlyModuleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "const a = 1;")
	writeFile(t, dir, "b.ts", "const b = 2;")
	writeFile(t, dir, "notes.txt", "not a module")
	writeFile(t, dir, "nested/c.js", "const c = 3;")

	src, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}

	files, err := src.ListFiles()
	testutil.NoError(t, err)
	sort.Strings(files)
	testutil.SliceEqual(t, []string{"a.js", "b.ts"}, files, "no recursion, extension filtered")

	testutil.Equal(t, "const a = 1;", readAll(t, src, "a.js"))
}

func TestDirRejectsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")

	_, err := Dir(filepath.Join(dir, "a.js"))
	testutil.Error(t, err, "Dir on a file should fail")
}

func TestDirTreeListsRelativeSlashPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.js", "const app = 1;")
	writeFile(t, dir, "lib/util.mjs", "const util = 2;")
	writeFile(t, dir, "lib/README.md", "docs")

	src, err := DirTree(dir)
	if err != nil {
		t.Fatalf("DirTree failed: %v", err)
	}

	files, err := src.ListFiles()
	testutil.NoError(t, err)
	sort.Strings(files)
	testutil.SliceEqual(t, []string{"app.js", "lib/util.mjs"}, files)

	testutil.Equal(t, "const util = 2;", readAll(t, src, "lib/util.mjs"))
}

func TestWithExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "b.vue", "")

	src, err := Dir(dir, WithExtensions(".vue"))
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	files, err := src.ListFiles()
	testutil.NoError(t, err)
	testutil.SliceEqual(t, []string{"b.vue"}, files)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"main.js":       {Data: []byte("const main = 1;")},
		"pkg/helper.js": {Data: []byte("const helper = 2;")},
		"pkg/data.json": {Data: []byte("{}")},
	}

	src := FS(fsys)
	files, err := src.ListFiles()
	testutil.NoError(t, err)
	sort.Strings(files)
	testutil.SliceEqual(t, []string{"main.js", "pkg/helper.js"}, files)

	testutil.Equal(t, "const helper = 2;", readAll(t, src, "pkg/helper.js"))
}

func TestFilesSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.js", "const one = 1;")

	path := filepath.ToSlash(filepath.Join(dir, "one.js"))
	src := Files(path)

	files, err := src.ListFiles()
	testutil.NoError(t, err)
	testutil.SliceEqual(t, []string{path}, files)
	testutil.Equal(t, "const one = 1;", readAll(t, src, path))
}

func TestMultiSource(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, dirA, "a.js", "from a")
	writeFile(t, dirB, "b.js", "from b")

	src := Multi(MustDir(dirA), MustDir(dirB))

	files, err := src.ListFiles()
	testutil.NoError(t, err)
	sort.Strings(files)
	testutil.SliceEqual(t, []string{"a.js", "b.js"}, files)

	// Open falls through to the source that has the file.
	testutil.Equal(t, "from a", readAll(t, src, "a.js"))
	testutil.Equal(t, "from b", readAll(t, src, "b.js"))
}
