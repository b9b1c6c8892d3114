package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func relPaths(files []CollectedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RelativePath)
	}
	return paths
}

func TestCollectFiles_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.c", "int x;\n")
	writeFile(t, dir, "b.py", "x = 1\n")
	writeFile(t, dir, "notes.txt", "hello\n")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c", ".py"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.py"}, relPaths(files))
}

func TestCollectFiles_NonRecursiveByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.c", "int x;\n")
	writeFile(t, dir, "sub/b.c", "int y;\n")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c"}, relPaths(files))

	files, err = CollectFiles(dir, CollectOptions{Extensions: []string{".c"}, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "sub/b.c"}, relPaths(files))
}

func TestCollectFiles_DefaultIgnores(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.c", "int x;\n")
	writeFile(t, dir, "node_modules/dep.c", "int y;\n")
	writeFile(t, dir, ".git/hooks/pre-commit.sh", "#!/bin/sh\n")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c", ".sh"}, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c"}, relPaths(files))
}

func TestCollectFiles_IgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".headstamp-ignore", "# comment\nb.py\n")
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "b.py", "y = 2\n")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".py"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, relPaths(files))
}

func TestCollectFiles_SizeCap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.c", "int x;\n")
	writeFile(t, dir, "big.c", "int x;\nint y;\nint z;\n")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c"}, MaxFileSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"small.c"}, relPaths(files))
}

func TestCollectFiles_NameOrderCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Zeta.c", "")
	writeFile(t, dir, "alpha.c", "")
	writeFile(t, dir, "Beta.c", "")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.c", "Beta.c", "Zeta.c"}, relPaths(files))
}

func TestCollectFiles_MtimeOrder(t *testing.T) {
	dir := t.TempDir()
	newest := writeFile(t, dir, "a.c", "")
	oldest := writeFile(t, dir, "z.c", "")

	now := time.Now()
	require.NoError(t, os.Chtimes(oldest, now.Add(-2*time.Hour), now.Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(newest, now, now))

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c"}, Order: "mtime"})
	require.NoError(t, err)
	assert.Equal(t, []string{"z.c", "a.c"}, relPaths(files))
}

func TestCollectFiles_NamesSharingIgnoreTokenPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "output.c", "int x;\n")
	writeFile(t, dir, "distance.py", "d = 0\n")
	writeFile(t, dir, "vendor_ids.go", "package ids\n")
	writeFile(t, dir, "out/gen.c", "int y;\n")
	writeFile(t, dir, "vendor/dep.go", "package dep\n")

	files, err := CollectFiles(dir, CollectOptions{Extensions: []string{".c", ".py", ".go"}, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"distance.py", "output.c", "vendor_ids.go"}, relPaths(files))
}

func TestIsDefaultIgnored(t *testing.T) {
	assert.True(t, IsDefaultIgnored(".git/config"))
	assert.True(t, IsDefaultIgnored("node_modules/foo/bar.js"))
	assert.True(t, IsDefaultIgnored("build.log"))
	assert.True(t, IsDefaultIgnored(".headstamp-cache/abc.cache"))
	assert.True(t, IsDefaultIgnored("headstamp-config.yaml"))
	assert.True(t, IsDefaultIgnored("out/gen.c"))
	assert.False(t, IsDefaultIgnored("src/main.c"))
	assert.False(t, IsDefaultIgnored("output.c"))
	assert.False(t, IsDefaultIgnored("distance.py"))
	assert.False(t, IsDefaultIgnored("vendor_ids.go"))
}

func TestIsIgnored_Patterns(t *testing.T) {
	patterns := []string{"*.gen.go", "testdata/"}
	assert.True(t, IsIgnored("api.gen.go", patterns))
	assert.True(t, IsIgnored("pkg/api.gen.go", patterns))
	assert.True(t, IsIgnored("testdata/golden.c", patterns))
	assert.False(t, IsIgnored("main.go", patterns))
}
