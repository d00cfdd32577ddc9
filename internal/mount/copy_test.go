package mount

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	return string(data)
}

func TestCopyIntoDefaultsToBaseName(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.py")
	writeFile(t, src, "print('hi')")
	volume := t.TempDir()

	dest, err := CopyInto(src, volume, CopyOptions{})
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(volume, "main.py"), dest)
	assert.Equal(t, "print('hi')", readFile(t, dest))
}

func TestCopyIntoExplicitTargetCreatesParents(t *testing.T) {
	src := filepath.Join(t.TempDir(), "util.py")
	writeFile(t, src, "x = 1")
	volume := t.TempDir()

	dest, err := CopyInto(src, volume, CopyOptions{TargetPath: filepath.Join("lib", "util.py")})
	assert.NoError(t, err)
	assert.Equal(t, "x = 1", readFile(t, dest))
}

func TestCopyIntoOverwrites(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.py")
	writeFile(t, src, "new")
	volume := t.TempDir()
	writeFile(t, filepath.Join(volume, "main.py"), "old old old")

	dest, err := CopyInto(src, volume, CopyOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "new", readFile(t, dest))
}

func TestCopyIntoMissingSource(t *testing.T) {
	_, err := CopyInto(filepath.Join(t.TempDir(), "gone.py"), t.TempDir(), CopyOptions{})
	assert.ErrorContains(t, err, "source path does not exist")
}

func TestCopyIntoRejectsEscape(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.py")
	writeFile(t, src, "x")

	_, err := CopyInto(src, t.TempDir(), CopyOptions{TargetPath: "../main.py"})
	assert.ErrorIs(t, err, ErrMountEscape)
}

func TestDirectoryRoundTrip(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "lib", "a.py"), "a")
	writeFile(t, filepath.Join(srcDir, "lib", "sub", "b.py"), "bb")
	writeFile(t, filepath.Join(srcDir, "main.py"), "main")

	volume := t.TempDir()
	_, err := CopyInto(srcDir, volume, CopyOptions{TargetPath: "project"})
	assert.NoError(t, err)

	back := filepath.Join(t.TempDir(), "back")
	_, err = CopyOutOf(volume, "project", back)
	assert.NoError(t, err)

	assert.Equal(t, "a", readFile(t, filepath.Join(back, "lib", "a.py")))
	assert.Equal(t, "bb", readFile(t, filepath.Join(back, "lib", "sub", "b.py")))
	assert.Equal(t, "main", readFile(t, filepath.Join(back, "main.py")))
}

func TestCopyOutOfEnforcesContainment(t *testing.T) {
	_, err := CopyOutOf(t.TempDir(), "../secrets.txt", filepath.Join(t.TempDir(), "out.txt"))
	assert.ErrorIs(t, err, ErrMountEscape)
}

func TestCopyOutOfMissingSource(t *testing.T) {
	_, err := CopyOutOf(t.TempDir(), "gone.py", filepath.Join(t.TempDir(), "out.py"))
	assert.ErrorContains(t, err, "source path does not exist")
}
