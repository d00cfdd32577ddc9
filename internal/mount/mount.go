// Package mount copies files in and out of a mounted board volume, keeping
// every path it touches on the volume side inside the declared mount point.
package mount

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMountEscape is returned when a resolved path lands outside the mount
// point it was supposed to stay inside.
var ErrMountEscape = errors.New("path escapes the mount point")

// EnsureMountPoint resolves path to an absolute directory path and verifies
// it exists. Every mount-relative resolution must start from its result.
func EnsureMountPoint(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("mount point not found: %s", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("mount point is not a directory: %s", path)
	}
	return abs, nil
}

// ResolveWithinMount resolves target (relative or absolute) against the
// mount root and verifies the result stays inside it. The check compares
// path strings after cleaning; symlinks inside the mount are not
// canonicalized, so a symlink pointing outside the volume is not detected.
// Callers relying on symlinked volumes depend on that behavior.
func ResolveWithinMount(root, target string) (string, error) {
	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(root, resolved)
	}
	resolved = filepath.Clean(resolved)

	rootCmp, pathCmp := root, resolved
	if caseInsensitiveFS {
		rootCmp = strings.ToLower(rootCmp)
		pathCmp = strings.ToLower(pathCmp)
	}
	if pathCmp != rootCmp && !strings.HasPrefix(pathCmp, rootCmp+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", target, ErrMountEscape)
	}
	return resolved, nil
}
