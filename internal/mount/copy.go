package mount

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// CopyOptions tunes CopyInto. TargetPath overrides the destination name on
// the volume; when empty the source's base name is reused.
type CopyOptions struct {
	TargetPath string
}

// CopyInto copies a host file or directory onto the mounted volume and
// returns the destination path. Existing destination content is
// overwritten; parent directories are created as needed.
func CopyInto(source, mountPoint string, opts CopyOptions) (string, error) {
	if _, err := os.Stat(source); err != nil {
		return "", fmt.Errorf("source path does not exist: %s", source)
	}
	root, err := EnsureMountPoint(mountPoint)
	if err != nil {
		return "", err
	}

	target := opts.TargetPath
	if target == "" {
		target = filepath.Base(source)
	}
	dest, err := ResolveWithinMount(root, target)
	if err != nil {
		return "", err
	}

	if err := copyPath(source, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// CopyOutOf copies a path from the mounted volume to an arbitrary host
// destination and returns the destination path. The source is containment
// checked; the destination is not, since the host trusts itself.
func CopyOutOf(mountPoint, sourcePath, destination string) (string, error) {
	root, err := EnsureMountPoint(mountPoint)
	if err != nil {
		return "", err
	}
	src, err := ResolveWithinMount(root, sourcePath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(src); err != nil {
		return "", fmt.Errorf("source path does not exist: %s", sourcePath)
	}

	dest, err := filepath.Abs(destination)
	if err != nil {
		return "", err
	}
	if err := copyPath(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func copyPath(source, dest string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(source, dest)
	}
	return copyFile(source, dest, info.Mode())
}

func copyDir(source, dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(source)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(dest, entry.Name())
		if err := copyPath(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(source, dest string, mode os.FileMode) error {
	log.Debugf("copying %s -> %s", source, dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
