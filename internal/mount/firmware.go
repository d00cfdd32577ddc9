package mount

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpitools/picoctl/internal/device"
)

const firmwareExt = ".uf2"

// FirmwareFile is a .uf2 image found at a volume root.
type FirmwareFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// VolumeInfo describes a BOOTSEL volume and the firmware images it holds.
type VolumeInfo struct {
	MountPath string         `json:"mountPath"`
	BoardID   string         `json:"boardId,omitempty"`
	Model     string         `json:"model,omitempty"`
	InfoText  string         `json:"infoText,omitempty"`
	Firmware  []FirmwareFile `json:"firmware"`
}

func isFirmwareName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), firmwareExt)
}

// UploadFirmware copies a .uf2 image onto the volume root, which makes the
// bootloader flash and reboot. Both the source and the target name must
// carry the .uf2 extension.
func UploadFirmware(firmwarePath, mountPoint, targetName string) (string, error) {
	if !isFirmwareName(firmwarePath) {
		return "", fmt.Errorf("firmware source must be a %s file: %s", firmwareExt, firmwarePath)
	}
	if targetName == "" {
		targetName = filepath.Base(firmwarePath)
	}
	if !isFirmwareName(targetName) {
		return "", fmt.Errorf("firmware target name must end in %s: %s", firmwareExt, targetName)
	}
	return CopyInto(firmwarePath, mountPoint, CopyOptions{TargetPath: targetName})
}

// DownloadFirmware copies a .uf2 image off the volume. When name is empty
// the first .uf2 entry at the volume root (in directory order, which is
// lexicographic) is used.
func DownloadFirmware(mountPoint, destination, name string) (string, error) {
	root, err := EnsureMountPoint(mountPoint)
	if err != nil {
		return "", err
	}

	if name == "" {
		name, err = firstFirmwareName(root)
		if err != nil {
			return "", err
		}
	} else if !isFirmwareName(name) {
		return "", fmt.Errorf("firmware source must be a %s file: %s", firmwareExt, name)
	}
	if !isFirmwareName(destination) {
		return "", fmt.Errorf("firmware destination must end in %s: %s", firmwareExt, destination)
	}

	return CopyOutOf(root, name, destination)
}

// Info probes the volume and lists the firmware images at its root.
func Info(mountPoint string) (*VolumeInfo, error) {
	root, err := EnsureMountPoint(mountPoint)
	if err != nil {
		return nil, err
	}
	d := device.ProbeVolume(root)
	if d == nil {
		return nil, fmt.Errorf("no UF2 volume at %s", mountPoint)
	}

	info := &VolumeInfo{
		MountPath: root,
		BoardID:   d.BoardID,
		Model:     d.Model,
		InfoText:  strings.TrimSpace(d.InfoText),
		Firmware:  []FirmwareFile{},
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !isFirmwareName(entry.Name()) {
			continue
		}
		if fi, err := entry.Info(); err == nil {
			info.Firmware = append(info.Firmware, FirmwareFile{Name: entry.Name(), Size: fi.Size()})
		}
	}
	return info, nil
}

// firstFirmwareName returns the first .uf2 entry at the volume root.
// os.ReadDir sorts by filename, so ties resolve lexicographically.
func firstFirmwareName(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if !entry.IsDir() && isFirmwareName(entry.Name()) {
			return entry.Name(), nil
		}
	}
	return "", fmt.Errorf("no %s firmware found in %s", firmwareExt, root)
}
