//go:build darwin
// +build darwin

package device

import (
	"os/exec"

	log "github.com/sirupsen/logrus"
	"howett.net/plist"
)

type diskutilPartition struct {
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	MountPoint       string `plist:"MountPoint"`
}

type diskutilOutput struct {
	AllDisksAndPartitions []struct {
		MountPoint string              `plist:"MountPoint"`
		Partitions []diskutilPartition `plist:"Partitions"`
	} `plist:"AllDisksAndPartitions"`
}

// storageRoots returns the directories where a BOOTSEL volume can show up
// on macOS: /Volumes plus the mount points of external disks reported by
// diskutil. A diskutil failure is not fatal since /Volumes covers the
// common case.
func storageRoots() ([]string, error) {
	roots := []string{"/Volumes"}

	cmd := exec.Command("diskutil", "list", "-plist", "external")
	output, err := cmd.Output()
	if err != nil {
		log.Debugf("diskutil list failed: %v", err)
		return roots, nil
	}

	var diskutil diskutilOutput
	if _, err := plist.Unmarshal(output, &diskutil); err != nil {
		log.Debugf("diskutil plist parse failed: %v", err)
		return roots, nil
	}

	for _, dsk := range diskutil.AllDisksAndPartitions {
		if dsk.MountPoint != "" {
			roots = append(roots, dsk.MountPoint)
		}
		for _, partition := range dsk.Partitions {
			if partition.MountPoint != "" {
				roots = append(roots, partition.MountPoint)
			}
		}
	}

	return roots, nil
}
