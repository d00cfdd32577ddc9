//go:build windows
// +build windows

package device

import (
	"github.com/shirou/gopsutil/v3/disk"
)

// storageRoots returns the drive letters of mounted volumes. A BOOTSEL
// volume appears as its own removable drive, so every drive root is a
// candidate.
func storageRoots() ([]string, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	var roots []string
	for _, partition := range partitions {
		if partition.Mountpoint != "" {
			roots = append(roots, partition.Mountpoint)
		}
	}
	return roots, nil
}
