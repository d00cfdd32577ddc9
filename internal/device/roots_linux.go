//go:build linux
// +build linux

package device

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	log "github.com/sirupsen/logrus"
)

// storageRoots returns the directories where a BOOTSEL volume can show up
// on Linux: the per-user automount trees plus the mount points of removable
// block devices reported by the kernel.
func storageRoots() ([]string, error) {
	var roots []string

	user := os.Getenv("USER")
	if user != "" {
		roots = append(roots,
			filepath.Join("/media", user),
			filepath.Join("/run/media", user),
		)
	}
	roots = append(roots, "/media", "/mnt")

	// Mounted removable devices may live outside the automount trees
	partitions, err := disk.Partitions(false)
	if err != nil {
		log.Debugf("partition scan failed: %v", err)
		return roots, nil
	}
	for _, partition := range partitions {
		if strings.HasPrefix(partition.Device, "/dev/sd") && partition.Mountpoint != "" {
			roots = append(roots, partition.Mountpoint)
		}
	}

	return roots, nil
}
