package device

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ListOptions tunes one enumeration pass. The zero value scans the
// platform's default storage roots with the default vendor set.
type ListOptions struct {
	// SearchRoots replaces the platform default root set when non-nil.
	SearchRoots []string
	// ExtraRoots are scanned in addition to the root set.
	ExtraRoots []string
	// ExtraVendorIDs extends the accepted serial vendor-id set.
	ExtraVendorIDs []string
}

// List discovers attached Pico-family boards from both sources: USB serial
// ports and mounted BOOTSEL volumes. A failure in one source is recorded in
// the result and never aborts the other; List itself never fails.
func List(opts ListOptions) Result {
	vendorIDs := acceptedVendorIDs(opts.ExtraVendorIDs)
	res := Result{Devices: []Device{}, Errors: []DiscoveryError{}}

	serialDevices, err := listSerialDevices(vendorIDs)
	if err != nil {
		res.Errors = append(res.Errors, DiscoveryError{Source: "serial", Err: err})
	}

	storageDevices, err := listStorageDevices(opts.SearchRoots, opts.ExtraRoots)
	if err != nil {
		res.Errors = append(res.Errors, DiscoveryError{Source: "storage", Err: err})
	}

	merged := dedupeByID(append(serialDevices, storageDevices...))
	for _, d := range merged {
		if isPicoDevice(d, vendorIDs) {
			res.Devices = append(res.Devices, d)
		} else {
			log.Debugf("dropping unrecognized device %s", d.ID)
		}
	}
	return res
}

// listStorageDevices probes each candidate root and its immediate children
// for BOOTSEL volumes. Failures on an individual root skip that root;
// failure to build the root list itself is returned to the caller.
func listStorageDevices(roots, extra []string) ([]Device, error) {
	if roots == nil {
		var err error
		roots, err = storageRoots()
		if err != nil {
			return nil, err
		}
	}
	roots = append(roots, extra...)

	var devices []Device
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if d := ProbeVolume(root); d != nil {
			devices = append(devices, *d)
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			log.Debugf("skipping storage root %s: %v", root, err)
			continue
		}
		for _, entry := range entries {
			if d := ProbeVolume(filepath.Join(root, entry.Name())); d != nil {
				devices = append(devices, *d)
			}
		}
	}
	return devices, nil
}

// dedupeByID collapses devices sharing an id, keeping the first occurrence
// and the original order.
func dedupeByID(devices []Device) []Device {
	seen := make(map[string]bool)
	result := make([]Device, 0, len(devices))
	for _, d := range devices {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		result = append(result, d)
	}
	return result
}
