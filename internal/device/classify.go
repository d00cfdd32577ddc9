package device

import "strings"

// Raspberry Pi's USB vendor id, used by the RP2040/RP2350 bootrom and by
// MicroPython/CircuitPython builds for Pico boards.
const raspberryPiVendorID = "2E8A"

// storageHints identify a BOOTSEL volume as a Pico-family board. Matched
// case-insensitively against board id, model and the raw marker file text.
var storageHints = []string{
	"RPI-RP2",
	"RP2040",
	"RP2350",
	"RASPBERRY PI",
	"PICO",
}

// acceptedVendorIDs builds the vendor set for a run: the Raspberry Pi id
// plus any extra ids the caller configured.
func acceptedVendorIDs(extra []string) map[string]bool {
	ids := map[string]bool{raspberryPiVendorID: true}
	for _, id := range extra {
		if norm := NormalizeUSBID(id); norm != "" {
			ids[norm] = true
		}
	}
	return ids
}

// isPicoDevice reports whether a discovered device belongs to the Pico
// family. Serial devices must carry an accepted vendor id; storage devices
// must match one of the marker hints.
func isPicoDevice(d Device, vendorIDs map[string]bool) bool {
	switch d.Kind {
	case KindSerial:
		return vendorIDs[d.VendorID]
	case KindStorage:
		for _, hint := range storageHints {
			if containsFold(d.BoardID, hint) ||
				containsFold(d.Model, hint) ||
				containsFold(d.InfoText, hint) {
				return true
			}
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), substr)
}
