package device

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.bug.st/serial/enumerator"
)

// listPorts is swapped out by tests.
var listPorts = enumerator.GetDetailedPortsList

// NormalizeUSBID canonicalizes a vendor or product id reported by the host
// into 4-digit uppercase hex. Accepts plain hex ("2e8a") and 0x-prefixed
// ("0x2E8A") forms. Returns "" for empty or unparseable input.
func NormalizeUSBID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	id = strings.TrimPrefix(strings.ToLower(id), "0x")
	n, err := strconv.ParseUint(id, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%04X", n)
}

// listSerialDevices enumerates host serial ports and keeps the ones that
// could plausibly be a board. Ports reporting a vendor id outside the
// accepted set are discarded; ports reporting no vendor id at all pass
// through, since some hosts populate USB descriptors only partially.
func listSerialDevices(vendorIDs map[string]bool) ([]Device, error) {
	ports, err := listPorts()
	if err != nil {
		return nil, err
	}

	var devices []Device
	for _, port := range ports {
		vid := NormalizeUSBID(port.VID)
		pid := NormalizeUSBID(port.PID)
		if vid != "" && !vendorIDs[vid] {
			log.Debugf("skipping serial port %s: vendor %s not accepted", port.Name, vid)
			continue
		}

		devices = append(devices, Device{
			ID:           port.Name,
			Kind:         KindSerial,
			Path:         port.Name,
			Product:      port.Product,
			SerialNumber: port.SerialNumber,
			VendorID:     vid,
			ProductID:    pid,
			Description:  port.Product,
		})
	}
	return devices, nil
}
