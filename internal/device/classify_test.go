package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStorageDevices(t *testing.T) {
	vendorIDs := acceptedVendorIDs(nil)

	testCases := []struct {
		name string
		d    Device
		want bool
	}{
		{
			name: "board id hint",
			d:    Device{Kind: KindStorage, BoardID: "RPI-RP2"},
			want: true,
		},
		{
			name: "model hint lowercase",
			d:    Device{Kind: KindStorage, Model: "raspberry pi pico w"},
			want: true,
		},
		{
			name: "hint only in raw info text",
			d:    Device{Kind: KindStorage, InfoText: "UF2 Bootloader\nBoard: RP2350 rev A\n"},
			want: true,
		},
		{
			name: "foreign board",
			d:    Device{Kind: KindStorage, BoardID: "SAMD21", Model: "Feather M0"},
			want: false,
		},
		{
			name: "empty storage device",
			d:    Device{Kind: KindStorage},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isPicoDevice(tc.d, vendorIDs))
		})
	}
}

func TestClassifySerialDevices(t *testing.T) {
	vendorIDs := acceptedVendorIDs(nil)

	assert.True(t, isPicoDevice(Device{Kind: KindSerial, VendorID: "2E8A"}, vendorIDs))
	assert.False(t, isPicoDevice(Device{Kind: KindSerial, VendorID: "0403"}, vendorIDs))
	assert.False(t, isPicoDevice(Device{Kind: KindSerial}, vendorIDs))
}

func TestExtraVendorIDsExtendTheSet(t *testing.T) {
	vendorIDs := acceptedVendorIDs([]string{"0x239a", "bogus"})

	assert.True(t, vendorIDs["2E8A"])
	assert.True(t, vendorIDs["239A"])
	assert.False(t, vendorIDs["BOGUS"])
}
