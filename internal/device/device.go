package device

// Kind tells which discovery source produced a Device.
type Kind string

const (
	KindSerial  Kind = "serial"
	KindStorage Kind = "storage"
)

// Device represents a discovered board, either a USB serial port or a
// mounted BOOTSEL mass-storage volume.
type Device struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// Serial variant
	Path         string `json:"path,omitempty"`
	Product      string `json:"product,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	VendorID     string `json:"vendorId,omitempty"`
	ProductID    string `json:"productId,omitempty"`

	// Storage variant
	MountPath string `json:"mountPath,omitempty"`
	BoardID   string `json:"boardId,omitempty"`
	Model     string `json:"model,omitempty"`
	InfoText  string `json:"infoText,omitempty"`

	Description string `json:"description,omitempty"`
}

// DiscoveryError records a failure in one discovery source. It is carried
// in the Result instead of aborting the other source.
type DiscoveryError struct {
	Source string `json:"source"` // "serial" or "storage"
	Err    error  `json:"-"`
}

func (e DiscoveryError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

// Result is the outcome of one enumeration pass. Devices are in discovery
// order (serial before storage, scan order within a source) with duplicate
// ids collapsed to the first occurrence.
type Result struct {
	Devices []Device         `json:"devices"`
	Errors  []DiscoveryError `json:"errors"`
}
