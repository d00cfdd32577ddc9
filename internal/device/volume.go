package device

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	infoFileName  = "INFO_UF2.TXT"
	indexFileName = "INDEX.HTM"
)

// ProbeVolume checks whether dir looks like the mass-storage volume a board
// exposes in BOOTSEL mode. It returns nil when dir does not exist, is not a
// directory, or carries neither marker file. Filesystem errors while probing
// degrade to "not a board"; no error escapes.
func ProbeVolume(dir string) *Device {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	infoPath := filepath.Join(dir, infoFileName)
	hasInfo := fileExists(infoPath)
	hasIndex := fileExists(filepath.Join(dir, indexFileName))
	if !hasInfo && !hasIndex {
		return nil
	}

	var raw string
	if hasInfo {
		// Read errors are treated as an empty marker file
		if data, err := os.ReadFile(infoPath); err == nil {
			raw = string(data)
		}
	}

	boardID := markerField(raw, "Board-ID:")
	model := markerField(raw, "Model:")

	description := model
	if description == "" {
		description = boardID
	}
	if description == "" {
		description = "UF2 volume"
	}

	return &Device{
		ID:          "storage:" + dir,
		Kind:        KindStorage,
		MountPath:   dir,
		BoardID:     boardID,
		Model:       model,
		InfoText:    raw,
		Description: description,
	}
}

// markerField extracts the value of a "Key: value" line from the marker
// file. Key match is case-insensitive, value is the rest of the line.
func markerField(raw, key string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < len(key) {
			continue
		}
		if strings.EqualFold(line[:len(key)], key) {
			return strings.TrimSpace(line[len(key):])
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
