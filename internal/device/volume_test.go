package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestProbeVolumeReadsMarkerFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, infoFileName), "UF2 Bootloader v3.0\nBoard-ID: RPI-RP2\nModel: Pico\n")

	d := ProbeVolume(dir)
	if assert.NotNil(t, d) {
		assert.Equal(t, "storage:"+dir, d.ID)
		assert.Equal(t, KindStorage, d.Kind)
		assert.Equal(t, "RPI-RP2", d.BoardID)
		assert.Equal(t, "Pico", d.Model)
		assert.Equal(t, "Pico", d.Description)
		assert.Contains(t, d.InfoText, "UF2 Bootloader")
	}
}

func TestProbeVolumeMarkerFieldIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, infoFileName), "board-id:   RPI-RP2   \n")

	d := ProbeVolume(dir)
	if assert.NotNil(t, d) {
		assert.Equal(t, "RPI-RP2", d.BoardID)
		assert.Equal(t, "RPI-RP2", d.Description)
	}
}

func TestProbeVolumeIndexOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, indexFileName), "<html></html>")

	d := ProbeVolume(dir)
	if assert.NotNil(t, d) {
		assert.Empty(t, d.BoardID)
		assert.Empty(t, d.Model)
		assert.Equal(t, "UF2 volume", d.Description)
	}
}

func TestProbeVolumeRejectsNonVolumes(t *testing.T) {
	assert.Nil(t, ProbeVolume(filepath.Join(t.TempDir(), "missing")))
	assert.Nil(t, ProbeVolume(t.TempDir())) // no marker files

	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, "not a directory")
	assert.Nil(t, ProbeVolume(file))
}
