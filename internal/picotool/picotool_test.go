package picotool

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRebootArgs(t *testing.T) {
	testCases := []struct {
		name string
		opts RebootOptions
		want []string
	}{
		{
			name: "no selectors",
			opts: RebootOptions{},
			want: []string{"reboot", "-f", "-u"},
		},
		{
			name: "serial number only",
			opts: RebootOptions{SerialNumber: "ABC123"},
			want: []string{"reboot", "-f", "-u", "--ser", "ABC123"},
		},
		{
			name: "bus and address",
			opts: RebootOptions{Bus: 1, Address: 4},
			want: []string{"reboot", "-f", "-u", "--bus", "1", "--address", "4"},
		},
		{
			name: "everything",
			opts: RebootOptions{SerialNumber: "ABC", Bus: 2, Address: 7, Drive: "E:"},
			want: []string{"reboot", "-f", "-u", "--ser", "ABC", "--bus", "2", "--address", "7", "--drive", "E:"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rebootArgs(tc.opts))
		})
	}
}

func TestMissingBinaryIsTranslated(t *testing.T) {
	// Point PATH at an empty directory so the lookup cannot succeed.
	t.Setenv("PATH", t.TempDir())

	_, err := Reboot(context.Background(), RebootOptions{SerialNumber: "ABC123"})
	assert.ErrorIs(t, err, ErrToolNotInstalled)
}

func TestCustomToolPathMustExist(t *testing.T) {
	_, err := Reboot(context.Background(), RebootOptions{
		ToolPath: filepath.Join(t.TempDir(), "picotool"),
	})
	assert.ErrorContains(t, err, "not found at")
}

func TestRunReturnsTrimmedStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake tool")
	}
	tool := filepath.Join(t.TempDir(), "picotool")
	script := "#!/bin/sh\necho 'picotool v2.0.0'\n"
	assert.NoError(t, os.WriteFile(tool, []byte(script), 0755))

	out, err := Version(context.Background(), tool, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, "picotool v2.0.0", out)
}

func TestRunSurfacesStderrOnFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake tool")
	}
	tool := filepath.Join(t.TempDir(), "picotool")
	script := "#!/bin/sh\necho 'No accessible RP-series devices' >&2\nexit 1\n"
	assert.NoError(t, os.WriteFile(tool, []byte(script), 0755))

	_, err := Reboot(context.Background(), RebootOptions{ToolPath: tool})
	assert.ErrorContains(t, err, "No accessible RP-series devices")
}
