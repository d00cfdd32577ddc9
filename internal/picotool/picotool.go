// Package picotool shells out to the picotool binary to flip a board from
// serial mode into BOOTSEL (filesystem) mode. The tool's semantics are
// opaque to this layer: arguments go in, trimmed stdout comes out.
package picotool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultToolName = "picotool"
	defaultTimeout  = 10 * time.Second
)

// ErrToolNotInstalled is returned when the picotool binary cannot be
// launched because it is not on the search path.
var ErrToolNotInstalled = errors.New("picotool is not installed (install it or pass --tool-path)")

// RebootOptions selects the target board for a reboot. Every field is
// optional; absent fields are omitted from the invocation entirely.
type RebootOptions struct {
	SerialNumber string
	Bus          int
	Address      int
	Drive        string
	ToolPath     string
	Timeout      time.Duration
}

// Reboot asks picotool to reboot the board into BOOTSEL mode so that its
// mass-storage volume appears. Returns picotool's trimmed stdout.
func Reboot(ctx context.Context, opts RebootOptions) (string, error) {
	return run(ctx, opts.ToolPath, rebootArgs(opts), opts.Timeout)
}

// Version returns the installed picotool's version string.
func Version(ctx context.Context, toolPath string, timeout time.Duration) (string, error) {
	return run(ctx, toolPath, []string{"version"}, timeout)
}

func rebootArgs(opts RebootOptions) []string {
	args := []string{"reboot", "-f", "-u"}
	if opts.SerialNumber != "" {
		args = append(args, "--ser", opts.SerialNumber)
	}
	if opts.Bus > 0 {
		args = append(args, "--bus", strconv.Itoa(opts.Bus))
	}
	if opts.Address > 0 {
		args = append(args, "--address", strconv.Itoa(opts.Address))
	}
	if opts.Drive != "" {
		args = append(args, "--drive", opts.Drive)
	}
	return args
}

// run executes picotool once, with no retries. A custom tool path must
// exist on disk before we even try to spawn it.
func run(ctx context.Context, toolPath string, args []string, timeout time.Duration) (string, error) {
	exe := defaultToolName
	if toolPath != "" {
		if _, err := os.Stat(toolPath); err != nil {
			return "", fmt.Errorf("picotool not found at %s", toolPath)
		}
		exe = toolPath
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Debugf("running %s %s", exe, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrToolNotInstalled
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("picotool timed out after %s", timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("picotool failed: %s", msg)
		}
		return "", fmt.Errorf("picotool failed: %v", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
