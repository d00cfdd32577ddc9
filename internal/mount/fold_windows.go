//go:build windows
// +build windows

package mount

// Windows paths compare case-insensitively.
const caseInsensitiveFS = true
