//go:build !windows
// +build !windows

package mount

const caseInsensitiveFS = false
