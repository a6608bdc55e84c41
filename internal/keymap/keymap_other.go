//go:build !linux && !darwin && !windows

package keymap

// No hook support on this platform, so there is nothing to translate.
var (
	defaultNamed    = map[uint16]string{}
	defaultFallback = map[uint16]string{}
)
