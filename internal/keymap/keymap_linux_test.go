package keymap

import "testing"

// X11 keysyms used by the default table on this platform.
const (
	shiftLeft    = 0xFFE1
	shiftRight   = 0xFFE2
	controlLeft  = 0xFFE3
	controlRight = 0xFFE4
	metaLeft     = 0xFFEB
	metaRight    = 0xFFEC
	kp7          = 0xFFB7
)

func TestDefaultCollapsesVariants(t *testing.T) {
	table := Default()

	tests := []struct {
		name string
		raw  uint16
		want string
	}{
		{"ControlLeft", controlLeft, "Control"},
		{"ControlRight", controlRight, "Control"},
		{"ShiftLeft", shiftLeft, "Shift"},
		{"ShiftRight", shiftRight, "Shift"},
		{"MetaLeft", metaLeft, "Meta"},
		{"MetaRight", metaRight, "Meta"},
		{"lowercase letter", 0x61, "KeyA"},
		{"uppercase letter", 0x41, "KeyA"},
		{"digit row", 0x37, "Num7"},
		{"keypad digit", kp7, "Num7"},
		{"punctuation fallback", 0x3B, ";"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.LookupKey(tt.raw)
			if !ok || got != tt.want {
				t.Errorf("LookupKey(%#x) = %q, %v; want %q", tt.raw, got, ok, tt.want)
			}
		})
	}
}

func TestDefaultDropsUnmappedKey(t *testing.T) {
	table := Default()
	if got, ok := table.LookupKey(0xFFFE); ok {
		t.Errorf("LookupKey(0xFFFE) = %q, want no mapping", got)
	}
}
