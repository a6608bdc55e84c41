//go:build linux

package keymap

// X11 delivers keysyms as the raw code, so letter keys appear as their ASCII
// keysym in either case depending on the modifier state. Both cases map to
// the same token.
var defaultNamed = map[uint16]string{
	// Letters, lowercase and uppercase keysyms.
	0x61: "KeyA", 0x41: "KeyA",
	0x62: "KeyB", 0x42: "KeyB",
	0x63: "KeyC", 0x43: "KeyC",
	0x64: "KeyD", 0x44: "KeyD",
	0x65: "KeyE", 0x45: "KeyE",
	0x66: "KeyF", 0x46: "KeyF",
	0x67: "KeyG", 0x47: "KeyG",
	0x68: "KeyH", 0x48: "KeyH",
	0x69: "KeyI", 0x49: "KeyI",
	0x6A: "KeyJ", 0x4A: "KeyJ",
	0x6B: "KeyK", 0x4B: "KeyK",
	0x6C: "KeyL", 0x4C: "KeyL",
	0x6D: "KeyM", 0x4D: "KeyM",
	0x6E: "KeyN", 0x4E: "KeyN",
	0x6F: "KeyO", 0x4F: "KeyO",
	0x70: "KeyP", 0x50: "KeyP",
	0x71: "KeyQ", 0x51: "KeyQ",
	0x72: "KeyR", 0x52: "KeyR",
	0x73: "KeyS", 0x53: "KeyS",
	0x74: "KeyT", 0x54: "KeyT",
	0x75: "KeyU", 0x55: "KeyU",
	0x76: "KeyV", 0x56: "KeyV",
	0x77: "KeyW", 0x57: "KeyW",
	0x78: "KeyX", 0x58: "KeyX",
	0x79: "KeyY", 0x59: "KeyY",
	0x7A: "KeyZ", 0x5A: "KeyZ",

	// Digit row and keypad digits share tokens.
	0x30: "Num0", 0x31: "Num1", 0x32: "Num2", 0x33: "Num3", 0x34: "Num4",
	0x35: "Num5", 0x36: "Num6", 0x37: "Num7", 0x38: "Num8", 0x39: "Num9",
	0xFFB0: "Num0", 0xFFB1: "Num1", 0xFFB2: "Num2", 0xFFB3: "Num3",
	0xFFB4: "Num4", 0xFFB5: "Num5", 0xFFB6: "Num6", 0xFFB7: "Num7",
	0xFFB8: "Num8", 0xFFB9: "Num9",

	// Modifiers, left/right collapsed. 0xFE03 is ISO_Level3_Shift (AltGr).
	0xFFE1: "Shift", 0xFFE2: "Shift",
	0xFFE3: "Control", 0xFFE4: "Control",
	0xFFE9: "Alt", 0xFFEA: "Alt", 0xFE03: "Alt",
	0xFFEB: "Meta", 0xFFEC: "Meta",

	// Function keys.
	0xFFBE: "F1", 0xFFBF: "F2", 0xFFC0: "F3", 0xFFC1: "F4",
	0xFFC2: "F5", 0xFFC3: "F6", 0xFFC4: "F7", 0xFFC5: "F8",
	0xFFC6: "F9", 0xFFC7: "F10", 0xFFC8: "F11", 0xFFC9: "F12",

	// Whitespace, editing and navigation.
	0x20:   "Space",
	0xFF1B: "Escape",
	0xFF09: "Tab",
	0xFF0D: "Return",
	0xFF08: "Backspace",
	0xFFE5: "CapsLock",
	0xFF63: "Insert",
	0xFFFF: "Delete",
	0xFF50: "Home",
	0xFF57: "End",
	0xFF55: "PageUp",
	0xFF56: "PageDown",
	0xFF52: "UpArrow",
	0xFF54: "DownArrow",
	0xFF51: "LeftArrow",
	0xFF53: "RightArrow",
}

// Punctuation keysyms are plain ASCII on X11.
var defaultFallback = map[uint16]string{
	0x2C: ",",
	0x2E: ".",
	0x2F: "/",
	0x3B: ";",
	0x27: "'",
	0x5B: "[",
	0x5D: "]",
	0x5C: "\\",
	0x2D: "-",
	0x3D: "=",
}
