//go:build windows

package keymap

// Windows reports virtual-key codes as the raw code.
var defaultNamed = map[uint16]string{
	// Letters VK_A..VK_Z.
	0x41: "KeyA", 0x42: "KeyB", 0x43: "KeyC", 0x44: "KeyD", 0x45: "KeyE",
	0x46: "KeyF", 0x47: "KeyG", 0x48: "KeyH", 0x49: "KeyI", 0x4A: "KeyJ",
	0x4B: "KeyK", 0x4C: "KeyL", 0x4D: "KeyM", 0x4E: "KeyN", 0x4F: "KeyO",
	0x50: "KeyP", 0x51: "KeyQ", 0x52: "KeyR", 0x53: "KeyS", 0x54: "KeyT",
	0x55: "KeyU", 0x56: "KeyV", 0x57: "KeyW", 0x58: "KeyX", 0x59: "KeyY",
	0x5A: "KeyZ",

	// Digit row and numpad share tokens.
	0x30: "Num0", 0x31: "Num1", 0x32: "Num2", 0x33: "Num3", 0x34: "Num4",
	0x35: "Num5", 0x36: "Num6", 0x37: "Num7", 0x38: "Num8", 0x39: "Num9",
	0x60: "Num0", 0x61: "Num1", 0x62: "Num2", 0x63: "Num3", 0x64: "Num4",
	0x65: "Num5", 0x66: "Num6", 0x67: "Num7", 0x68: "Num8", 0x69: "Num9",

	// Modifiers: generic and left/right variants collapse to one token.
	0x10: "Shift", 0xA0: "Shift", 0xA1: "Shift",
	0x11: "Control", 0xA2: "Control", 0xA3: "Control",
	0x12: "Alt", 0xA4: "Alt", 0xA5: "Alt",
	0x5B: "Meta", 0x5C: "Meta",

	// Function keys VK_F1..VK_F12.
	0x70: "F1", 0x71: "F2", 0x72: "F3", 0x73: "F4", 0x74: "F5", 0x75: "F6",
	0x76: "F7", 0x77: "F8", 0x78: "F9", 0x79: "F10", 0x7A: "F11", 0x7B: "F12",

	// Whitespace, editing and navigation.
	0x20: "Space",
	0x1B: "Escape",
	0x09: "Tab",
	0x0D: "Return",
	0x08: "Backspace",
	0x14: "CapsLock",
	0x2D: "Insert",
	0x2E: "Delete",
	0x24: "Home",
	0x23: "End",
	0x21: "PageUp",
	0x22: "PageDown",
	0x26: "UpArrow",
	0x28: "DownArrow",
	0x25: "LeftArrow",
	0x27: "RightArrow",
}

// OEM punctuation virtual keys. Layout-dependent; values assume US layout.
var defaultFallback = map[uint16]string{
	188: ",",
	190: ".",
	191: "/",
	186: ";",
	222: "'",
	219: "[",
	221: "]",
	220: "\\",
	189: "-",
	187: "=",
}
