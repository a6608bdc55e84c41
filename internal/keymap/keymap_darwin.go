//go:build darwin

package keymap

// macOS reports CGKeyCode values as the raw code.
var defaultNamed = map[uint16]string{
	// Letters.
	0:  "KeyA",
	11: "KeyB",
	8:  "KeyC",
	2:  "KeyD",
	14: "KeyE",
	3:  "KeyF",
	5:  "KeyG",
	4:  "KeyH",
	34: "KeyI",
	38: "KeyJ",
	40: "KeyK",
	37: "KeyL",
	46: "KeyM",
	45: "KeyN",
	31: "KeyO",
	35: "KeyP",
	12: "KeyQ",
	15: "KeyR",
	1:  "KeyS",
	17: "KeyT",
	32: "KeyU",
	9:  "KeyV",
	13: "KeyW",
	7:  "KeyX",
	16: "KeyY",
	6:  "KeyZ",

	// Digit row and keypad share tokens.
	29: "Num0", 18: "Num1", 19: "Num2", 20: "Num3", 21: "Num4",
	23: "Num5", 22: "Num6", 26: "Num7", 28: "Num8", 25: "Num9",
	82: "Num0", 83: "Num1", 84: "Num2", 85: "Num3", 86: "Num4",
	87: "Num5", 88: "Num6", 89: "Num7", 91: "Num8", 92: "Num9",

	// Modifiers, left/right collapsed.
	56: "Shift", 60: "Shift",
	59: "Control", 62: "Control",
	58: "Alt", 61: "Alt",
	55: "Meta", 54: "Meta",

	// Function keys.
	122: "F1", 120: "F2", 99: "F3", 118: "F4", 96: "F5", 97: "F6",
	98: "F7", 100: "F8", 101: "F9", 109: "F10", 103: "F11", 111: "F12",

	// Whitespace, editing and navigation.
	49:  "Space",
	53:  "Escape",
	48:  "Tab",
	36:  "Return",
	51:  "Backspace",
	57:  "CapsLock",
	114: "Insert",
	117: "Delete",
	115: "Home",
	119: "End",
	116: "PageUp",
	121: "PageDown",
	126: "UpArrow",
	125: "DownArrow",
	123: "LeftArrow",
	124: "RightArrow",
}

// ANSI punctuation key codes.
var defaultFallback = map[uint16]string{
	43: ",",
	47: ".",
	44: "/",
	41: ";",
	39: "'",
	33: "[",
	30: "]",
	42: "\\",
	27: "-",
	24: "=",
}
