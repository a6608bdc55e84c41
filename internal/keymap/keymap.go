// Package keymap resolves raw platform key and button identifiers to the
// symbolic tokens of the wire protocol. Each platform ships its own tables in
// separate files guarded by build tags; the lookup logic is shared.
package keymap

import "strconv"

// Table is a two-tier symbol table. Named holds the exact mapping for keys
// with stable symbolic names (letters, digits, function keys, modifiers with
// left/right variants collapsed). Fallback maps raw codes of punctuation keys
// that have no named variant and is consulted only when Named has no entry.
// Both tiers are read-only after construction.
type Table struct {
	named    map[uint16]string
	fallback map[uint16]string
}

// New builds a Table from explicit tier maps. The maps are retained, not
// copied; callers must not mutate them afterwards.
func New(named, fallback map[uint16]string) Table {
	return Table{named: named, fallback: fallback}
}

// Default returns the symbol table for the current platform.
func Default() Table {
	return New(defaultNamed, defaultFallback)
}

// LookupKey resolves a raw key identifier to its protocol token. Keys present
// in neither tier report ok=false and produce no event upstream.
func (t Table) LookupKey(raw uint16) (token string, ok bool) {
	if token, ok = t.named[raw]; ok {
		return token, true
	}
	token, ok = t.fallback[raw]
	return token, ok
}

// Fixed names for the three standard mouse buttons.
const (
	ButtonLeft   = "Mouse1"
	ButtonRight  = "Mouse2"
	ButtonMiddle = "Mouse3"
)

// ButtonName resolves a raw button code. The three standard buttons get fixed
// names; any other physical button is named after its raw code so novel
// hardware is never silently dropped.
func ButtonName(code uint16) string {
	switch code {
	case 1:
		return ButtonLeft
	case 2:
		return ButtonRight
	case 3:
		return ButtonMiddle
	default:
		return "Mouse" + strconv.Itoa(int(code))
	}
}
