// Package translate maps raw hook events onto canonical actions. It is the
// hot path: the OS blocks global input delivery until each callback returns,
// so translation must finish in microseconds with no I/O and at most one
// small allocation.
package translate

import (
	"sync"
	"time"

	"inputcast/internal/keymap"
	"inputcast/internal/types"
)

// MouseMoveInterval is the minimum spacing between emitted MouseMove actions,
// ~60 events per second. Moves arriving inside the window are dropped, not
// queued.
const MouseMoveInterval = 16 * time.Millisecond

// Translator converts raw events to actions and owns the mouse-move throttle
// state. Safe for use from a single capture goroutine; the mutex exists so
// the timestamp compare-and-update stays one atomic critical section and is
// never held across anything else.
type Translator struct {
	keys     keymap.Table
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastMove time.Time
}

// New builds a Translator over the given symbol table. The throttle starts
// one interval in the past so the first move is always accepted; suppression
// only ever applies relative to a previously accepted move.
func New(keys keymap.Table) *Translator {
	return newTranslator(keys, MouseMoveInterval, time.Now)
}

func newTranslator(keys keymap.Table, interval time.Duration, now func() time.Time) *Translator {
	return &Translator{
		keys:     keys,
		interval: interval,
		now:      now,
		lastMove: now().Add(-interval),
	}
}

// Translate returns the canonical action for a raw event, or ok=false when
// the event is throttled, unmapped, or of a class the stream does not carry.
// Misses are expected and silent, not errors.
func (t *Translator) Translate(raw types.RawEvent) (types.Action, bool) {
	switch raw.Class {
	case types.ClassMouseMove:
		if !t.acceptMove() {
			return types.Action{}, false
		}
		return types.Move(raw.X, raw.Y), true

	case types.ClassButtonPress:
		return types.Button(types.MousePress, keymap.ButtonName(raw.Button)), true

	case types.ClassButtonRelease:
		return types.Button(types.MouseRelease, keymap.ButtonName(raw.Button)), true

	case types.ClassKeyPress:
		if token, ok := t.keys.LookupKey(raw.Key); ok {
			return types.Key(types.KeyboardPress, token), true
		}
		return types.Action{}, false

	case types.ClassKeyRelease:
		if token, ok := t.keys.LookupKey(raw.Key); ok {
			return types.Key(types.KeyboardRelease, token), true
		}
		return types.Action{}, false
	}

	// Scroll wheel and anything else the hook reports.
	return types.Action{}, false
}

// acceptMove checks the throttle window and, when it has elapsed, advances
// the stored timestamp to now.
func (t *Translator) acceptMove() bool {
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()
	if now.Sub(t.lastMove) < t.interval {
		return false
	}
	t.lastMove = now
	return true
}
