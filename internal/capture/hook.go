package capture

import (
	"sync"

	hook "github.com/robotn/gohook"

	"inputcast/internal/types"
)

// HookSource adapts the gohook global input hook to the Source interface.
// gohook runs the OS hook on its own thread and hands events over a channel;
// the adapter only reclassifies them, so the hook thread is never blocked by
// anything downstream.
type HookSource struct {
	events chan types.RawEvent
	once   sync.Once
}

// NewHookSource installs the global hook and starts classifying its events.
func NewHookSource() *HookSource {
	s := &HookSource{events: make(chan types.RawEvent, 64)}
	go s.pump(hook.Start())
	return s
}

// Events returns the classified raw event stream. The channel closes when the
// hook stops, whether by Close or by a hook failure.
func (s *HookSource) Events() <-chan types.RawEvent {
	return s.events
}

// Close uninstalls the hook. Idempotent.
func (s *HookSource) Close() {
	s.once.Do(hook.End)
}

func (s *HookSource) pump(raw chan hook.Event) {
	defer close(s.events)
	for ev := range raw {
		var out types.RawEvent
		switch ev.Kind {
		case hook.KeyDown, hook.KeyHold:
			// Auto-repeat arrives as KeyHold; the stream treats it as a press.
			out = types.RawEvent{Class: types.ClassKeyPress, Key: ev.Rawcode}
		case hook.KeyUp:
			out = types.RawEvent{Class: types.ClassKeyRelease, Key: ev.Rawcode}
		case hook.MouseDown:
			out = types.RawEvent{Class: types.ClassButtonPress, Button: ev.Button}
		case hook.MouseUp:
			out = types.RawEvent{Class: types.ClassButtonRelease, Button: ev.Button}
		case hook.MouseMove, hook.MouseDrag:
			out = types.RawEvent{Class: types.ClassMouseMove, X: float64(ev.X), Y: float64(ev.Y)}
		default:
			// Wheel and hook lifecycle events carry nothing for the stream.
			continue
		}
		s.events <- out
	}
}
