// Package capture owns the process's single subscription to the OS global
// input hook and feeds translated actions into the broadcast bus.
package capture

import (
	"context"
	"errors"

	"inputcast/internal/types"
)

// ErrSourceClosed reports that the input source stopped delivering events.
// Capture does not retry; the delivery side keeps serving whatever
// subscribers remain but receives no further live events.
var ErrSourceClosed = errors.New("capture: input source closed")

// Source is a raw input event stream. Events delivers in OS order; the
// channel closes when the source fails or after Close.
type Source interface {
	Events() <-chan types.RawEvent
	Close()
}

// Translator turns a raw event into zero or one action.
type Translator interface {
	Translate(types.RawEvent) (types.Action, bool)
}

// Publisher accepts translated actions. Publish must not block; the OS holds
// global input delivery until the capture loop comes back around.
type Publisher interface {
	Publish(types.Action)
}

// Driver runs the capture loop: drain the source, translate, publish.
type Driver struct {
	src Source
	tr  Translator
	bus Publisher
}

// NewDriver wires a source to the bus through a translator.
func NewDriver(src Source, tr Translator, bus Publisher) *Driver {
	return &Driver{src: src, tr: tr, bus: bus}
}

// Run consumes the source until the context is cancelled or the source
// terminates. A terminated source is fatal to capture only and reported as
// ErrSourceClosed. Run performs no I/O and takes no locks beyond the
// translator's throttle mutex, keeping each event's handling sub-millisecond.
func (d *Driver) Run(ctx context.Context) error {
	events := d.src.Events()
	for {
		select {
		case <-ctx.Done():
			d.src.Close()
			for range events {
				// let the source unwind its final sends
			}
			return ctx.Err()
		case raw, ok := <-events:
			if !ok {
				return ErrSourceClosed
			}
			if act, ok := d.tr.Translate(raw); ok {
				d.bus.Publish(act)
			}
		}
	}
}
