// Package server accepts subscriber connections and runs one delivery
// session per connection: wait for the next action on the bus, encode, push.
// A session failing never touches the capture side, the bus, or any other
// session.
package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"inputcast/internal/broadcast"
	"inputcast/internal/clients"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Handler returns the websocket endpoint. Each accepted connection gets its
// own bus subscription and delivery session, independent of all others.
func Handler(bus *broadcast.Bus, reg *clients.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Handshake failure terminates only this would-be session.
			slog.Warn("websocket handshake failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		s := newSession(uuid.NewString(), ws, bus.Subscribe(), reg)
		s.start()
	}
}
