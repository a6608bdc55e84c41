package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"inputcast/internal/broadcast"
	"inputcast/internal/clients"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	// Subscribers only ever send control frames back.
	readLimit = 512
)

// State is a session's lifecycle position.
type State int32

const (
	StateConnecting State = iota
	StateActive
	StateClosed
)

// Session is one subscriber's delivery loop: its own bus subscription, its
// own transport, its own lifetime.
type Session struct {
	id     string
	conn   *websocket.Conn
	sub    *broadcast.Subscription
	reg    *clients.Registry
	cancel context.CancelFunc

	state  atomic.Int32
	missed atomic.Uint64
	once   sync.Once
}

func newSession(id string, conn *websocket.Conn, sub *broadcast.Subscription, reg *clients.Registry) *Session {
	return &Session{id: id, conn: conn, sub: sub, reg: reg}
}

func (s *Session) ID() string { return s.id }

// State reports the session's current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// start registers the session and launches its read and write loops. The
// request context dies with the HTTP handler, so the session runs on its own.
func (s *Session) start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state.Store(int32(StateActive))
	s.reg.Add(s)
	slog.Info("subscriber connected", "session", s.id, "remote", s.conn.RemoteAddr().String())
	go s.readLoop()
	go s.writeLoop(ctx)
}

// Close tears the session down: terminal, idempotent, local. The producer and
// every other session are unaffected.
func (s *Session) Close() {
	s.once.Do(func() {
		s.state.Store(int32(StateClosed))
		if s.cancel != nil {
			s.cancel()
		}
		s.sub.Close()
		s.reg.Remove(s.id)
		s.conn.Close()
		slog.Info("subscriber disconnected", "session", s.id, "missed", s.missed.Load())
	})
}

// readLoop drains inbound frames. Subscribers have nothing to say on this
// channel, but reading is what services pongs and detects disconnects.
func (s *Session) readLoop() {
	defer s.Close()
	s.conn.SetReadLimit(readLimit)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop forwards bus actions to the transport, pinging during idle
// stretches. First write failure closes the session.
func (s *Session) writeLoop(ctx context.Context) {
	defer s.Close()
	for {
		nextCtx, cancel := context.WithTimeout(ctx, pingPeriod)
		act, missed, err := s.sub.Next(nextCtx)
		cancel()

		switch {
		case err == nil:
			if missed > 0 {
				// Lagging reader skipped ahead; keep going with what is fresh.
				s.missed.Add(missed)
				slog.Debug("subscriber lagged, skipped ahead", "session", s.id, "missed", missed)
			}
			payload, err := json.Marshal(act)
			if err != nil {
				slog.Error("encode action", "session", s.id, "error", err)
				continue
			}
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				slog.Debug("write failed", "session", s.id, "error", err)
				return
			}

		case errors.Is(err, context.DeadlineExceeded):
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}

		default:
			// Bus closed or session cancelled; say goodbye politely.
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		}
	}
}
