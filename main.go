// Command inputcast captures system-wide keyboard and mouse events and
// republishes them as a JSON action stream to any number of WebSocket
// subscribers, e.g. a reactive on-screen character.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"inputcast/internal/broadcast"
	"inputcast/internal/capture"
	"inputcast/internal/clients"
	"inputcast/internal/keymap"
	"inputcast/internal/server"
	"inputcast/internal/translate"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address for the websocket server")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      parseLevel(*logLevel),
		TimeFormat: time.TimeOnly,
	})))

	bus := broadcast.New(broadcast.DefaultDepth)
	reg := clients.NewRegistry()

	// Capture side: the hook delivers on its own thread; the driver drains,
	// translates and publishes without ever blocking on the network.
	ctx, stopCapture := context.WithCancel(context.Background())
	driver := capture.NewDriver(capture.NewHookSource(), translate.New(keymap.Default()), bus)
	go func() {
		slog.Info("input listener started, capturing global input")
		if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			// Fatal to capture only; keep serving connected subscribers.
			slog.Error("capture stopped", "error", err)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.Handler(bus, reg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		slog.Info("websocket server started", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// Nothing can be served without a listener.
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down", "subscribers", reg.Len())

	stopCapture()
	bus.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("server shutdown", "error", err)
	}
	reg.CloseAll()
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
