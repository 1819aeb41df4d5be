package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the request and attaches the connection to the hub.
// It blocks until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	client, ok := newClient(h, conn)
	if !ok {
		_ = conn.Close()
		return
	}
	client.run()
}

// Handler returns the telemetry routes: /ws and /healthz
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprintf(w, "ok %d\n", h.ClientCount())
	})
	return mux
}

// Server serves a hub over HTTP
type Server struct {
	hub  *Hub
	http *http.Server
}

// NewServer creates a server for hub listening on addr
func NewServer(addr string, hub *Hub) *Server {
	return &Server{
		hub: hub,
		http: &http.Server{
			Addr:              addr,
			Handler:           hub.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start runs the hub and begins listening in the background. Listener
// errors are reported on the returned channel.
func (s *Server) Start(ctx context.Context) <-chan error {
	errc := make(chan error, 1)
	go s.hub.Run(ctx)
	go func() {
		s.hub.logger.Info("telemetry listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("telemetry server: %w", err)
		}
		close(errc)
	}()
	return errc
}

// Shutdown stops accepting connections and waits for handlers to return
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
