package monitor

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Server streams collected check events to websocket clients.
// A client connecting to /ws first receives a replay of every
// event published so far, then live events as they arrive.
type Server struct {
	mu        sync.Mutex
	collector *Collector
	logger    *zap.Logger
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]struct{}
	handler   http.Handler
	server    *http.Server
	addr      string
}

// NewServer creates a Server broadcasting the collector's
// events. A nil logger is replaced with a no-op one. The
// broadcast handler is registered immediately, so events
// published before Start are replayed to late clients.
func NewServer(
	addr string,
	collector *Collector,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		collector: collector,
		logger:    logger,
		clients:   make(map[*websocket.Conn]struct{}),
		addr:      addr,
		upgrader: websocket.Upgrader{
			// The monitor serves trusted local tooling, not
			// browsers with ambient credentials.
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", func(
		w http.ResponseWriter, _ *http.Request,
	) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	s.handler = mux

	collector.OnEvent(s.broadcast)

	return s
}

// Handler returns the server's HTTP handler, for embedding in
// an existing server or a test harness.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves the websocket endpoint until the context is
// cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	err := s.server.ListenAndServe()
	if err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleWS upgrades the connection, replays the event history,
// then holds the connection open for live broadcasts. The read
// loop only drains control frames and detects disconnects.
func (s *Server) handleWS(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(
			"websocket upgrade failed", zap.Error(err),
		)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	for _, e := range s.collector.Events() {
		if err := conn.WriteJSON(e); err != nil {
			break
		}
	}
	s.mu.Unlock()

	s.logger.Debug(
		"monitor client connected",
		zap.String("remote", conn.RemoteAddr().String()),
	)

	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}

	s.remove(conn)
}

// broadcast writes the event to every connected client,
// dropping clients whose connection has failed.
func (s *Server) broadcast(e CheckEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		if err := conn.WriteJSON(e); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// remove drops a client and closes its connection.
func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}
