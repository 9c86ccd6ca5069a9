package devtools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/navkit/navkit"
	"github.com/navkit/navkit/core/navstate"
)

const (
	defaultAddr         = "localhost:8973"
	defaultPath         = "/ws"
	defaultWriteTimeout = 5 * time.Second
)

// ServerOption configures a Server during creation.
type ServerOption func(*Server)

// WithLogger sets a custom logger for the server.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// client serializes writes to one connection. gorilla/websocket allows a
// single concurrent writer per connection, and a snapshot can be written
// both from the connect handler and from the broadcast path.
type client struct {
	conn *websocket.Conn

	mu sync.Mutex // guards writes to conn
}

func (c *client) write(payload []byte, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Server pushes tree snapshots to connected WebSocket clients. It subscribes
// to the engine on creation, so broadcasts flow even when the HTTP listener
// is embedded into an existing mux via Handler instead of Run.
type Server struct {
	engine   *navkit.Engine
	cfg      Config
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*client]struct{}
	latest []byte // most recent marshaled snapshot, sent on connect
	unsub  func()
	closed bool
}

// New creates an inspector server over the given engine and subscribes to
// its transitions. Zero-value Config fields fall back to the same defaults
// the environment loader uses. Call Close (or cancel Run's context) to
// detach.
func New(engine *navkit.Engine, cfg Config, opts ...ServerOption) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.Path == "" {
		cfg.Path = defaultPath
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}

	s := &Server{
		engine: engine,
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		conns:  make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if root := engine.Root(); root != nil {
		if payload, err := json.Marshal(Capture(root)); err == nil {
			s.latest = payload
		}
	}
	s.unsub = engine.Subscribe(func(root *navstate.Node) {
		s.broadcast(root)
	})
	return s
}

// Handler returns the WebSocket upgrade handler, for embedding into an
// existing mux.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handleWS)
}

// Run serves the inspector endpoint until ctx is cancelled, then shuts the
// listener down and closes every client connection.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(s.cfg.Path, s.Handler())

	srv := &http.Server{Addr: s.cfg.Addr, Handler: mux}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("devtools inspector listening",
		slog.String("addr", s.cfg.Addr),
		slog.String("path", s.cfg.Path),
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		_ = s.Close()
		return nil
	case err := <-errc:
		_ = s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close unsubscribes from the engine and closes every client connection.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conns := make([]*client, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.conns = make(map[*client]struct{})
	s.mu.Unlock()

	s.unsub()
	for _, c := range conns {
		_ = c.conn.Close()
	}
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	c := &client{conn: conn}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.conns[c] = struct{}{}
	latest := s.latest
	s.mu.Unlock()
	s.logger.Debug("inspector client connected", slog.String("remote", conn.RemoteAddr().String()))

	if latest != nil {
		if err := c.write(latest, s.cfg.WriteTimeout); err != nil {
			s.drop(c)
			return
		}
	}

	// Drain incoming frames so pings and closes are processed; the stream
	// itself is one-directional.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(c)
				return
			}
		}
	}()
}

// broadcast marshals the snapshot once, caches it for future connects, and
// writes it to every client.
func (s *Server) broadcast(root *navstate.Node) {
	payload, err := json.Marshal(Capture(root))
	if err != nil {
		s.logger.Error("snapshot marshal failed", slog.Any("error", err))
		return
	}

	s.mu.Lock()
	s.latest = payload
	conns := make([]*client, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := c.write(payload, s.cfg.WriteTimeout); err != nil {
			s.drop(c)
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	_, ok := s.conns[c]
	delete(s.conns, c)
	s.mu.Unlock()
	if ok {
		_ = c.conn.Close()
		s.logger.Debug("inspector client disconnected", slog.String("remote", c.conn.RemoteAddr().String()))
	}
}
