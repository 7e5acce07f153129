// Package remote exposes a presentation's navigation over HTTP.
//
// A phone or a second machine can drive the deck: POST endpoints issue
// navigation commands and a websocket streams every rendered frame.
// Commands are never applied here; they are forwarded to the
// presentation's event loop through the dispatch callback, so remote
// input serializes with local key presses in arrival order.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/quellen/preso/internal/log"
	"github.com/quellen/preso/internal/nav"
)

// Server is the remote-control HTTP server for one presentation.
type Server struct {
	dispatch func(nav.Command)
	hub      *hub
	logger   *log.Logger

	httpServer *http.Server
	listener   net.Listener
}

// New creates a server that forwards commands through dispatch.
func New(dispatch func(nav.Command), logger *log.Logger) *Server {
	s := &Server{
		dispatch: dispatch,
		hub:      newHub(logger),
		logger:   logger,
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route table. Split out for tests.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/api/nav/next", s.handleOp(nav.OpNext)).Methods(http.MethodPost)
	r.HandleFunc("/api/nav/prev", s.handleOp(nav.OpPrev)).Methods(http.MethodPost)
	r.HandleFunc("/api/nav/first", s.handleOp(nav.OpFirst)).Methods(http.MethodPost)
	r.HandleFunc("/api/nav/last", s.handleOp(nav.OpLast)).Methods(http.MethodPost)
	r.HandleFunc("/api/nav/goto", s.handleGoTo).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.hub.handleWS)
	return r
}

// Start begins listening on addr. It returns once the listener is
// bound so callers know the port is taken, then serves in the
// background until Shutdown.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("remote control listen: %w", err)
	}
	s.listener = ln
	s.logger.Printf("Remote control listening on http://%s\n", ln.Addr())

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("Warning: remote control server: %v\n", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops the server and closes websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.close()
	return s.httpServer.Shutdown(ctx)
}

// Broadcast publishes a frame to the state endpoint and all websocket
// clients. Called from the presentation's render pass.
func (s *Server) Broadcast(f nav.Frame) {
	s.hub.broadcast(f)
}

// statusResponse acknowledges an accepted command.
type statusResponse struct {
	Success bool `json:"success"`
}

// gotoRequest carries the target slide for a goto command.
type gotoRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	f, ok := s.hub.latest()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, frameJSON(f))
}

func (s *Server) handleOp(op nav.Op) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.dispatch(nav.Command{Op: op})
		writeJSON(w, statusResponse{Success: true})
	}
}

func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	var req gotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	// Out-of-range targets are clamped by the controller, not rejected.
	s.dispatch(nav.Command{Op: nav.OpGoTo, Index: req.Index})
	writeJSON(w, statusResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
