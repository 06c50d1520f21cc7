// Package server exposes the ranking engine over a small WebSocket service.
// The engine itself stays pure; this is a transport collaborator only.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerhands/poker"
)

// ShowdownRequest is one ranking request: two hand strings in the
// "Owner: 2H 3D 5S 9C KD" notation.
type ShowdownRequest struct {
	Black string `json:"black"`
	White string `json:"white"`
}

// ShowdownResponse carries the verdict, or an error for input the engine
// rejected (malformed hands, invalid-deck inconsistencies).
type ShowdownResponse struct {
	Outcome string `json:"outcome,omitempty"`
	Winner  string `json:"winner,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Server serves showdown requests over WebSocket
type Server struct {
	addr       string
	upgrader   websocket.Upgrader
	logger     *log.Logger
	httpServer *http.Server
}

// NewServer creates a showdown server listening on addr
func NewServer(addr string, logger *log.Logger) *Server {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	return s
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens and serves until Stop is called
func (s *Server) Start() error {
	s.logger.Info("starting showdown server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleWebSocket upgrades the connection and answers showdown requests
// until the client hangs up
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	for {
		var req ShowdownRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Error("read failed", "error", err)
			}
			return
		}

		resp := s.rank(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("write failed", "error", err)
			return
		}
	}
}

// rank turns one request into a response, mapping engine errors onto the
// response's error field
func (s *Server) rank(req ShowdownRequest) ShowdownResponse {
	black, err := poker.ParseHand(req.Black)
	if err != nil {
		return ShowdownResponse{Error: err.Error()}
	}
	white, err := poker.ParseHand(req.White)
	if err != nil {
		return ShowdownResponse{Error: err.Error()}
	}

	result, err := poker.Rank(black, white)
	if err != nil {
		s.logger.Warn("ranking rejected", "error", err)
		return ShowdownResponse{Error: err.Error()}
	}

	s.logger.Debug("ranked showdown", "black", req.Black, "white", req.White, "verdict", result)

	if result.IsDraw() {
		return ShowdownResponse{Outcome: "draw"}
	}
	return ShowdownResponse{Outcome: "win", Winner: result.Winner, Reason: result.Reason}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
