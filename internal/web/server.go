// Package web provides the reference HTTP server for the comment API.
package web

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/evcraddock/comment-client/internal/logging"
	"github.com/evcraddock/comment-client/internal/store"
)

// Server serves the comment API over HTTP.
type Server struct {
	comments *store.Repository
	mux      *http.ServeMux
	handler  http.Handler
}

// NewServer creates a server backed by the given database.
func NewServer(db *sql.DB) *Server {
	s := &Server{
		comments: store.NewRepository(db),
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/comments", s.handleComments)
	s.mux.HandleFunc("/comment", s.handleCommentCreate)
	s.mux.HandleFunc("/comment/{id}", s.handleCommentByID)

	s.handler = logging.RequestLogger(s.mux)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting comment server", "addr", "http://localhost"+addr)
	return http.ListenAndServe(addr, s)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
