package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/evcraddock/comment-client/internal/store"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encoding error response", "error", err)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// commentBody is the request body for create and update.
// Pointers distinguish a missing field from an empty string.
type commentBody struct {
	Name *string `json:"name"`
	Text *string `json:"text"`
}

// decodeCommentBody reads and checks a create or update body.
func decodeCommentBody(r *http.Request) (name, text string, err error) {
	var req commentBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", errors.New("invalid JSON body")
	}
	if req.Name == nil || req.Text == nil {
		return "", "", errors.New("name and text are required")
	}
	return *req.Name, *req.Text, nil
}

// handleComments serves GET /comments.
func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	comments, err := s.comments.List()
	if err != nil {
		apiError(w, fmt.Sprintf("listing comments: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, comments, http.StatusOK)
}

// handleCommentCreate serves POST /comment.
func (s *Server) handleCommentCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name, text, err := decodeCommentBody(r)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.comments.Add(name, text)
	if err != nil {
		apiError(w, fmt.Sprintf("adding comment: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, c, http.StatusCreated)
}

// handleCommentByID serves PUT /comment/{id}.
func (s *Server) handleCommentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		apiError(w, "invalid comment ID", http.StatusBadRequest)
		return
	}

	name, text, err := decodeCommentBody(r)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.comments.Update(id, name, text)
	if errors.Is(err, store.ErrNotFound) {
		apiError(w, "comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("updating comment: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, c, http.StatusOK)
}
