// Package api exposes HTTP handlers for the school activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", h.root)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects to the front-end entry point.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, h.service.ListActivities(r.Context()))
}

// rosterAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. Activity names may contain spaces and are
// matched verbatim against registry keys.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")

	var name string
	var signup bool
	switch {
	case strings.HasSuffix(rest, "/signup"):
		name, signup = strings.TrimSuffix(rest, "/signup"), true
	case strings.HasSuffix(rest, "/unregister"):
		name, signup = strings.TrimSuffix(rest, "/unregister"), false
	default:
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity name")
		return
	}

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "email query parameter is required")
		return
	}

	if signup {
		h.signup(w, r, name, email)
		return
	}
	h.unregister(w, r, name, email)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.service.SignUp(r.Context(), name, email); err != nil {
		writeRosterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		writeRosterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func writeRosterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, "already_signed_up", "Already signed up for this activity")
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "not_signed_up", "Not signed up for this activity")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// MessageResponse carries the human-readable confirmation for roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
