package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// Pinger is the slice of pgxpool.Pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler carries the cross-cutting dependencies: the DB handle for the
// health check and the CORS origin.
type Handler struct {
	db            Pinger
	allowedOrigin string
}

func New(db Pinger, allowedOrigin string) *Handler {
	return &Handler{db: db, allowedOrigin: allowedOrigin}
}

// CORS decorates every response with the contact-form CORS policy and
// terminates preflight requests with an empty 204.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
