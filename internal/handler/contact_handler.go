package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/astrofolio/backend/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles /api/contact. Method gating lives here rather than in mux
// method patterns so that non-POST requests get the JSON 405 body.
//
// Gate failures (shape, fields, email, rate limit) return 4xx. Everything
// downstream of the gates is best-effort: persistence or email failures are
// logged with their stage tag and the client still gets a 200.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		// Normally terminated by the CORS middleware; kept for direct use.
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	res, err := h.contactService.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email address")
		case errors.Is(err, service.ErrRateLimited):
			writeError(w, http.StatusTooManyRequests, "Too many messages. Please wait a few minutes.")
		default:
			slog.Error("contact submit failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return
	}

	if failures := res.Failures(); len(failures) > 0 {
		slog.Error("contact pipeline partial failure",
			"submission_id", res.Submission.ID,
			"failures", strings.Join(failures, "; "),
		)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Message sent!"})
}
