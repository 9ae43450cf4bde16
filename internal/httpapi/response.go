package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail maps the error kind to a status code and writes the error
// envelope. Unclassified errors are logged as server faults.
func (s *Server) fail(w http.ResponseWriter, err error, msg string) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(msg, "err", err)
	}

	writeJSON(w, code, map[string]any{
		"success": false,
		"message": msg,
		"error":   err.Error(),
	})
}

// badRequest reports a request-shape problem detected before the
// repository is involved.
func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": msg,
	})
}

// statusForError is the single place error kinds become status codes.
func statusForError(err error) int {
	var (
		validationErr *domain.ValidationError
		invalidIDErr  *domain.InvalidIDError
	)

	switch {
	case errors.As(err, &invalidIDErr), errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSelfAccept):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNotFoundOrUnauthorized):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAccept):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
