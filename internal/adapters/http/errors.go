package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	api "contactrouter/internal/api"
	"contactrouter/internal/domain"
)

// statusFor maps a domain error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders the failure envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Success: false, Error: msg})
}

// responseError handles errors returned by strict handlers.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, statusFor(err), err.Error())
}

// requestError handles parameter binding and body decoding failures.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

func notFound(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == BasePath || strings.HasPrefix(r.URL.Path, BasePath+"/") {
		writeError(w, http.StatusNotFound, "API endpoint not found")
		return
	}
	writeError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
