package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dadrocktabs/api/internal/shared"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps an error to its status code and JSON body.
//
// Expected kinds (not found, bad input, unauthorized, upstream, in-flight
// sync) keep their message; anything else is logged server-side and answered
// with a generic 500 so internal detail never leaks.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound), errors.Is(err, shared.ErrChannelNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, shared.ErrInvalidInput),
		errors.Is(err, shared.ErrMissingArgument),
		errors.Is(err, shared.ErrMissingAPIKey):
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, shared.ErrUnauthorized):
		s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, shared.ErrDuplicate), errors.Is(err, shared.ErrSyncInProgress):
		s.writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, shared.ErrUpstream):
		s.writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
	default:
		s.logger.Error("unhandled error", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
	}
}

// decodeJSON reads a JSON request body into v, mapping malformed bodies to
// [shared.ErrInvalidInput].
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return shared.ErrInvalidInput
	}
	return nil
}
