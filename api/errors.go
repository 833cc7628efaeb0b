package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/ingestion"
	"github.com/poiesic/cvfind/query"
	"github.com/poiesic/cvfind/search"
	"github.com/poiesic/cvfind/storage"
)

var (
	// ErrRepositoryRequired is returned when no record repository is given.
	ErrRepositoryRequired = errors.New("record repository is required")

	// ErrEngineRequired is returned when no query engine is given.
	ErrEngineRequired = errors.New("query engine is required")

	// ErrInvalidRequest indicates a request body that could not be decoded or failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUploadUnavailable is returned when the server has no ingestion pipeline.
	ErrUploadUnavailable = errors.New("upload is not configured")
)

// statusFor maps an error onto an HTTP status and a short error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, search.ErrEmptyQuery),
		errors.Is(err, query.ErrEmptyQuery),
		errors.Is(err, core.ErrInvalidRecord),
		errors.Is(err, core.ErrMalformedData),
		errors.Is(err, ai.ErrUnsupportedFormat),
		errors.Is(err, ingestion.ErrEmptyDocument):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict, "conflict"
	case errors.Is(err, ErrUploadUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorJSON(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeErrorJSON(w, status, code, err.Error())
}
