package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// Error codes carried in the "code" field of failed responses.
const (
	codeActiveSessionConflict = "active_session_conflict"
	codeNoActiveSession       = "no_active_session"
	codeValidation            = "validation_error"
	codeInvalidRange          = "invalid_range"
	codeNotFound              = "not_found"
	codeEntryRunning          = "entry_running"
	codeUnauthorized          = "unauthorized"
	codeForbidden             = "forbidden"
	codeStoreUnavailable      = "store_unavailable"
	codeInternal              = "internal"
)

type errorResponse struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error"`
	Code          string         `json:"code"`
	Fields        []fieldError   `json:"fields,omitempty"`
	ActiveSession *entryResponse `json:"active_session,omitempty"`
	Retryable     bool           `json:"retryable,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// errorStatus maps a service error to its HTTP status and response body.
// conv renders the entry of an active session conflict.
func errorStatus(err error, conv func(*domain.TimeEntry) entryResponse) (int, errorResponse) {
	var (
		conflict *domain.ActiveSessionConflictError
		ve       *domain.ValidationError
	)

	switch {
	case errors.As(err, &conflict):
		resp := errorResponse{Error: "an active session already exists", Code: codeActiveSessionConflict}
		if conflict.Existing != nil {
			e := conv(conflict.Existing)
			resp.ActiveSession = &e
		}
		return http.StatusConflict, resp
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusConflict, errorResponse{Error: "no active session", Code: codeNoActiveSession}
	case errors.As(err, &ve):
		resp := errorResponse{Error: ve.Error(), Code: codeValidation}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError(fe))
		}
		return http.StatusBadRequest, resp
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeValidation}
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidRange.Error(), Code: codeInvalidRange}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "not found", Code: codeNotFound}
	case errors.Is(err, domain.ErrEntryRunning):
		return http.StatusConflict, errorResponse{Error: domain.ErrEntryRunning.Error(), Code: codeEntryRunning}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Error: "unauthorized", Code: codeUnauthorized}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "forbidden", Code: codeForbidden}
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Error: "store unavailable, retry later", Code: codeStoreUnavailable, Retryable: true}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: codeInternal}
	}
}

// logLevelFor returns the level a failed request is logged at.
func logLevelFor(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelDebug
}
