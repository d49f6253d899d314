package httputil

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// StatusFromError maps the error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidInput), errors.Is(err, errorvalues.ErrUnknownEventKind):
		return http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errorvalues.ErrUserNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, errorvalues.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError writes err with its mapped status. Details are shown only
// for client errors; server errors carry msg alone.
func WriteServiceError(w http.ResponseWriter, err error, msg string) int {
	code := StatusFromError(err)
	if code < http.StatusInternalServerError {
		WriteErrorResponse(w, code, msg, err)
		return code
	}
	WriteErrorResponse(w, code, msg, nil)
	return code
}
