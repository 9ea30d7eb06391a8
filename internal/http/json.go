package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/jobdesk/jobdesk-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination.
// Unknown fields are rejected so clients cannot smuggle unsupported or
// immutable fields (e.g. id) through a create or patch body.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteAppError(w, apperrors.Validation("invalid request body: "+err.Error()))
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// errorBody is the single error envelope shape every failure renders as.
type errorBody struct {
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
	Status   int      `json:"status"`
}

// WriteAppError translates an application error into the JSON error envelope.
// Only taxonomy messages reach the client; wrapped causes are never rendered.
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal("Internal server error")
	}

	status := statusForCode(appErr.Code)
	message := appErr.Message
	messages := appErr.Messages
	if status == http.StatusInternalServerError && appErr.Code == apperrors.ErrCodeInternal {
		message = "Internal server error"
		messages = nil
	}

	WriteJSON(w, status, map[string]errorBody{"error": {
		Message:  message,
		Messages: messages,
		Status:   status,
	}})
}

// statusForCode maps taxonomy codes onto HTTP statuses.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled, apperrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
