package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventlane/internal/domain"
)

// Reasons attached to error responses, one per error class.
const (
	ReasonNotFound      = "The required object was not found."
	ReasonBadRequest    = "Incorrectly made request."
	ReasonParticipation = "Restriction of participation in the event."
	ReasonEditing       = "For the requested operation the conditions are not met."
	ReasonState         = "Restriction of editing in the event."
	ReasonConflict      = "There are events associated with the category."
	ReasonIntegrity     = "Integrity constraint has been violated."
	ReasonInternal      = "Internal server error."
)

// ApiError is the error body returned by every endpoint.
// swagger:model ApiError
type ApiError struct {
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes body. A nil body writes the status line only.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// WriteApiError writes an ApiError with the given HTTP status, reason, and
// message. The status field carries the textual status name.
func WriteApiError(w http.ResponseWriter, statusCode int, reason, message string) {
	WriteJSON(w, statusCode, ApiError{
		Status:    statusName(statusCode),
		Reason:    reason,
		Message:   message,
		Timestamp: domain.FormatDateTime(time.Now()),
	})
}

// WriteError maps a service error to its HTTP status and reason and writes
// the ApiError body. Unclassified errors become 500 and are logged.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		notFound      *domain.NotFoundError
		badRequest    *domain.BadRequestError
		participation *domain.ParticipationError
		editing       *domain.EditingError
		state         *domain.StateError
		conflict      *domain.ConflictError
		integrity     *domain.IntegrityError
	)
	switch {
	case errors.As(err, &notFound):
		WriteApiError(w, http.StatusNotFound, ReasonNotFound, notFound.Message)
	case errors.As(err, &badRequest):
		WriteApiError(w, http.StatusBadRequest, ReasonBadRequest, badRequest.Message)
	case errors.As(err, &participation):
		WriteApiError(w, http.StatusConflict, ReasonParticipation, participation.Message)
	case errors.As(err, &editing):
		WriteApiError(w, http.StatusConflict, ReasonEditing, editing.Message)
	case errors.As(err, &state):
		WriteApiError(w, http.StatusConflict, ReasonState, state.Message)
	case errors.As(err, &conflict):
		WriteApiError(w, http.StatusConflict, ReasonConflict, conflict.Message)
	case errors.As(err, &integrity):
		WriteApiError(w, http.StatusConflict, ReasonIntegrity, integrity.Message)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteApiError(w, http.StatusInternalServerError, ReasonInternal, err.Error())
	}
}

func statusName(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
