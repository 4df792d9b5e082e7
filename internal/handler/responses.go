package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse wraps a list payload with its size
type DataResponse struct {
	Count int `json:"count"`
	Data  any `json:"data"`
}

// respondJSON encodes payload into a pooled buffer first so an encoding
// failure still yields a clean 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it to a status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, opName), "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage converts service errors to HTTP statuses.
// Lookup and input errors carry their own message, which names the bad id
// and nearby suggestions; anything else is reported generically.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrContainerNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrEquipmentNotFound),
		errors.Is(err, domain.ErrDamageTypeNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrOverloaded):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrActorLocked):
		return http.StatusConflict, ErrMsgActorBusyError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
