package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and
// validates its tags. Unknown fields are rejected.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
//	var req GenerateLoadoutRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Generate loadout"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it
// is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}
