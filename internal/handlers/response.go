package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
)

// Fixed messages of the error responses.
const (
	msgUserNotFound        = "User not found"
	msgInternalServerError = "Internal Server Error"
)

// ErrorResponse is returned for 404 and 500
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: User not found
	Detail string `json:"detail"`
}

// ValidationError describes one rejected input value
// swagger:model ValidationError
type ValidationError struct {
	// Location of the value, e.g. ["body", "email"] or ["path", "user_id"]
	Loc []string `json:"loc"`

	// Human readable message
	// default: Invalid email format
	Msg string `json:"msg"`

	// Rule that failed
	// default: email
	Type string `json:"type"`
}

// ValidationErrorResponse is returned with status 422
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Detail []ValidationError `json:"detail"`
}

// MessageResponse is returned by the root probe
// swagger:model MessageResponse
type MessageResponse struct {
	// default: root
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: msgUserNotFound})
}

func writeValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: errs})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: msgInternalServerError})
}
