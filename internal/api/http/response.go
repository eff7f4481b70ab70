package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
)

const (
	noticeLoadFailed   = "Failed to load data"
	errorSaveFailed    = "Could not reach the database, please try again"
	errorNotFound      = "Not found"
	errorInternal      = "Internal server error"
	maxRequestBodySize = 1 << 20
)

// envelope is the body of every JSON response.
type envelope struct {
	Data   interface{} `json:"data"`
	Error  string      `json:"error,omitempty"`
	Field  string      `json:"field,omitempty"`
	Notice string      `json:"notice,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Data: data})
}

// writeError maps a service error onto a status code. Store failures on
// writes become 503 so the caller can retry.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, envelope{Error: ve.Message, Field: ve.Field})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{Error: errorNotFound})
	case domain.IsDataFetch(err):
		logger.Error("Store unavailable", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, envelope{Error: errorSaveFailed})
	default:
		logger.Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Error: errorInternal})
	}
}

// writeRead answers a GET. When the store could not be reached the caller's
// zero-value payload is returned with a notice instead of an error status.
func writeRead(w http.ResponseWriter, data interface{}, err error, empty interface{}) {
	if err == nil {
		writeData(w, http.StatusOK, data)
		return
	}
	if domain.IsDataFetch(err) {
		logger.Warn("Serving empty payload after store failure", "error", err)
		writeJSON(w, http.StatusOK, envelope{Data: empty, Notice: noticeLoadFailed})
		return
	}
	writeError(w, err)
}

func readJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("", fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}
