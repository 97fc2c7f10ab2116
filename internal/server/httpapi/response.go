package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/logging"
)

const (
	msgUserNotFound   = "User not found"
	msgInternal       = "Internal server error"
	msgNotFound       = "Not found"
	msgNotAllowed     = "Method not allowed"
	msgMalformedBody  = "Malformed request body"
	msgTooManyRequest = "Too many requests, please try again later."
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service error to its HTTP status:
// validation 400, missing user 404, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	default:
		logger.Error(r.Context(), "request failed", "request_id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
