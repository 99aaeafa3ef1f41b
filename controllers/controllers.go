package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"rinkside_server/services"
)

// Meta rides alongside response data (counts, timestamps).
type Meta map[string]interface{}

type apiError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// envelope is the one response shape every endpoint uses.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    Meta        `json:"meta,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

func respond(w http.ResponseWriter, status int, data interface{}, meta Meta) {
	if meta == nil {
		meta = Meta{}
	}
	meta["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: status < http.StatusBadRequest, Data: data, Meta: meta}); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondList(w http.ResponseWriter, docs []services.Document) {
	respond(w, http.StatusOK, docs, Meta{"count": len(docs)})
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, not found 404, conflict 409, announcer disabled and
// connection-looking store failures 503, everything else 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	apiErr := apiError{Code: "internal_error", Message: "an unexpected error occurred"}

	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		apiErr = apiError{Code: "validation_failed", Message: validationErr.Error(), Details: validationErr.Errors}
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		apiErr = apiError{Code: "not_found", Message: err.Error()}
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
		apiErr = apiError{Code: "conflict", Message: err.Error()}
	case errors.Is(err, services.ErrAnnouncerDisabled):
		status = http.StatusServiceUnavailable
		apiErr = apiError{Code: "announcer_disabled", Message: err.Error()}
	case services.IsConnectionError(err):
		status = http.StatusServiceUnavailable
		apiErr = apiError{Code: "store_unavailable", Message: "the database is unreachable"}
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(envelope{Success: false, Error: &apiErr}); encErr != nil {
		log.Error().Err(encErr).Msg("failed to encode error response")
	}
}

func respondBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: &apiError{Code: "bad_request", Message: message}})
}

// decodeDocument reads a JSON object body into the schemaless document
// shape the façade validates.
func decodeDocument(r *http.Request) (services.Document, error) {
	var doc services.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
