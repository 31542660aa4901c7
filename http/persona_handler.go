package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"wellness-engine/logger"
	"wellness-engine/repository"
	"wellness-engine/service"
)

type PersonaHandler struct {
	service *service.RecommendationService
}

func NewPersonaHandler(service *service.RecommendationService) *PersonaHandler {
	return &PersonaHandler{service: service}
}

type assignPersonaRequest struct {
	UserID string `json:"user_id"`
}

func (h *PersonaHandler) AssignPersona(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input assignPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if input.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignPersonaToUser(input.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, assignment)
}

// writeServiceError maps the pipeline's sentinel errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrConsentNotGranted):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		logger.Error().Err(err).Msg("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeJSON encodes into a buffer first so a marshaling failure never
// writes a partial 200 response.
func writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn().Err(err).Msg("error writing response")
	}
}
