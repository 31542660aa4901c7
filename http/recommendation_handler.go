package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"wellness-engine/service"
)

type RecommendationHandler struct {
	service *service.RecommendationService
}

func NewRecommendationHandler(service *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

type recommendationsRequest struct {
	UserID       string `json:"user_id"`
	ForceRefresh bool   `json:"force_refresh"`
	EducationMin int    `json:"education_min"`
	EducationMax int    `json:"education_max"`
	OffersMax    int    `json:"offers_max"`
}

func (h *RecommendationHandler) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if input.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateRecommendations(input.UserID, service.RecommendationOptions{
		ForceRefresh: input.ForceRefresh,
		EducationMin: input.EducationMin,
		EducationMax: input.EducationMax,
		OffersMax:    input.OffersMax,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, result)
}
