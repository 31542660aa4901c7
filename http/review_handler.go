package http

import (
	"net/http"

	"wellness-engine/repository"
	"wellness-engine/service"
)

// ReviewHandler exposes the operator surfaces: the decision-trace review
// queue and the bulk evaluation report.
type ReviewHandler struct {
	queue      repository.ReviewQueueRepository
	evaluation *service.EvaluationService
}

func NewReviewHandler(queue repository.ReviewQueueRepository, evaluation *service.EvaluationService) *ReviewHandler {
	return &ReviewHandler{queue: queue, evaluation: evaluation}
}

func (h *ReviewHandler) ListQueue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	traces, err := h.queue.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, traces)
}

func (h *ReviewHandler) EvaluationReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := h.evaluation.GenerateReport()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, report)
}
