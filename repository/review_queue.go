package repository

import (
	"sync"

	"wellness-engine/domain"
)

// ReviewQueueRepository receives every decision trace for operator review.
// Enqueue failures are logged by callers, never surfaced to end users.
type ReviewQueueRepository interface {
	Enqueue(trace domain.DecisionTrace) error
	List() ([]domain.DecisionTrace, error)
}

// ReviewQueueMemory is an append-only in-memory review queue.
type ReviewQueueMemory struct {
	mu     sync.RWMutex
	traces []domain.DecisionTrace
}

func NewReviewQueueMemory() *ReviewQueueMemory {
	return &ReviewQueueMemory{
		traces: []domain.DecisionTrace{},
	}
}

func (r *ReviewQueueMemory) Enqueue(trace domain.DecisionTrace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.traces = append(r.traces, trace)
	return nil
}

func (r *ReviewQueueMemory) List() ([]domain.DecisionTrace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.DecisionTrace{}, r.traces...), nil
}
