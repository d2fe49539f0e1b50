package account

import (
	"sync"

	"github.com/cjwaldeck/scu/pkg/assertion"
)

// CollectingHandler is the reference Handler: it retains every
// failure in memory. It is safe for concurrent use, so parallel
// tests may share one instance while each owns its own Tracker.
type CollectingHandler struct {
	mu       sync.Mutex
	failures []*assertion.Failure
}

// NewCollectingHandler creates an empty CollectingHandler.
func NewCollectingHandler() *CollectingHandler {
	return &CollectingHandler{}
}

// HandleFailure retains the failure record.
func (h *CollectingHandler) HandleFailure(f *assertion.Failure) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures = append(h.failures, f)
}

// Failures returns a copy of the retained failure records in
// arrival order.
func (h *CollectingHandler) Failures() []*assertion.Failure {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*assertion.Failure(nil), h.failures...)
}

// Len returns the number of retained failures.
func (h *CollectingHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.failures)
}

// Reset discards all retained failures.
func (h *CollectingHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures = nil
}
