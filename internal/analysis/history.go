package analysis

import (
	"sync"
	"time"
)

// RunMetric records one completed analysis for the recent-history view.
type RunMetric struct {
	Timestamp  time.Time `json:"timestamp"`
	Model      string    `json:"model"`
	Attempts   int       `json:"attempts"`
	DurationMS int64     `json:"duration_ms"`
	Confidence float64   `json:"confidence"`
	Fallback   bool      `json:"fallback"`
}

// History is a bounded ring buffer of recent run metrics. It is owned by
// whoever constructs the service and passed in explicitly; there is no
// process-wide instance. Safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	entries []RunMetric
	next    int
	full    bool
}

// NewHistory creates a history buffer holding at most capacity entries.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{entries: make([]RunMetric, capacity)}
}

// Add records a run, evicting the oldest entry once full.
func (h *History) Add(m RunMetric) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.next] = m
	h.next = (h.next + 1) % len(h.entries)
	if h.next == 0 {
		h.full = true
	}
}

// Recent returns the stored metrics, newest first.
func (h *History) Recent() []RunMetric {
	h.mu.RLock()
	defer h.mu.RUnlock()

	size := h.next
	if h.full {
		size = len(h.entries)
	}
	out := make([]RunMetric, 0, size)
	for i := 1; i <= size; i++ {
		idx := (h.next - i + len(h.entries)) % len(h.entries)
		out = append(out, h.entries[idx])
	}
	return out
}

// Len reports how many metrics are stored.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.full {
		return len(h.entries)
	}
	return h.next
}
