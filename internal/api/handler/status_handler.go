package handler

import (
	"net/http"
	"time"

	"github.com/monasquad/keepalive/internal/repository"
)

// StatusHandler serves a JSON snapshot of the most recent health check.
// Raw Prometheus metrics are available at /metrics and are separate from
// this endpoint.
type StatusHandler struct {
	store    *repository.ResultStore
	target   string
	schedule string
}

func NewStatusHandler(store *repository.ResultStore, target, schedule string) *StatusHandler {
	return &StatusHandler{store: store, target: target, schedule: schedule}
}

type statusResponse struct {
	Target    string     `json:"target"`
	Schedule  string     `json:"schedule"`
	LastCheck *checkView `json:"last_check"`
}

type checkView struct {
	Outcome      string    `json:"outcome"`
	StatusCode   int       `json:"status_code,omitempty"`
	Error        string    `json:"error,omitempty"`
	ScheduledFor time.Time `json:"scheduled_for"`
	StartedAt    time.Time `json:"started_at"`
	LatencyMS    int64     `json:"latency_ms"`
}

// GetStatus handles GET /status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Target: h.target, Schedule: h.schedule}

	if res, ok := h.store.Last(); ok {
		view := &checkView{
			Outcome:      res.Outcome(),
			StatusCode:   res.StatusCode,
			ScheduledFor: res.ScheduledFor,
			StartedAt:    res.StartedAt,
			LatencyMS:    res.Duration.Milliseconds(),
		}
		if res.Err != nil {
			view.Error = res.Err.Error()
		}
		resp.LastCheck = view
	}

	respondJSON(w, http.StatusOK, resp)
}
