package domain

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// CheckResult is the outcome of a single health-check tick.
// It lives only long enough to be logged, counted, and remembered as the
// most recent result.
type CheckResult struct {
	URL          string
	StatusCode   int
	Err          error
	StartedAt    time.Time
	Duration     time.Duration
	ScheduledFor time.Time
}

// Succeeded reports whether the target answered at all.
// Any resolved response counts, including 4xx and 5xx.
func (r CheckResult) Succeeded() bool {
	return r.Err == nil
}

func (r CheckResult) Outcome() string {
	if r.Succeeded() {
		return OutcomeSuccess
	}
	return OutcomeError
}
