package checker

import (
	"context"

	"github.com/monasquad/keepalive/internal/domain"
)

// Checker probes a remote service once.
// A Checker never returns an error on its own: transport failures are
// reported through CheckResult.Err so the caller can log and drop them.
type Checker interface {
	Check(ctx context.Context) domain.CheckResult
}
