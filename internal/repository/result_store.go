package repository

import (
	"sync"

	"github.com/monasquad/keepalive/internal/domain"
)

// ResultStore keeps the most recent health check result in memory.
// Nothing is persisted; a restart starts empty.
type ResultStore struct {
	mu   sync.RWMutex
	last *domain.CheckResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Save replaces the stored result unless r was scheduled before it.
// Ticks run concurrently, so a slow earlier check can finish after a
// later one; the later tick wins.
func (s *ResultStore) Save(r domain.CheckResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil && r.ScheduledFor.Before(s.last.ScheduledFor) {
		return
	}
	clone := r
	s.last = &clone
}

// Last returns the most recent result, or false if no check has completed yet.
func (s *ResultStore) Last() (domain.CheckResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return domain.CheckResult{}, false
	}
	return *s.last, true
}
