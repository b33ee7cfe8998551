package repository_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monasquad/keepalive/internal/domain"
	"github.com/monasquad/keepalive/internal/repository"
)

var base = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

func TestResultStore_Empty(t *testing.T) {
	s := repository.NewResultStore()

	_, ok := s.Last()
	assert.False(t, ok)
}

func TestResultStore_SaveAndLast(t *testing.T) {
	s := repository.NewResultStore()

	s.Save(domain.CheckResult{StatusCode: http.StatusOK, ScheduledFor: base})
	s.Save(domain.CheckResult{StatusCode: http.StatusBadGateway, ScheduledFor: base.Add(5 * time.Minute)})

	got, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, got.StatusCode)
}

// TestResultStore_LateEarlierTickIgnored verifies a slow check from an
// earlier tick does not overwrite the result of a later tick.
func TestResultStore_LateEarlierTickIgnored(t *testing.T) {
	s := repository.NewResultStore()

	s.Save(domain.CheckResult{StatusCode: http.StatusOK, ScheduledFor: base.Add(5 * time.Minute)})
	s.Save(domain.CheckResult{StatusCode: http.StatusGatewayTimeout, ScheduledFor: base})

	got, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, got.StatusCode)
}

func TestResultStore_ConcurrentAccess(t *testing.T) {
	s := repository.NewResultStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Save(domain.CheckResult{StatusCode: http.StatusOK, ScheduledFor: base.Add(time.Duration(i) * time.Minute)})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.Last()
		}()
	}
	wg.Wait()

	got, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, base.Add(49*time.Minute), got.ScheduledFor)
}
