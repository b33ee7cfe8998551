package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/monasquad/keepalive/internal/domain"
)

// HTTPChecker issues a bare GET against a fixed URL.
// No headers, no body, no retry. A zero timeout leaves the request
// unbounded except by the caller's context.
type HTTPChecker struct {
	url        string
	httpClient *http.Client
}

func NewHTTPChecker(url string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Check performs the GET. Any response, whatever its status, is a success;
// only a failure to obtain a response sets Err.
func (c *HTTPChecker) Check(ctx context.Context) domain.CheckResult {
	start := time.Now()
	res := domain.CheckResult{URL: c.url, StartedAt: start}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		res.Err = fmt.Errorf("create request: %w", err)
		return res
	}

	resp, err := c.httpClient.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("send request: %w", err)
		return res
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused by the next tick.
	_, _ = io.Copy(io.Discard, resp.Body)

	res.StatusCode = resp.StatusCode
	return res
}

// compile-time check that HTTPChecker implements Checker
var _ Checker = (*HTTPChecker)(nil)
