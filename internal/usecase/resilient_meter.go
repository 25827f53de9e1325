package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strings"
	"time"

	"ia-service/internal/domain/repository"
)

// ResilientMeter retries transient usage-store failures with exponential
// backoff and caps every call with a timeout.
type ResilientMeter struct {
	inner      repository.UsageMeter
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration
}

func NewResilientMeter(inner repository.UsageMeter) *ResilientMeter {
	return &ResilientMeter{
		inner:      inner,
		maxRetries: 2, // 3 attempts total
		baseDelay:  100 * time.Millisecond,
		timeout:    3 * time.Second,
	}
}

func (r *ResilientMeter) Increment(ctx context.Context, caller, endpoint string) error {
	resCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		err := r.inner.Increment(resCtx, caller, endpoint)
		if err == nil {
			return nil
		}
		lastErr = err

		if !r.isRetryable(err) || attempt == r.maxRetries {
			break
		}

		select {
		case <-time.After(r.calculateBackoff(attempt)):
			continue
		case <-resCtx.Done():
			return resCtx.Err()
		}
	}
	return fmt.Errorf("usage increment failed: %w", lastErr)
}

// Usage is read-only and not retried; the caller sees failures directly.
func (r *ResilientMeter) Usage(ctx context.Context, caller string) (map[string]int64, error) {
	resCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.inner.Usage(resCtx, caller)
}

func (r *ResilientMeter) isRetryable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "loading") ||
		strings.Contains(msg, "tryagain")
}

func (r *ResilientMeter) calculateBackoff(attempt int) time.Duration {
	backoff := float64(r.baseDelay) * float64(int(1)<<attempt)
	jitter := (rand.Float64() * 0.2) * backoff // 20% jitter
	return time.Duration(backoff + jitter)
}
