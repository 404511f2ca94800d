package store

import (
	"context"
	"fmt"
	"time"

	"github.com/askhat/gostore/internal/metrics"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	maxWriteAttempts = 3
	writeBackoffBase = 200 * time.Millisecond
)

// writeWithRetry performs the single-shot write, retrying transient
// failures with exponential backoff (200ms, 400ms). The terminal error
// names the attempt count and wraps the last underlying cause.
func (s *Service) writeWithRetry(ctx context.Context, key string, content []byte, contentType string, metadata map[string]string) error {
	attempt := 0
	var lastErr error

	backoff := retry.WithMaxRetries(maxWriteAttempts-1, retry.NewExponential(writeBackoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := s.store.Write(ctx, key, content, contentType, metadata); err != nil {
			lastErr = err
			metrics.WriteRetriesTotal.Inc()
			s.log.Warn("object write attempt failed",
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		if lastErr == nil || lastErr.Error() == "" {
			return fmt.Errorf("write object %q: unknown error after %d attempts", key, maxWriteAttempts)
		}
		return fmt.Errorf("write object %q failed after %d attempts: %w", key, maxWriteAttempts, lastErr)
	}

	metrics.UploadsTotal.Inc()
	return nil
}
