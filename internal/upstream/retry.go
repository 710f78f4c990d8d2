package upstream

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// RetryConfig controls ConnectWithRetry's backoff schedule.
type RetryConfig struct {
	// MaxAttempts is the maximum number of connection attempts, including
	// the first. A category that exhausts MaxAttempts is marked Failed.
	MaxAttempts int
	// InitialBackoff is the delay before the second attempt; it doubles
	// on each subsequent attempt, capped at MaxBackoff.
	InitialBackoff time.Duration
	// MaxBackoff caps the exponential growth of InitialBackoff.
	MaxBackoff time.Duration
	// AttemptTimeout bounds each individual connection attempt.
	AttemptTimeout time.Duration
}

// DefaultRetryConfig matches the original stdio gateway's defaults: a
// single attempt with a short initial backoff, overridable from CLI flags.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    1,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		AttemptTimeout: 30 * time.Second,
	}
}

// ConnectWithRetry dials c with exponential backoff: backoff starts at
// cfg.InitialBackoff and doubles after each failed attempt, capped at
// cfg.MaxBackoff, with 0-25% jitter added before each sleep to avoid a
// thundering herd across categories dialing the same host. Each attempt is
// bounded by cfg.AttemptTimeout and raced against shutdown: closing
// shutdown cancels an in-flight connection attempt exactly as it cancels a
// pending backoff sleep, rather than only taking effect between attempts.
func ConnectWithRetry(ctx context.Context, c *Client, cfg RetryConfig, shutdown <-chan struct{}) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	backoff := cfg.InitialBackoff

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		log.Debug().
			Str("category", c.Category()).
			Int("attempt", attempt).
			Int("max_attempts", cfg.MaxAttempts).
			Dur("timeout", cfg.AttemptTimeout).
			Msg("connecting to upstream category server")

		attemptCtx, cancel := context.WithTimeout(ctx, cfg.AttemptTimeout)
		attemptDone := make(chan struct{})
		go func() {
			select {
			case <-shutdown:
				cancel()
			case <-attemptDone:
			}
		}()
		err := c.Connect(attemptCtx)
		close(attemptDone)
		cancel()

		if err == nil {
			return nil
		}
		select {
		case <-shutdown:
			return fmt.Errorf("upstream: %q connection attempt cancelled during shutdown", c.Category())
		default:
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			break
		}

		jitterMax := backoff / 4
		if jitterMax < time.Millisecond {
			jitterMax = time.Millisecond
		}
		jitter := time.Duration(rand.Int63n(int64(jitterMax)))
		sleep := backoff + jitter

		log.Debug().
			Str("category", c.Category()).
			Int("attempt", attempt).
			Err(err).
			Dur("retry_in", sleep).
			Msg("connection attempt failed, retrying")

		timer := time.NewTimer(sleep)
		select {
		case <-timer.C:
		case <-shutdown:
			timer.Stop()
			return fmt.Errorf("upstream: %q connection retry cancelled during shutdown", c.Category())
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("upstream: %q connection retry cancelled: %w", c.Category(), ctx.Err())
		}

		backoff *= 2
		if backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}

	return fmt.Errorf("upstream: %q failed after %d attempt(s): %w", c.Category(), cfg.MaxAttempts, lastErr)
}
