package proxy

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kodegen/mcp-stdio-gateway/internal/upstream"
)

// categoryHandle tracks one category's upstream connection and its place
// in the Connecting -> Ready -> Expired -> Reconnecting -> Ready|Failed
// state machine. Reads (the common case, one per call) take the read
// lock; only startup, markExpired and reconnect take the write lock.
type categoryHandle struct {
	category string
	url      string
	retry    upstream.RetryConfig

	mu     sync.RWMutex
	client *upstream.Client
	state  CategoryState
}

func newCategoryHandle(category, url string, retry upstream.RetryConfig) *categoryHandle {
	return &categoryHandle{category: category, url: url, retry: retry, state: StateConnecting}
}

// dial performs the initial connection attempt at startup. On success the
// handle becomes Ready; on exhausted retries it becomes Failed.
func (h *categoryHandle) dial(ctx context.Context, shutdown <-chan struct{}) error {
	client := upstream.New(h.category, h.url)
	err := upstream.ConnectWithRetry(ctx, client, h.retry, shutdown)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.state = StateFailed
		return err
	}
	h.client = client
	h.state = StateReady
	return nil
}

// snapshot returns the current client and state under a read lock.
func (h *categoryHandle) snapshot() (*upstream.Client, CategoryState) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.client, h.state
}

// markExpired flips Ready -> Expired after a 401. A no-op from any other
// state (a concurrent reconnect may have already moved past Ready).
func (h *categoryHandle) markExpired() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateReady {
		h.state = StateExpired
	}
}

// reconnect re-dials the category using the same retry policy as startup,
// publishing the new client under the write lock on success. The prior
// client, if any, is closed once no longer referenced by this handle.
func (h *categoryHandle) reconnect(ctx context.Context, shutdown <-chan struct{}) error {
	h.mu.Lock()
	h.state = StateReconnecting
	old := h.client
	h.mu.Unlock()

	log.Info().Str("category", h.category).Msg("reconnecting after session expiry")

	client := upstream.New(h.category, h.url)
	err := upstream.ConnectWithRetry(ctx, client, h.retry, shutdown)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.state = StateFailed
		log.Error().Str("category", h.category).Err(err).Msg("reconnect failed, category marked failed")
		return err
	}
	h.client = client
	h.state = StateReady
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// ready reports whether the category is currently serving calls, the
// condition list_tools uses to decide whether to include its tools.
func (h *categoryHandle) ready() bool {
	_, state := h.snapshot()
	return state == StateReady
}
