// Package stores holds the client-side state containers that keep a local
// cache of server-authoritative entities. Each store mediates every mutation
// through the API client, records normalized failures, and exposes its state
// through snapshot queries so views can read it concurrently.
//
// Shared contract across stores:
//   - starting an action clears the store's last error and raises its
//     in-flight count; Busy() is true while any action is pending;
//   - a failing action stores the normalized message on LastError AND
//     returns the error, so callers can react either way;
//   - stores never suppress a failure silently, and never retry.
package stores

import (
	"errors"
	"sync"

	"github.com/aakcay5656/dropspot/internal/client/api"
)

// state carries the flags every store exposes. The in-flight count (rather
// than a plain boolean) keeps Busy accurate under overlapping actions.
type state struct {
	mu       sync.RWMutex
	inflight int
	lastErr  string
}

func (s *state) begin() {
	s.mu.Lock()
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *state) end() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *state) fail(msg string) {
	s.mu.Lock()
	s.inflight--
	s.lastErr = msg
	s.mu.Unlock()
}

// Busy reports whether any action on the store is still in flight.
func (s *state) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// LastError returns the normalized message of the most recent failure, or ""
// if the latest action started since then.
func (s *state) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// normalize maps an action error to the message stored on LastError:
// the server's detail verbatim when one exists, the per-action fallback
// otherwise (covers detail-less rejections and transport failures).
func normalize(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
