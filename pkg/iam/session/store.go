package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
)

// FallbackStore writes sessions to the first usable backend of an ordered
// chain and reads them from whichever backend holds them.
type FallbackStore struct {
	backends []Backend
	ttl      time.Duration
	degraded atomic.Bool
}

// NewFallbackStore creates a store over backends, most durable first
func NewFallbackStore(ttl time.Duration, backends ...Backend) *FallbackStore {
	return &FallbackStore{
		backends: backends,
		ttl:      ttl,
	}
}

// Degraded is true when the last successful write landed on a volatile backend
func (s *FallbackStore) Degraded() bool {
	return s.degraded.Load()
}

// Save persists sess and verifies it by reading it back from the backend
// that accepted it. The returned flag reports degraded mode.
func (s *FallbackStore) Save(ctx context.Context, sess *AdminSession) (bool, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return false, ErrCorrupt(err)
	}
	key := Key(sess.SessionID)

	for _, b := range s.backends {
		if err := b.Check(ctx); err != nil {
			logx.Warnf("session backend %s unavailable: %v", b.Name(), err)
			continue
		}
		if err := b.Set(ctx, key, data, s.ttl); err != nil {
			logx.Warnf("session backend %s rejected write: %v", b.Name(), err)
			continue
		}

		stored, err := b.Get(ctx, key)
		if err != nil || !bytes.Equal(stored, data) {
			logx.Errorf("session read-back on %s failed: %v", b.Name(), err)
			_ = b.Remove(ctx, key)
			return false, ErrSessionStorage().
				WithDetail("backend", b.Name()).
				WithDetail("session_id", sess.SessionID.String())
		}

		degraded := isVolatile(b)
		s.degraded.Store(degraded)
		if degraded {
			logx.Warnf("session %s stored in %s; it will not survive a restart", sess.SessionID, b.Name())
		}
		return degraded, nil
	}

	return false, ErrSessionStorage().WithDetail("reason", "no session backend accepted the write")
}

// Load returns the session with id from the first backend that holds it
func (s *FallbackStore) Load(ctx context.Context, id kernel.SessionID) (*AdminSession, error) {
	key := Key(id)
	failures := 0

	for _, b := range s.backends {
		data, err := b.Get(ctx, key)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		}
		if err != nil {
			failures++
			logx.Debugf("session backend %s read failed: %v", b.Name(), err)
			continue
		}

		var sess AdminSession
		if err := json.Unmarshal(data, &sess); err != nil {
			return nil, ErrCorrupt(err).WithDetail("backend", b.Name())
		}
		return &sess, nil
	}

	if failures == len(s.backends) && failures > 0 {
		return nil, ErrSessionStorage().WithDetail("session_id", id.String())
	}
	return nil, ErrSessionNotFound().WithDetail("session_id", id.String())
}

// Delete removes id from every backend
func (s *FallbackStore) Delete(ctx context.Context, id kernel.SessionID) {
	key := Key(id)
	for _, b := range s.backends {
		if err := b.Remove(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
			logx.Warnf("session backend %s remove failed: %v", b.Name(), err)
		}
	}
}
