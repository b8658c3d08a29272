package session

import (
	"context"
	"time"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
)

// Reap drops every battle the expiry policy considers expired at now and
// returns how many were removed.
func (s *Store) Reap(now time.Time) int {
	s.mu.RLock()
	candidates := make(map[string]*entry, len(s.entries))
	for id, e := range s.entries {
		candidates[id] = e
	}
	s.mu.RUnlock()

	expired := make([]string, 0)
	for id, e := range candidates {
		e.mu.Lock()
		if s.policy.Expired(e.battle.Summary(), e.lastActivity, now) {
			expired = append(expired, id)
		}
		e.mu.Unlock()
	}
	if len(expired) == 0 {
		return 0
	}

	removed := 0
	s.mu.Lock()
	for _, id := range expired {
		// re-check under the write lock: a turn may have landed meanwhile
		e, ok := s.entries[id]
		if !ok {
			continue
		}
		e.mu.Lock()
		still := s.policy.Expired(e.battle.Summary(), e.lastActivity, now)
		e.mu.Unlock()
		if still {
			delete(s.entries, id)
			removed++
		}
	}
	s.mu.Unlock()
	return removed
}

// StartReaper runs Reap every interval until ctx is cancelled.
func (s *Store) StartReaper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Reap(s.now()); n > 0 {
					logging.Info("reaped expired battles", logging.Fields{constants.LogFieldCount: n})
				}
			}
		}
	}()
}
