package session

import (
	"time"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
)

// ExpiryPolicy decides when the reaper may drop a battle. lastActivity is
// the time of the most recent turn, or creation if there was none.
type ExpiryPolicy interface {
	Expired(s engine.Summary, lastActivity, now time.Time) bool
}

// TTLPolicy drops finished battles Finished after their last turn and
// active ones left idle for longer than Idle. A zero duration never expires.
type TTLPolicy struct {
	Finished time.Duration
	Idle     time.Duration
}

func (p TTLPolicy) Expired(s engine.Summary, lastActivity, now time.Time) bool {
	age := now.Sub(lastActivity)
	if s.Status == engine.BattleFinished {
		return p.Finished > 0 && age > p.Finished
	}
	return p.Idle > 0 && age > p.Idle
}

// NeverExpire keeps every battle for the life of the process.
type NeverExpire struct{}

func (NeverExpire) Expired(engine.Summary, time.Time, time.Time) bool { return false }
