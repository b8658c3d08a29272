package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent requests for expensive, idempotent computations. Callers that
// ask for the same key while a computation is in flight share its result.

import "golang.org/x/sync/singleflight"

// TournamentGroup deduplicates tournament runs keyed by the round count and
// the canonical roster key (see keys.RosterKey).
var TournamentGroup singleflight.Group
