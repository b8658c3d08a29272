package keys

import (
	"sort"
	"strings"
)

func normalize(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), " ", "_"))
}

// MatchupKey produces a canonical key for an ordered pair of character IDs.
// The order matters because type effectiveness is directional.
func MatchupKey(a, b string) string {
	return normalize(a) + ":" + normalize(b)
}

// RosterKey produces a canonical key for a set of character IDs.
// Behavior: trims IDs, lower-cases, replaces spaces with underscores,
// drops empties, sorts the parts and joins with a comma.
func RosterKey(ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		s := normalize(id)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
