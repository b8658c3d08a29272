package keys

import "testing"

func TestMatchupKeyIsDirectional(t *testing.T) {
	if got := MatchupKey(" GPT-4 ", "claude"); got != "gpt-4:claude" {
		t.Fatalf("unexpected key %q", got)
	}
	if MatchupKey("a", "b") == MatchupKey("b", "a") {
		t.Fatalf("matchup keys must depend on order")
	}
}

func TestRosterKey(t *testing.T) {
	got := RosterKey([]string{"llama", " Grok ", "", "claude"})
	if got != "claude,grok,llama" {
		t.Fatalf("unexpected roster key %q", got)
	}
}
