// Package classify maps free-text game status strings to a coarse game
// state. The mapping is deterministic, case-insensitive and tolerant of
// surrounding whitespace; it drives presentation ordering only and never
// inspects scores.
package classify

import "strings"

// State is the derived category of a game's status text.
type State string

const (
	StateLive     State = "live"
	StateUpcoming State = "upcoming"
	StateEnded    State = "ended"
	StateUnknown  State = "unknown"
)

// placeholders that mark a game as scheduled rather than in progress.
var upcomingPlaceholders = map[string]bool{
	"POSTPONED": true,
	"TBA":       true,
}

// Classify derives the game state from its status text.
//
// Blank status means the site has not posted anything yet, i.e. upcoming.
// "FINAL" (with an optional overtime qualifier, "FINAL OT") means ended.
// A kickoff time ("8:15 PM") or a scheduling placeholder means upcoming.
// Everything else (quarter markers, "HALFTIME", "OT" in progress) is live.
func Classify(status string) State {
	s := strings.ToUpper(strings.TrimSpace(status))
	if s == "" {
		return StateUpcoming
	}
	if strings.HasPrefix(s, "FINAL") {
		return StateEnded
	}
	if strings.Contains(s, "AM") || strings.Contains(s, "PM") {
		return StateUpcoming
	}
	if upcomingPlaceholders[s] {
		return StateUpcoming
	}
	return StateLive
}

// Rank returns the presentation rank of a state: live games first, then
// upcoming, then ended. Unrecognized states sort last.
func Rank(s State) int {
	switch s {
	case StateLive:
		return 0
	case StateUpcoming:
		return 1
	case StateEnded:
		return 2
	default:
		return 3
	}
}
