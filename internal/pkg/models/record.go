package models

import (
	"fmt"
	"strings"
	"time"
)

// GameRecord holds the identifying, scheduling and scoring data for one
// game. It is the unit both source adapters produce and the reconciler
// merges.
//
// A nil score means "not yet posted", which is different from zero: a game
// that has started can legitimately stand at 0.
type GameRecord struct {
	ID        string `json:"game_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	AwayTeam  string `json:"away_team"`
	AwayScore *int   `json:"away_score"`
	HomeTeam  string `json:"home_team"`
	HomeScore *int   `json:"home_score"`
}

// kickoffLayout is the 8-digit date prefix embedded in game IDs,
// e.g. "2025113001" -> 2025-11-30, sequence 01.
const kickoffLayout = "20060102"

// KickoffFromID parses the YYYYMMDD prefix of a game ID. The second return
// value is false when the ID is too short or the prefix is not a calendar
// date; such records sort to the earliest possible instant.
func KickoffFromID(id string) (time.Time, bool) {
	if len(id) < len(kickoffLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(kickoffLayout, id[:len(kickoffLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FilterByTeam returns the records where the query matches either team name,
// case-insensitively, as a substring.
func FilterByTeam(records []GameRecord, query string) []GameRecord {
	q := strings.ToLower(query)
	var out []GameRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.AwayTeam), q) ||
			strings.Contains(strings.ToLower(r.HomeTeam), q) {
			out = append(out, r)
		}
	}
	return out
}

// Score returns a pointer to v, for building records in one expression.
func Score(v int) *int {
	return &v
}

// FormatScore renders a score for display, using "--" for a score that has
// not been posted yet.
func FormatScore(s *int) string {
	if s == nil {
		return "--"
	}
	return fmt.Sprintf("%d", *s)
}
