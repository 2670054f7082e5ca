// Package gamefeed reads the gamescores JSON feed. The feed updates scores
// and statuses faster than the rendered page, but it carries no trustworthy
// team names: its only name signal is a best-effort URL slug (see
// TeamsFromGameURL). Callers that care about name accuracy must take names
// from the scoreboard source and use this one for scores only.
package gamefeed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// ErrUnrecognizedPayload reports that the feed's top-level shape was
// neither an object with a game list nor a bare list. That signals an
// upstream format change the operator must know about.
var ErrUnrecognizedPayload = errors.New("gamefeed: unrecognized payload shape")

type envelope struct {
	Games []Entry `json:"games"`
}

// DecodePayload parses the feed payload into typed entries. Both published
// shapes are accepted: {"games": [...]} and a bare [...]. Anything else is
// rejected explicitly with no records.
func DecodePayload(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrUnrecognizedPayload
	}

	switch trimmed[0] {
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedPayload, err)
		}
		if env.Games == nil {
			return nil, fmt.Errorf("%w: object without games list", ErrUnrecognizedPayload)
		}
		return env.Games, nil
	case '[':
		var entries []Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedPayload, err)
		}
		return entries, nil
	default:
		return nil, ErrUnrecognizedPayload
	}
}

// ToRecord converts a feed entry to a game record.
//
// The display date is derived from the identifier's YYYYMMDD prefix and
// rendered as weekday plus month/day ("Sun 11/30"); when the prefix is not
// a calendar date the raw prefix is kept as-is. Team names, when a usable
// slug exists, are unverified; the upstream slug is known to be stale or
// wrong for some games.
func ToRecord(e Entry) models.GameRecord {
	id := string(e.GameID)
	rec := models.GameRecord{
		ID:        id,
		Date:      displayDate(id),
		Status:    e.GameStatus,
		AwayScore: e.ScoreV.Value,
		HomeScore: e.ScoreH.Value,
	}
	if away, home, ok := TeamsFromGameURL(e.GameURL); ok {
		rec.AwayTeam = away
		rec.HomeTeam = home
	}
	return rec
}

func displayDate(id string) string {
	if t, ok := models.KickoffFromID(id); ok {
		return fmt.Sprintf("%s %d/%d", t.Format("Mon"), int(t.Month()), t.Day())
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
