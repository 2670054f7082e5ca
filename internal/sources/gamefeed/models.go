package gamefeed

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Entry is one game entry of the gamescores feed. The feed is loosely
// typed: identifiers arrive as strings or numbers, scores as strings,
// numbers or null, so the field types normalize on decode.
type Entry struct {
	GameID     FlexID    `json:"gameid"`
	GameStatus string    `json:"gamestatus"`
	ScoreV     FlexScore `json:"scorev"`
	ScoreH     FlexScore `json:"scoreh"`
	GameURL    string    `json:"gameurl"`
}

// FlexID canonicalizes a string-or-number identifier to its string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// FlexScore is a tolerantly-coerced score value. null, the empty string and
// the site's placeholder dash all mean "not posted yet"; so does anything
// else that is not an integer. A feed glitch must never abort the batch.
type FlexScore struct {
	Value *int
}

func (f *FlexScore) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	f.Value = nil
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	token := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		token = strings.TrimSpace(s)
	}
	if token == "" || token == "--" {
		return nil
	}
	if v, err := strconv.Atoi(token); err == nil && v >= 0 {
		f.Value = &v
	}
	return nil
}
