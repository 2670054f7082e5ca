// Package export renders finalized record sets. Rendering is purely a
// function of the record shape; nothing here reaches back into the sources.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// WriteText writes one human-readable line per game, in the order given.
func WriteText(w io.Writer, records []models.GameRecord) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%-10s | %s %s @ %s %s | %s (id=%s)\n",
			r.Date,
			r.AwayTeam, models.FormatScore(r.AwayScore),
			r.HomeTeam, models.FormatScore(r.HomeScore),
			r.Status, r.ID)
		if err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []models.GameRecord) error {
	if records == nil {
		records = []models.GameRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

var csvHeader = []string{"game_id", "date", "status", "away_team", "away_score", "home_team", "home_score"}

// WriteCSV writes the records as CSV with a header row. Absent scores
// become empty cells, not zeros.
func WriteCSV(w io.Writer, records []models.GameRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Date,
			r.Status,
			r.AwayTeam,
			csvScore(r.AwayScore),
			r.HomeTeam,
			csvScore(r.HomeScore),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func csvScore(s *int) string {
	if s == nil {
		return ""
	}
	return strconv.Itoa(*s)
}
