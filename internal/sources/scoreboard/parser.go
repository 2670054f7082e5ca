package scoreboard

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// ErrScoreboardNotFound reports that the live-scores container is missing
// from the fetched page. That usually means a site layout change (or an
// interstitial block page) and is surfaced rather than treated as an empty
// scoreboard.
var ErrScoreboardNotFound = errors.New("scoreboard: live scores container not found on page")

const (
	liveScoresID   = "divLiveScores"
	gameTableClass = "scoreboard_hp_tbl"
	statusIDPrefix = "gstatus_"
)

// ParseDocument extracts game records from a parsed scoreboard page, in
// document order.
//
// Each per-game block must carry a header row (date, status, game ID) and
// exactly two participant rows, away first. Blocks that deviate from that
// shape are skipped silently: one malformed block must not abort the batch.
func ParseDocument(doc *html.Node) ([]models.GameRecord, error) {
	liveDiv := findByID(doc, liveScoresID)
	if liveDiv == nil {
		return nil, ErrScoreboardNotFound
	}

	var games []models.GameRecord
	for child := liveDiv.FirstChild; child != nil; child = child.NextSibling {
		if !isElement(child, "div") {
			continue
		}
		if rec, ok := parseGameBlock(child); ok {
			games = append(games, rec)
		}
	}
	return games, nil
}

// parseGameBlock reads one per-game container. ok is false when the block
// does not have the expected shape.
func parseGameBlock(block *html.Node) (models.GameRecord, bool) {
	table := findFirst(block, func(n *html.Node) bool {
		return isElement(n, "table") && hasClass(n, gameTableClass)
	})
	if table == nil {
		return models.GameRecord{}, false
	}

	header := findFirst(table, func(n *html.Node) bool {
		return isElement(n, "tr") && hasClass(n, "header")
	})
	if header == nil {
		return models.GameRecord{}, false
	}

	var rec models.GameRecord
	if dateCell := findFirst(header, cellWithClass("left")); dateCell != nil {
		rec.Date = nodeText(dateCell)
	}
	if statusCell := findFirst(header, cellWithClass("center")); statusCell != nil {
		rec.Status = nodeText(statusCell)
		if id := attrValue(statusCell, "id"); strings.HasPrefix(id, statusIDPrefix) {
			rec.ID = id[len(statusIDPrefix):]
		}
	}

	rows := participantRows(table)
	if len(rows) != 2 {
		return models.GameRecord{}, false
	}

	awayTeam, awayScore, ok := parseTeamRow(rows[0])
	if !ok {
		return models.GameRecord{}, false
	}
	homeTeam, homeScore, ok := parseTeamRow(rows[1])
	if !ok {
		return models.GameRecord{}, false
	}

	rec.AwayTeam, rec.AwayScore = awayTeam, awayScore
	rec.HomeTeam, rec.HomeScore = homeTeam, homeScore
	return rec, true
}

// participantRows returns the tr.rowall rows of the table. They are matched
// anywhere under the table rather than as direct tbody children because the
// html5 parser regroups stray rows into implied tbody elements.
func participantRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	walk(table, func(n *html.Node) {
		if isElement(n, "tr") && hasClass(n, "rowall") {
			rows = append(rows, n)
		}
	})
	return rows
}

// parseTeamRow reads a participant row: first cell is the team name, second
// is the score token. A non-integer score token (placeholder dash, blank)
// means the score is not posted yet, not an error.
func parseTeamRow(row *html.Node) (string, *int, bool) {
	var cells []*html.Node
	walk(row, func(n *html.Node) {
		if isElement(n, "td") {
			cells = append(cells, n)
		}
	})
	if len(cells) < 2 {
		return "", nil, false
	}

	name := nodeText(cells[0])
	var score *int
	if v, err := strconv.Atoi(nodeText(cells[1])); err == nil {
		score = &v
	}
	return name, score, true
}

func cellWithClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return isElement(n, "td") && hasClass(n, class)
	}
}
