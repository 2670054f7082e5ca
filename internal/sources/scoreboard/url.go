package scoreboard

import (
	"fmt"
	"strings"
)

// Query selects which scoreboard page to fetch. The zero value (or
// UseHomepage) selects the homepage, which carries the current week's
// live scoreboard.
type Query struct {
	League      string
	Year        int
	Gametype    string // "reg", "pre" or "post"
	Week        int
	UseHomepage bool
}

// BuildScoresURL builds the scoreboard page URL for a query. Year and Week
// must both be set to address an archive page; otherwise the homepage is
// used.
func BuildScoresURL(baseURL string, q Query) string {
	if q.UseHomepage || q.Year == 0 || q.Week == 0 {
		return baseURL
	}

	league := strings.ToUpper(q.League)
	if league == "" {
		league = "NFL"
	}
	gametype := q.Gametype
	if gametype == "" {
		gametype = "reg"
	}

	return fmt.Sprintf("%s/scores/index.html?lg=%s&yr=%d&type=%s&wk=%d",
		strings.TrimSuffix(baseURL, "/"), league, q.Year, gametype, q.Week)
}
