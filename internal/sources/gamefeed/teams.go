package gamefeed

import "strings"

// TeamsFromGameURL extracts best-effort team names from a game URL slug of
// the form ".../arizona-cardinals-vs-baltimore-ravens-2025113001".
//
// The mapping has known upstream reliability defects: the slug is sometimes
// missing, truncated, or left over from a rescheduled matchup. Results are
// therefore unverified display hints only. ok=false means no usable slug,
// never a guess. Accuracy-sensitive callers must source names from the
// scoreboard adapter instead.
func TeamsFromGameURL(gameURL string) (away, home string, ok bool) {
	if gameURL == "" {
		return "", "", false
	}

	slug := gameURL
	if i := strings.IndexByte(slug, '?'); i >= 0 {
		slug = slug[:i]
	}
	slug = strings.TrimSuffix(slug, "/")
	if i := strings.LastIndexByte(slug, '/'); i >= 0 {
		slug = slug[i+1:]
	}
	slug = strings.TrimSuffix(slug, ".html")

	awaySlug, homeSlug, found := strings.Cut(slug, "-vs-")
	if !found || awaySlug == "" || homeSlug == "" {
		return "", "", false
	}

	// The home side carries the game ID as a trailing suffix.
	if i := strings.LastIndexByte(homeSlug, '-'); i >= 0 && isDigits(homeSlug[i+1:]) {
		homeSlug = homeSlug[:i]
	}
	if homeSlug == "" || isDigits(homeSlug) {
		return "", "", false
	}

	return titleWords(awaySlug), titleWords(homeSlug), true
}

func titleWords(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
