// Package gameorder imposes the presentation order on a record collection:
// live games first, then upcoming (soonest first), then ended (most recently
// finished first).
package gameorder

import (
	"sort"

	"github.com/ndanilov/scoreline/internal/pkg/classify"
	"github.com/ndanilov/scoreline/internal/pkg/models"
)

type sortKey struct {
	rank    int
	kickoff int64
	id      string
}

func keyFor(r models.GameRecord) sortKey {
	state := classify.Classify(r.Status)
	rank := classify.Rank(state)

	// Unparseable IDs map to the earliest instant so they sort first
	// within their group, ended or not.
	kickoff := int64(-1 << 62)
	if t, ok := models.KickoffFromID(r.ID); ok {
		kickoff = t.Unix()
		// For ended games the most recent final is the most
		// interesting, so the date component is negated.
		if state == classify.StateEnded {
			kickoff = -kickoff
		}
	}

	return sortKey{rank: rank, kickoff: kickoff, id: r.ID}
}

func (a sortKey) less(b sortKey) bool {
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	if a.kickoff != b.kickoff {
		return a.kickoff < b.kickoff
	}
	return a.id < b.id
}

// Sort orders records in place and returns the same slice.
func Sort(records []models.GameRecord) []models.GameRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return keyFor(records[i]).less(keyFor(records[j]))
	})
	return records
}
