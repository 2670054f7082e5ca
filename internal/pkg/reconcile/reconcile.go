// Package reconcile merges a feed-sourced update set onto a document-sourced
// base set. The base set is authoritative for team names, the update set for
// live score and status.
package reconcile

import "github.com/ndanilov/scoreline/internal/pkg/models"

// Merge applies update records onto base records, keyed by game ID, and
// returns the base slice. The caller must treat prior references to base as
// invalidated: the matching members are mutated in place.
//
// Update records whose ID has no base match are dropped: the feed carries
// no trustworthy team names, so a game unknown to the base set cannot be
// introduced mid-session. Records without an ID never participate.
//
// Status is overwritten unconditionally. Date is overwritten only when the
// update's date is non-empty. Each score is overwritten independently and
// only when the update's value is present, so a posted score never regresses
// to absent. Applying the same update twice changes nothing on the second
// application.
func Merge(base, update []models.GameRecord) []models.GameRecord {
	byID := make(map[string]*models.GameRecord, len(base))
	for i := range base {
		if base[i].ID != "" {
			byID[base[i].ID] = &base[i]
		}
	}

	for _, u := range update {
		if u.ID == "" {
			continue
		}
		existing, ok := byID[u.ID]
		if !ok {
			continue
		}
		existing.Status = u.Status
		if u.Date != "" {
			existing.Date = u.Date
		}
		if u.AwayScore != nil {
			v := *u.AwayScore
			existing.AwayScore = &v
		}
		if u.HomeScore != nil {
			v := *u.HomeScore
			existing.HomeScore = &v
		}
	}

	return base
}
