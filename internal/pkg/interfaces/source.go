package interfaces

import (
	"context"

	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// BaseSource produces the name-bearing base record set, fetched once per
// session. The scoreboard page adapter implements it.
type BaseSource interface {
	// FetchBase fetches and parses the full record set. The returned
	// records carry verified team names.
	FetchBase(ctx context.Context) ([]models.GameRecord, error)
}

// UpdateSource produces the score/status-bearing update set, fetched each
// poll cycle. The gamescores feed adapter implements it.
type UpdateSource interface {
	// FetchUpdates fetches and parses the current update set. Team names
	// in the returned records, if any, are best-effort and unverified.
	FetchUpdates(ctx context.Context) ([]models.GameRecord, error)
}

// Sink receives each finalized, ordered record set. Rendering is the sink's
// concern; the records it receives are already reconciled and sorted.
type Sink interface {
	Deliver(records []models.GameRecord) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(records []models.GameRecord) error

func (f SinkFunc) Deliver(records []models.GameRecord) error {
	return f(records)
}
