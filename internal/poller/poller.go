// Package poller drives the fetch-merge-sort-deliver cycle. It is the sole
// owner of the base record set between cycles; everything it hands to the
// sink is already reconciled and ordered.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ndanilov/scoreline/internal/pkg/gameorder"
	"github.com/ndanilov/scoreline/internal/pkg/interfaces"
	"github.com/ndanilov/scoreline/internal/pkg/models"
	"github.com/ndanilov/scoreline/internal/pkg/reconcile"
)

// Poller repeatedly applies feed updates onto a document-sourced baseline.
//
// It is a two-state machine: Running from the moment the baseline is loaded,
// Stopped once the context is cancelled. Cancellation is observed only at
// the inter-cycle wait, so a delivery in flight always completes and the
// sink never sees a truncated sequence. Stopped is terminal.
type Poller struct {
	base     interfaces.BaseSource
	updates  interfaces.UpdateSource
	sink     interfaces.Sink
	interval time.Duration

	records []models.GameRecord
}

func New(base interfaces.BaseSource, updates interfaces.UpdateSource, sink interfaces.Sink, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		base:     base,
		updates:  updates,
		sink:     sink,
		interval: interval,
	}
}

// RunOnce performs a single fetch-merge-sort-deliver pass: one baseline
// fetch, one feed fetch, merged and delivered. Any fetch failure is fatal
// for the invocation.
func (p *Poller) RunOnce(ctx context.Context) error {
	if err := p.loadBaseline(ctx); err != nil {
		return err
	}
	update, err := p.updates.FetchUpdates(ctx)
	if err != nil {
		return fmt.Errorf("update fetch: %w", err)
	}
	p.records = reconcile.Merge(p.records, update)
	return p.deliver()
}

// Run polls until the context is cancelled. The baseline document fetch
// happens exactly once, up front; a baseline failure aborts the session
// since no reconciliation target exists without it. After that, a failed
// cycle is logged and skipped: the last good reconciled state is retained
// and polling continues.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.loadBaseline(ctx); err != nil {
		return err
	}

	// Initial feed merge before the first wait, so the operator sees
	// current scores immediately. A feed failure here still delivers the
	// bare baseline.
	if err := p.runCycle(ctx, 0); err != nil {
		slog.Warn("Initial feed fetch failed, showing baseline only", "error", err)
		if err := p.deliver(); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	cycle := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("Polling stopped", "cycles", cycle)
			return nil
		case <-ticker.C:
			cycle++
			if err := p.runCycle(ctx, cycle); err != nil {
				slog.Warn("Poll cycle failed, keeping last good state", "cycle", cycle, "error", err)
			}
		}
	}
}

func (p *Poller) loadBaseline(ctx context.Context) error {
	records, err := p.base.FetchBase(ctx)
	if err != nil {
		return fmt.Errorf("baseline fetch: %w", err)
	}
	p.records = records
	slog.Info("Baseline loaded", "games", len(records))
	return nil
}

// runCycle fetches the update set, merges it onto the base set and delivers
// the sorted result. On a fetch failure nothing is merged or delivered; the
// previously reconciled state stays intact.
func (p *Poller) runCycle(ctx context.Context, cycle int) error {
	start := time.Now()

	update, err := p.updates.FetchUpdates(ctx)
	if err != nil {
		return fmt.Errorf("update fetch: %w", err)
	}

	p.records = reconcile.Merge(p.records, update)
	if err := p.deliver(); err != nil {
		return err
	}

	slog.Debug("Cycle finished", "cycle", cycle, "games", len(p.records), "duration", time.Since(start))
	return nil
}

func (p *Poller) deliver() error {
	gameorder.Sort(p.records)

	// The sink gets its own copy: the poller keeps mutating the base set
	// on later cycles.
	out := make([]models.GameRecord, len(p.records))
	copy(out, p.records)

	if err := p.sink.Deliver(out); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}
	return nil
}
