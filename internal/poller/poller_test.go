package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilov/scoreline/internal/pkg/models"
)

type fakeBase struct {
	records []models.GameRecord
	err     error
	calls   int
}

func (f *fakeBase) FetchBase(ctx context.Context) ([]models.GameRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.GameRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

type feedResult struct {
	records []models.GameRecord
	err     error
}

// fakeFeed replays a script of responses, then keeps answering with an
// empty update set.
type fakeFeed struct {
	script []feedResult
	calls  int
}

func (f *fakeFeed) FetchUpdates(ctx context.Context) ([]models.GameRecord, error) {
	idx := f.calls
	f.calls++
	if idx >= len(f.script) {
		return nil, nil
	}
	r := f.script[idx]
	return r.records, r.err
}

// chanSink forwards every delivery to a channel so tests can await cycles
// without sleeping.
type chanSink struct {
	deliveries chan []models.GameRecord
}

func newChanSink() *chanSink {
	return &chanSink{deliveries: make(chan []models.GameRecord, 16)}
}

func (s *chanSink) Deliver(records []models.GameRecord) error {
	s.deliveries <- records
	return nil
}

func (s *chanSink) next(t *testing.T) []models.GameRecord {
	t.Helper()
	select {
	case d := <-s.deliveries:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a delivery")
		return nil
	}
}

func baseRecords() []models.GameRecord {
	return []models.GameRecord{
		{ID: "2025113001", Date: "Sun 11/30", Status: "1:00 PM", AwayTeam: "Cardinals", HomeTeam: "Ravens"},
		{ID: "2025113002", Date: "Sun 11/30", Status: "8:15 PM", AwayTeam: "Packers", HomeTeam: "Bears"},
	}
}

func TestRunOnceMergesAndSorts(t *testing.T) {
	base := &fakeBase{records: baseRecords()}
	feed := &fakeFeed{script: []feedResult{{records: []models.GameRecord{
		{ID: "2025113001", Status: "2ND", Date: "Sun 11/30", AwayScore: models.Score(10), HomeScore: models.Score(3)},
	}}}}
	sink := newChanSink()

	p := New(base, feed, sink, time.Minute)
	require.NoError(t, p.RunOnce(context.Background()))

	got := sink.next(t)
	require.Len(t, got, 2)

	// The live game sorts ahead of the upcoming one.
	assert.Equal(t, "2025113001", got[0].ID)
	assert.Equal(t, "2ND", got[0].Status)
	assert.Equal(t, "Cardinals", got[0].AwayTeam)
	require.NotNil(t, got[0].AwayScore)
	assert.Equal(t, 10, *got[0].AwayScore)

	assert.Equal(t, "2025113002", got[1].ID)
	assert.Nil(t, got[1].AwayScore)
}

func TestRunOnceBaselineFailureIsFatal(t *testing.T) {
	base := &fakeBase{err: errors.New("403 forbidden")}
	feed := &fakeFeed{}
	sink := newChanSink()

	p := New(base, feed, sink, time.Minute)
	err := p.RunOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, feed.calls, "no feed fetch without a baseline")
	assert.Empty(t, sink.deliveries)
}

func TestRunSkipsFailedCycleAndRetainsState(t *testing.T) {
	base := &fakeBase{records: baseRecords()}
	feed := &fakeFeed{script: []feedResult{
		{records: []models.GameRecord{
			{ID: "2025113001", Status: "2ND", AwayScore: models.Score(10), HomeScore: models.Score(3)},
			{ID: "2025113002", Status: "1ST", AwayScore: models.Score(0), HomeScore: models.Score(7)},
		}},
		{err: errors.New("feed unavailable")},
		{records: []models.GameRecord{
			{ID: "2025113001", Status: "FINAL", AwayScore: models.Score(17), HomeScore: models.Score(10)},
		}},
	}}
	sink := newChanSink()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(base, feed, sink, 10*time.Millisecond)
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	first := sink.next(t)
	require.Len(t, first, 2)
	assert.Equal(t, "2ND", first[0].Status)

	// The failed cycle delivers nothing; the next delivery reflects both
	// the new final and the retained scores from the first update.
	second := sink.next(t)
	require.Len(t, second, 2)

	byID := map[string]models.GameRecord{}
	for _, r := range second {
		byID[r.ID] = r
	}

	final := byID["2025113001"]
	assert.Equal(t, "FINAL", final.Status)
	require.NotNil(t, final.AwayScore)
	assert.Equal(t, 17, *final.AwayScore)
	assert.Equal(t, "Cardinals", final.AwayTeam, "names stay fixed from the baseline")

	live := byID["2025113002"]
	assert.Equal(t, "1ST", live.Status, "state from the last good cycle is retained")
	require.NotNil(t, live.HomeScore)
	assert.Equal(t, 7, *live.HomeScore)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "cancellation is a clean stop, not an error")
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancellation")
	}

	assert.Equal(t, 1, base.calls, "the baseline is fetched exactly once per session")
}

func TestRunDropsGamesUnknownToBaseline(t *testing.T) {
	base := &fakeBase{records: baseRecords()[:1]}
	feed := &fakeFeed{script: []feedResult{
		{records: []models.GameRecord{
			{ID: "2025113001", Status: "1ST", AwayScore: models.Score(3), HomeScore: models.Score(0)},
			{ID: "2025113099", Status: "1ST", AwayScore: models.Score(14), HomeScore: models.Score(14)},
		}},
	}}
	sink := newChanSink()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(base, feed, sink, time.Minute)
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	got := sink.next(t)
	require.Len(t, got, 1, "games unknown to the baseline are not introduced mid-session")
	assert.Equal(t, "2025113001", got[0].ID)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancellation")
	}
}
