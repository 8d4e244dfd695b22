package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"swipess_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type rankReply struct {
	ids []string
	err error
}

// stubRanker replays queued replies and records the candidate ids of
// every call.
type stubRanker struct {
	mu         sync.Mutex
	calls      int
	candidates [][]string
	replies    []rankReply
}

func (r *stubRanker) RankCandidates(_ context.Context, _ []models.InteractionRecord, cands []models.Listing) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.candidates = append(r.candidates, listingIDs(cands))
	if len(r.replies) > 0 {
		reply := r.replies[0]
		r.replies = r.replies[1:]
		return reply.ids, reply.err
	}
	return nil, nil
}

func (r *stubRanker) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *stubRanker) calledWith() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.candidates...)
}

// gatedRanker blocks every call until the test releases it with a
// reply.
type gatedRanker struct {
	started chan chan []string
}

func (g *gatedRanker) RankCandidates(_ context.Context, _ []models.InteractionRecord, _ []models.Listing) ([]string, error) {
	gate := make(chan []string)
	g.started <- gate
	return <-gate, nil
}

type stubInterpreter struct {
	filters *models.AIFilters
	err     error
}

func (s *stubInterpreter) ExtractFilters(context.Context, string) (*models.AIFilters, error) {
	return s.filters, s.err
}

func newTestFeedService(ranker Ranker, queries QueryInterpreter) (*FeedService, *manualClock) {
	clock := newManualClock()
	fs := NewFeedService(NewCatalogService(nil, models.ListingsTable), ranker, queries)
	fs.TransitionDelay = 0
	fs.Now = clock.Now
	return fs, clock
}

func sessionRankedIDs(t *testing.T, fs *FeedService, id string) []string {
	t.Helper()
	s, err := fs.session(id)
	require.NoError(t, err)
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.rankedIDs...)
}

func sessionHistory(t *testing.T, fs *FeedService, id string) []models.InteractionRecord {
	t.Helper()
	s, err := fs.session(id)
	require.NoError(t, err)
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InteractionRecord(nil), s.history...)
}

func TestOpenSessionRejectsUnknownCategory(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	_, err := fs.OpenSession("u1", "castle")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSwipeAdvancesAndWrapsAround(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)
	require.Equal(t, 4, snap.TotalCards)
	require.Equal(t, "p1", snap.ActiveCard.ID)

	for _, wantIndex := range []int{1, 2, 3, 0} {
		snap, err = fs.Swipe(snap.SessionID, models.ActionNope)
		require.NoError(t, err)
		assert.Equal(t, wantIndex, snap.CurrentIndex)
	}
	assert.Equal(t, "p1", snap.ActiveCard.ID)
	assert.Equal(t, 4, snap.Interactions)
}

func TestUndoIsSingleUse(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)
	assert.False(t, snap.CanReturn)

	snap, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)
	require.Equal(t, 1, snap.CurrentIndex)
	require.True(t, snap.CanReturn)

	// First undo restores the departed index and consumes the slot.
	snap, err = fs.Return(snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.False(t, snap.CanReturn)

	// Second undo in a row is a no-op.
	snap, err = fs.Return(snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CurrentIndex)

	// A new swipe re-arms exactly one undo opportunity.
	snap, err = fs.Swipe(snap.SessionID, models.ActionNope)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.True(t, snap.CanReturn)

	// The undo/re-swipe cycle keeps every record; nothing is deduped.
	history := sessionHistory(t, fs, snap.SessionID)
	require.Len(t, history, 2)
	assert.Equal(t, "p1", history[0].ListingID)
	assert.Equal(t, "p1", history[1].ListingID)
}

func TestRerankCadence(t *testing.T) {
	ranker := &stubRanker{}
	fs, _ := newTestFeedService(ranker, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	// 6 swipes: re-rank fires after the 3rd and the 6th, never
	// otherwise.
	for i := 0; i < 6; i++ {
		_, err = fs.Swipe(snap.SessionID, models.ActionLike)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool { return ranker.callCount() == 2 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, ranker.callCount())

	// Candidates are the filtered base strictly after the cursor at
	// trigger time: index 2 on the 3rd swipe, index 1 on the 6th. The
	// two calls run on separate goroutines, so compare unordered.
	assert.ElementsMatch(t, [][]string{{"p4"}, {"p3", "p4"}}, ranker.calledWith())
}

func TestRerankNotTriggeredWithoutUnseenCandidates(t *testing.T) {
	ranker := &stubRanker{}
	fs, _ := newTestFeedService(ranker, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	// Narrow the feed to a single card.
	snap, err = fs.SetFilters(snap.SessionID, &models.AIFilters{Tags: []string{"penthouse"}})
	require.NoError(t, err)
	require.Equal(t, 1, snap.TotalCards)

	for i := 0; i < 3; i++ {
		_, err = fs.Swipe(snap.SessionID, models.ActionNope)
		require.NoError(t, err)
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, ranker.callCount())
}

func TestViewsCountTowardRerankCadence(t *testing.T) {
	ranker := &stubRanker{}
	fs, _ := newTestFeedService(ranker, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	_, err = fs.RecordView(snap.SessionID)
	require.NoError(t, err)
	_, err = fs.RecordView(snap.SessionID)
	require.NoError(t, err)
	_, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return ranker.callCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestRerankResultReordersFeed(t *testing.T) {
	ranker := &stubRanker{replies: []rankReply{{ids: []string{"p4", "p3"}}}}
	fs, _ := newTestFeedService(ranker, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = fs.Swipe(snap.SessionID, models.ActionLike)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		ids := sessionRankedIDs(t, fs, snap.SessionID)
		return len(ids) == 2
	}, time.Second, 10*time.Millisecond)

	snap, err = fs.Snapshot(snap.SessionID)
	require.NoError(t, err)
	// Ranked items sort first, unranked keep their original order:
	// p4, p3, p1, p2 with the cursor still at position 3.
	assert.Equal(t, 3, snap.CurrentIndex)
	assert.Equal(t, 4, snap.TotalCards)
	require.NotNil(t, snap.ActiveCard)
	assert.Equal(t, "p2", snap.ActiveCard.ID)
}

func TestRerankFailureKeepsPreviousRanking(t *testing.T) {
	ranker := &stubRanker{replies: []rankReply{
		{ids: []string{"p4", "p3"}},
		{err: errors.New("boom")},
	}}
	fs, _ := newTestFeedService(ranker, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		_, err = fs.Swipe(snap.SessionID, models.ActionLike)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool { return ranker.callCount() == 2 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return len(sessionRankedIDs(t, fs, snap.SessionID)) == 2
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"p4", "p3"}, sessionRankedIDs(t, fs, snap.SessionID))
}

func TestStaleRerankResponseIsDiscarded(t *testing.T) {
	ranker := &gatedRanker{started: make(chan chan []string, 2)}
	fs, _ := newTestFeedService(ranker, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = fs.Swipe(snap.SessionID, models.ActionLike)
		require.NoError(t, err)
	}
	gate1 := <-ranker.started

	for i := 0; i < 3; i++ {
		_, err = fs.Swipe(snap.SessionID, models.ActionLike)
		require.NoError(t, err)
	}
	gate2 := <-ranker.started

	// The newer request resolves first; the older one must not
	// overwrite it.
	gate2 <- []string{"p4"}
	require.Eventually(t, func() bool {
		return len(sessionRankedIDs(t, fs, snap.SessionID)) == 1
	}, time.Second, 10*time.Millisecond)

	gate1 <- []string{"p2", "p3"}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"p4"}, sessionRankedIDs(t, fs, snap.SessionID))
}

func TestContextResetOnCategoryChange(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	_, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)
	_, err = fs.Swipe(snap.SessionID, models.ActionNope)
	require.NoError(t, err)

	snap, err = fs.SetCategory(snap.SessionID, models.CategoryMoto)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryMoto, snap.Category)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, 0, snap.Interactions)
	assert.False(t, snap.CanReturn)
	assert.Equal(t, "m1", snap.ActiveCard.ID)
}

func TestContextResetOnFilterChange(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	_, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)

	snap, err = fs.SetFilters(snap.SessionID, &models.AIFilters{Location: "madrid"})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, 0, snap.Interactions)
	assert.False(t, snap.CanReturn)
	require.Equal(t, 1, snap.TotalCards)
	assert.Equal(t, "p1", snap.ActiveCard.ID)

	snap, err = fs.ClearFilters(snap.SessionID)
	require.NoError(t, err)
	assert.Nil(t, snap.Filters)
	assert.Equal(t, 4, snap.TotalCards)
}

func TestDwellDurationsFollowTheClock(t *testing.T) {
	fs, clock := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	clock.Advance(1500 * time.Millisecond)
	_, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)

	clock.Advance(200 * time.Millisecond)
	_, err = fs.Swipe(snap.SessionID, models.ActionNope)
	require.NoError(t, err)

	// Undo resets the dwell timer for the restored card.
	_, err = fs.Return(snap.SessionID)
	require.NoError(t, err)
	clock.Advance(300 * time.Millisecond)
	_, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)

	history := sessionHistory(t, fs, snap.SessionID)
	require.Len(t, history, 3)
	assert.Equal(t, int64(1500), history[0].Duration)
	assert.Equal(t, int64(200), history[1].Duration)
	assert.Equal(t, int64(300), history[2].Duration)
}

func TestSearchAppliesExtractedFilters(t *testing.T) {
	queries := &stubInterpreter{filters: &models.AIFilters{
		Category: models.CategoryMoto,
		MaxPrice: maxPrice(30000),
	}}
	fs, _ := newTestFeedService(nil, queries)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	snap, err = fs.Search(context.Background(), snap.SessionID, "bike under 30000")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryMoto, snap.Category)
	require.NotNil(t, snap.Filters)
	require.Equal(t, 1, snap.TotalCards)
	assert.Equal(t, "m2", snap.ActiveCard.ID)
}

func TestSearchFailureLeavesSessionUntouched(t *testing.T) {
	queries := &stubInterpreter{err: errors.New("upstream down")}
	fs, _ := newTestFeedService(nil, queries)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	snap, err = fs.Search(context.Background(), snap.SessionID, "anything")
	require.NoError(t, err)
	assert.Nil(t, snap.Filters)
	assert.Equal(t, models.CategoryProperty, snap.Category)
	assert.Equal(t, 4, snap.TotalCards)
}

func TestSwipeOnEmptyFeed(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	snap, err = fs.SetFilters(snap.SessionID, &models.AIFilters{Location: "Atlantis"})
	require.NoError(t, err)
	require.Equal(t, 0, snap.TotalCards)
	assert.Nil(t, snap.ActiveCard)

	_, err = fs.Swipe(snap.SessionID, models.ActionLike)
	assert.ErrorIs(t, err, ErrNoActiveCard)
}

func TestSwipeDuringTransitionIsANoOp(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	fs.TransitionDelay = time.Hour

	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	snap, err = fs.Swipe(snap.SessionID, models.ActionLike)
	require.NoError(t, err)
	assert.Equal(t, models.ActionLike, snap.SwipeDirection)
	assert.Equal(t, 0, snap.CurrentIndex)

	snap, err = fs.Swipe(snap.SessionID, models.ActionNope)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Interactions)
	assert.Equal(t, models.ActionLike, snap.SwipeDirection)
}

func TestUndoMidTransitionCancelsAdvance(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	fs.TransitionDelay = time.Hour

	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	_, err = fs.Swipe(snap.SessionID, models.ActionNope)
	require.NoError(t, err)

	snap, err = fs.Return(snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Empty(t, snap.SwipeDirection)
	assert.False(t, snap.CanReturn)
}

func TestInvalidSwipeAction(t *testing.T) {
	fs, _ := newTestFeedService(nil, nil)
	snap, err := fs.OpenSession("u1", models.CategoryProperty)
	require.NoError(t, err)

	_, err = fs.Swipe(snap.SessionID, models.ActionView)
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = fs.Swipe("missing", models.ActionLike)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
