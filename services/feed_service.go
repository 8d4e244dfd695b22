package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"swipess_server/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoActiveCard    = errors.New("no active card")
	ErrInvalidAction   = errors.New("invalid swipe action")
	ErrInvalidCategory = errors.New("invalid category")
)

// Ranker reorders the remaining candidates from the interaction
// history. Implemented by AIService.
type Ranker interface {
	RankCandidates(ctx context.Context, history []models.InteractionRecord, candidates []models.Listing) ([]string, error)
}

// QueryInterpreter turns free text into structured filters.
// Implemented by AIService.
type QueryInterpreter interface {
	ExtractFilters(ctx context.Context, query string) (*models.AIFilters, error)
}

// FeedService drives the discovery feed: one FeedSession per open feed
// context, each holding the cursor, the append-only interaction log and
// the current ranking overlay.
type FeedService struct {
	Catalog *CatalogService
	Ranker  Ranker
	Queries QueryInterpreter

	// Optional interaction persistence; nil skips it.
	Dynamo            *DynamoService
	InteractionsTable string

	// TransitionDelay is the visual swipe transition; a value <= 0
	// settles synchronously (used in tests).
	TransitionDelay time.Duration
	Now             func() time.Time

	mu       sync.Mutex
	sessions map[string]*FeedSession
}

// NewFeedService builds a feed service with the production defaults.
func NewFeedService(catalog *CatalogService, ranker Ranker, queries QueryInterpreter) *FeedService {
	return &FeedService{
		Catalog:         catalog,
		Ranker:          ranker,
		Queries:         queries,
		TransitionDelay: 300 * time.Millisecond,
		Now:             time.Now,
		sessions:        make(map[string]*FeedSession),
	}
}

// FeedSession is the state of one feed context. A context change
// (category or filters) resets everything except identity.
type FeedSession struct {
	ID     string
	UserID string

	mu          sync.Mutex
	category    models.ListingCategory
	filters     *models.AIFilters
	history     []models.InteractionRecord
	rankedIDs   []string
	rankSeq     uint64
	rankApplied uint64
	reranking   bool
	cursor      swipeCursor
	viewStart   time.Time
}

// FeedSnapshot is the externally visible state of a session.
type FeedSnapshot struct {
	SessionID      string                   `json:"sessionId"`
	Category       models.ListingCategory   `json:"category"`
	Filters        *models.AIFilters        `json:"filters,omitempty"`
	CurrentIndex   int                      `json:"currentIndex"`
	TotalCards     int                      `json:"totalCards"`
	ActiveCard     *models.Listing          `json:"activeCard,omitempty"`
	SwipeDirection models.InteractionAction `json:"swipeDirection,omitempty"`
	CanReturn      bool                     `json:"canReturn"`
	Reranking      bool                     `json:"reranking"`
	Interactions   int                      `json:"interactions"`
}

// OpenSession starts a new feed context for a user and category.
func (fs *FeedService) OpenSession(userID string, category models.ListingCategory) (*FeedSnapshot, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	s := &FeedSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		category:  category,
		cursor:    newSwipeCursor(),
		viewStart: fs.now(),
	}

	fs.mu.Lock()
	fs.sessions[s.ID] = s
	fs.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return fs.snapshotLocked(s), nil
}

// Snapshot returns the current session state.
func (fs *FeedService) Snapshot(sessionID string) (*FeedSnapshot, error) {
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fs.snapshotLocked(s), nil
}

// Swipe records a like/nope decision on the active card, arms the undo
// slot and schedules the cursor advance. A swipe while a transition is
// in flight is a silent no-op.
func (fs *FeedService) Swipe(sessionID string, action models.InteractionAction) (*FeedSnapshot, error) {
	if action != models.ActionLike && action != models.ActionNope {
		return nil, ErrInvalidAction
	}
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ranked, filtered := fs.sequencesLocked(s)
	if len(ranked) == 0 || s.cursor.index >= len(ranked) {
		return nil, ErrNoActiveCard
	}
	active := ranked[s.cursor.index]

	if !s.cursor.beginSwipe(action) {
		return fs.snapshotLocked(s), nil
	}

	fs.recordLocked(s, active.ID, action)
	fs.maybeTriggerRerankLocked(s, ranked, filtered)

	if fs.TransitionDelay <= 0 {
		fs.settleLocked(s)
	} else {
		time.AfterFunc(fs.TransitionDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			fs.settleLocked(s)
		})
	}

	return fs.snapshotLocked(s), nil
}

// RecordView appends a view interaction for the active card without
// moving the cursor. Views count toward the re-rank cadence.
func (fs *FeedService) RecordView(sessionID string) (*FeedSnapshot, error) {
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ranked, filtered := fs.sequencesLocked(s)
	if len(ranked) == 0 || s.cursor.index >= len(ranked) {
		return nil, ErrNoActiveCard
	}

	fs.recordLocked(s, ranked[s.cursor.index].ID, models.ActionView)
	fs.maybeTriggerRerankLocked(s, ranked, filtered)
	return fs.snapshotLocked(s), nil
}

// Return performs the single-use undo: restore the last swiped
// position and disarm the slot. A no-op when the slot is empty or
// already consumed this turn.
func (fs *FeedService) Return(sessionID string) (*FeedSnapshot, error) {
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.undo() {
		s.viewStart = fs.now()
	}
	return fs.snapshotLocked(s), nil
}

// SetCategory switches the feed vertical, resetting the context when it
// actually changes.
func (fs *FeedService) SetCategory(sessionID string, category models.ListingCategory) (*FeedSnapshot, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.category != category {
		s.category = category
		fs.resetContextLocked(s)
	}
	return fs.snapshotLocked(s), nil
}

// SetFilters replaces the structured filter set wholesale and starts a
// fresh feed context.
func (fs *FeedService) SetFilters(sessionID string, filters *models.AIFilters) (*FeedSnapshot, error) {
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = filters
	fs.resetContextLocked(s)
	return fs.snapshotLocked(s), nil
}

// ClearFilters drops the active filter set.
func (fs *FeedService) ClearFilters(sessionID string) (*FeedSnapshot, error) {
	return fs.SetFilters(sessionID, nil)
}

// Search runs the free-text query through the query interpreter and
// applies the extracted filters. Interpreter failures leave the session
// untouched; the search degrades silently.
func (fs *FeedService) Search(ctx context.Context, sessionID, query string) (*FeedSnapshot, error) {
	s, err := fs.session(sessionID)
	if err != nil {
		return nil, err
	}

	var extracted *models.AIFilters
	if fs.Queries != nil {
		extracted, err = fs.Queries.ExtractFilters(ctx, query)
		if err != nil {
			log.Printf("Query interpretation failed, keeping current filters: %v", err)
			extracted = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if extracted != nil {
		if extracted.Category.Valid() && extracted.Category != s.category {
			s.category = extracted.Category
		}
		s.filters = extracted
		fs.resetContextLocked(s)
	}
	return fs.snapshotLocked(s), nil
}

func (fs *FeedService) session(id string) (*FeedSession, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	s, ok := fs.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (fs *FeedService) now() time.Time {
	if fs.Now != nil {
		return fs.Now()
	}
	return time.Now()
}

// sequencesLocked returns the display sequence (ranking applied) and
// the filtered base it was derived from.
func (fs *FeedService) sequencesLocked(s *FeedSession) (ranked, filtered []models.Listing) {
	base := fs.Catalog.Base(s.category)
	filtered = FilterListings(base, s.filters)
	return ApplyRanking(filtered, s.rankedIDs), filtered
}

func (fs *FeedService) recordLocked(s *FeedSession, listingID string, action models.InteractionAction) {
	now := fs.now()
	rec := models.InteractionRecord{
		SessionID: s.ID,
		UserID:    s.UserID,
		ListingID: listingID,
		Action:    action,
		Duration:  now.Sub(s.viewStart).Milliseconds(),
		Timestamp: now.UnixMilli(),
	}
	s.history = append(s.history, rec)
	fs.persistInteraction(rec)
}

// maybeTriggerRerankLocked fires a background re-rank after every 3rd
// recorded interaction, provided unseen candidates remain after the
// cursor. Responses are sequence-tagged so a stale, slow response never
// overwrites a newer ranking.
func (fs *FeedService) maybeTriggerRerankLocked(s *FeedSession, ranked, filtered []models.Listing) {
	if fs.Ranker == nil {
		return
	}
	if len(s.history)%3 != 0 {
		return
	}
	if s.cursor.index+1 >= len(ranked) {
		return
	}

	candidates := filtered[s.cursor.index+1:]
	history := make([]models.InteractionRecord, len(s.history))
	copy(history, s.history)

	s.rankSeq++
	s.reranking = true
	go fs.rerank(s, s.rankSeq, history, candidates)
}

func (fs *FeedService) rerank(s *FeedSession, seq uint64, history []models.InteractionRecord, candidates []models.Listing) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids, err := fs.Ranker.RankCandidates(ctx, history, candidates)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.rankSeq {
		s.reranking = false
	}
	if err != nil {
		log.Printf("Re-ranking failed for session %s: %v", s.ID, err)
		return
	}
	if seq <= s.rankApplied {
		log.Printf("Discarding stale re-rank response for session %s (seq %d <= %d)", s.ID, seq, s.rankApplied)
		return
	}

	s.rankedIDs = ids
	s.rankApplied = seq
}

func (fs *FeedService) settleLocked(s *FeedSession) {
	if s.cursor.direction == "" {
		return
	}
	ranked, _ := fs.sequencesLocked(s)
	s.cursor.settle(len(ranked))
	s.viewStart = fs.now()
}

func (fs *FeedService) resetContextLocked(s *FeedSession) {
	s.cursor.reset()
	s.history = nil
	s.rankedIDs = nil
	// Outstanding re-rank responses belong to the old context.
	s.rankApplied = s.rankSeq
	s.reranking = false
	s.viewStart = fs.now()
}

func (fs *FeedService) persistInteraction(rec models.InteractionRecord) {
	if fs.Dynamo == nil {
		return
	}
	table := fs.InteractionsTable
	if table == "" {
		table = models.FeedInteractionsTable
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fs.Dynamo.PutItem(ctx, table, rec); err != nil {
			log.Printf("Failed to persist interaction: %v", err)
		}
	}()
}

func (fs *FeedService) snapshotLocked(s *FeedSession) *FeedSnapshot {
	ranked, _ := fs.sequencesLocked(s)

	snap := &FeedSnapshot{
		SessionID:      s.ID,
		Category:       s.category,
		Filters:        s.filters,
		CurrentIndex:   s.cursor.index,
		TotalCards:     len(ranked),
		SwipeDirection: s.cursor.direction,
		CanReturn:      s.cursor.canReturn(),
		Reranking:      s.reranking,
		Interactions:   len(s.history),
	}
	if s.cursor.index < len(ranked) {
		card := ranked[s.cursor.index]
		snap.ActiveCard = &card
	}
	return snap
}
