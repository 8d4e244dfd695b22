package services

import (
	"math/rand"
	"sync"
	"time"

	"swipess_server/models"

	"github.com/google/uuid"
)

// ProspectService drives the owner-side prospecting flow: the same
// swipe cursor and undo state machine as the discovery feed, over a
// fixed sequence of client profiles. No re-ranking is involved.
type ProspectService struct {
	Prospects []models.ClientProfile

	// MatchChance decides whether a liked prospect turns into a lead
	// match. Injectable for tests.
	MatchChance func() bool

	TransitionDelay time.Duration
	Now             func() time.Time

	mu       sync.Mutex
	sessions map[string]*ProspectSession
}

// ProspectSession tracks one owner's prospecting run.
type ProspectSession struct {
	ID      string
	OwnerID string

	mu        sync.Mutex
	cursor    swipeCursor
	history   []models.InteractionRecord
	matches   []string
	viewStart time.Time
}

// ProspectSnapshot is the externally visible state of a prospect
// session.
type ProspectSnapshot struct {
	SessionID      string                   `json:"sessionId"`
	CurrentIndex   int                      `json:"currentIndex"`
	TotalProspects int                      `json:"totalProspects"`
	ActiveProspect *models.ClientProfile    `json:"activeProspect,omitempty"`
	SwipeDirection models.InteractionAction `json:"swipeDirection,omitempty"`
	CanReturn      bool                     `json:"canReturn"`
	Matches        []string                 `json:"matches"`
	Matched        bool                     `json:"matched"`
}

// NewProspectService builds a prospect service over the seed prospects.
func NewProspectService() *ProspectService {
	return &ProspectService{
		Prospects:       SeedProspects(),
		MatchChance:     func() bool { return rand.Float64() > 0.4 },
		TransitionDelay: 400 * time.Millisecond,
		Now:             time.Now,
		sessions:        make(map[string]*ProspectSession),
	}
}

// OpenSession starts a prospecting run for an owner.
func (ps *ProspectService) OpenSession(ownerID string) *ProspectSnapshot {
	s := &ProspectSession{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		cursor:    newSwipeCursor(),
		viewStart: ps.now(),
	}

	ps.mu.Lock()
	ps.sessions[s.ID] = s
	ps.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return ps.snapshotLocked(s, false)
}

// Snapshot returns the current session state.
func (ps *ProspectService) Snapshot(sessionID string) (*ProspectSnapshot, error) {
	s, err := ps.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return ps.snapshotLocked(s, false), nil
}

// Swipe records a decision on the active prospect. A like may confirm
// a lead match.
func (ps *ProspectService) Swipe(sessionID string, action models.InteractionAction) (*ProspectSnapshot, error) {
	if action != models.ActionLike && action != models.ActionNope {
		return nil, ErrInvalidAction
	}
	s, err := ps.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ps.Prospects) == 0 || s.cursor.index >= len(ps.Prospects) {
		return nil, ErrNoActiveCard
	}
	active := ps.Prospects[s.cursor.index]

	if !s.cursor.beginSwipe(action) {
		return ps.snapshotLocked(s, false), nil
	}

	now := ps.now()
	s.history = append(s.history, models.InteractionRecord{
		SessionID: s.ID,
		UserID:    s.OwnerID,
		ListingID: active.ID,
		Action:    action,
		Duration:  now.Sub(s.viewStart).Milliseconds(),
		Timestamp: now.UnixMilli(),
	})

	matched := false
	if action == models.ActionLike && ps.MatchChance != nil && ps.MatchChance() {
		s.matches = append(s.matches, active.ID)
		matched = true
	}

	if ps.TransitionDelay <= 0 {
		ps.settleLocked(s)
	} else {
		time.AfterFunc(ps.TransitionDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			ps.settleLocked(s)
		})
	}

	return ps.snapshotLocked(s, matched), nil
}

// Return performs the single-use undo on the prospect cursor.
func (ps *ProspectService) Return(sessionID string) (*ProspectSnapshot, error) {
	s, err := ps.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.undo() {
		s.viewStart = ps.now()
	}
	return ps.snapshotLocked(s, false), nil
}

func (ps *ProspectService) session(id string) (*ProspectSession, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	s, ok := ps.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (ps *ProspectService) now() time.Time {
	if ps.Now != nil {
		return ps.Now()
	}
	return time.Now()
}

func (ps *ProspectService) settleLocked(s *ProspectSession) {
	if s.cursor.direction == "" {
		return
	}
	s.cursor.settle(len(ps.Prospects))
	s.viewStart = ps.now()
}

func (ps *ProspectService) snapshotLocked(s *ProspectSession, matched bool) *ProspectSnapshot {
	snap := &ProspectSnapshot{
		SessionID:      s.ID,
		CurrentIndex:   s.cursor.index,
		TotalProspects: len(ps.Prospects),
		SwipeDirection: s.cursor.direction,
		CanReturn:      s.cursor.canReturn(),
		Matches:        append([]string(nil), s.matches...),
		Matched:        matched,
	}
	if s.cursor.index < len(ps.Prospects) {
		p := ps.Prospects[s.cursor.index]
		snap.ActiveProspect = &p
	}
	return snap
}
