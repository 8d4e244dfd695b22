package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"swipess_server/models"
)

// Broadcaster pushes events to connected clients. Satisfied by
// *socketio.Server.
type Broadcaster interface {
	BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool
}

// ListingsRoom is the socket room every feed client joins for
// listing-created pushes.
const ListingsRoom = "listings"

// RealtimeService is the ingestion bridge: it merges asynchronously
// arriving listings into the catalog's external sequence, deduplicates
// by identity and surfaces a transient new-listing notification with a
// 5 second auto-clear.
type RealtimeService struct {
	Catalog  *CatalogService
	Socket   Broadcaster
	AlertTTL time.Duration

	mu         sync.Mutex
	known      map[string]struct{}
	alert      *models.Listing
	alertTimer *time.Timer
	alertGen   uint64
}

// NewRealtimeService builds the bridge over a catalog.
func NewRealtimeService(catalog *CatalogService, socket Broadcaster) *RealtimeService {
	return &RealtimeService{
		Catalog:  catalog,
		Socket:   socket,
		AlertTTL: 5 * time.Second,
		known:    make(map[string]struct{}),
	}
}

// Bootstrap loads the persisted listing sequence into the catalog and
// seeds the known-identity set. No notifications are raised for
// bootstrap data.
func (rs *RealtimeService) Bootstrap(ctx context.Context) error {
	stored, err := rs.Catalog.FetchStored(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap fetch failed: %w", err)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	for _, l := range stored {
		if _, dup := rs.known[l.ID]; dup {
			continue
		}
		rs.known[l.ID] = struct{}{}
		rs.Catalog.AppendExternal(l)
	}
	log.Printf("Catalog bootstrap complete: %d stored listings", len(stored))
	return nil
}

// Ingest merges one listing-created event. Events for already-known
// identities (echoed writes) are ignored. Returns true when the
// listing was inserted.
func (rs *RealtimeService) Ingest(l models.Listing) bool {
	rs.mu.Lock()

	if _, dup := rs.known[l.ID]; dup {
		rs.mu.Unlock()
		return false
	}
	rs.known[l.ID] = struct{}{}
	rs.Catalog.PrependExternal(l)
	rs.armAlertLocked(l)

	rs.mu.Unlock()

	if rs.Socket != nil {
		rs.Socket.BroadcastToRoom("/", ListingsRoom, "listingCreated", l)
		rs.Socket.BroadcastToRoom("/", string(l.Category), "listingCreated", l)
	}
	return true
}

// Alert returns the current new-listing notification, if any.
func (rs *RealtimeService) Alert() *models.Listing {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.alert
}

// DismissAlert clears the notification immediately and cancels its
// auto-clear timer.
func (rs *RealtimeService) DismissAlert() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.alert = nil
	rs.alertGen++
	if rs.alertTimer != nil {
		rs.alertTimer.Stop()
		rs.alertTimer = nil
	}
}

// armAlertLocked sets the notification and arms a fresh auto-clear
// timer. Arming invalidates any previously armed timer, so an old
// timer can never clear a newer notification.
func (rs *RealtimeService) armAlertLocked(l models.Listing) {
	if rs.alertTimer != nil {
		rs.alertTimer.Stop()
	}

	listing := l
	rs.alert = &listing
	rs.alertGen++
	gen := rs.alertGen

	rs.alertTimer = time.AfterFunc(rs.AlertTTL, func() {
		rs.mu.Lock()
		defer rs.mu.Unlock()
		if rs.alertGen != gen {
			return
		}
		rs.alert = nil
		rs.alertTimer = nil
	})
}
