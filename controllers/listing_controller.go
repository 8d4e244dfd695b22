package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"swipess_server/models"
	"swipess_server/services"
)

// ListingController exposes the merged catalog, listing publication and
// the new-listing notification.
type ListingController struct {
	Catalog  *services.CatalogService
	Realtime *services.RealtimeService
}

// NewListingController initializes the controller.
func NewListingController(catalog *services.CatalogService, realtime *services.RealtimeService) *ListingController {
	return &ListingController{Catalog: catalog, Realtime: realtime}
}

// HandleGetListings - fetch the merged candidate sequence, optionally
// scoped to one category
func (c *ListingController) HandleGetListings(w http.ResponseWriter, r *http.Request) {
	category := models.ListingCategory(r.URL.Query().Get("category"))
	if category == "" {
		writeJSON(w, c.Catalog.All())
		return
	}
	if !category.Valid() {
		http.Error(w, `{"error": "Invalid category"}`, http.StatusBadRequest)
		return
	}
	writeJSON(w, c.Catalog.Base(category))
}

// HandlePublishListing - persist a new listing and merge it into the
// live feed
func (c *ListingController) HandlePublishListing(w http.ResponseWriter, r *http.Request) {
	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if listing.Title == "" || !listing.Category.Valid() {
		http.Error(w, `{"error": "Missing title or category"}`, http.StatusBadRequest)
		return
	}

	published, err := c.Catalog.Publish(r.Context(), listing)
	if err != nil {
		log.Printf("Failed to publish listing: %v", err)
		http.Error(w, `{"error": "Failed to publish listing"}`, http.StatusInternalServerError)
		return
	}

	// Optimistic local merge; the echoed realtime event dedups on id.
	c.Realtime.Ingest(published)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(published)
}

// HandleIngestEvent - merge an externally pushed listing-created event
func (c *ListingController) HandleIngestEvent(w http.ResponseWriter, r *http.Request) {
	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if listing.ID == "" || !listing.Category.Valid() {
		http.Error(w, `{"error": "Missing id or category"}`, http.StatusBadRequest)
		return
	}

	inserted := c.Realtime.Ingest(listing)
	writeJSON(w, map[string]bool{"inserted": inserted})
}

// HandleGetAlert - current new-listing notification, if any
func (c *ListingController) HandleGetAlert(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]*models.Listing{"alert": c.Realtime.Alert()})
}

// HandleDismissAlert - clear the notification and cancel its timer
func (c *ListingController) HandleDismissAlert(w http.ResponseWriter, r *http.Request) {
	c.Realtime.DismissAlert()
	writeJSON(w, map[string]string{"status": "dismissed"})
}
