package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"swipess_server/models"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// FeedController exposes the discovery feed sessions over HTTP.
type FeedController struct {
	FeedService *services.FeedService
}

// NewFeedController initializes the controller.
func NewFeedController(service *services.FeedService) *FeedController {
	return &FeedController{FeedService: service}
}

// HandleOpenSession - open a new feed session for a user and category
func (c *FeedController) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string                 `json:"userId"`
		Category models.ListingCategory `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	snapshot, err := c.FeedService.OpenSession(request.UserID, request.Category)
	if err != nil {
		writeFeedError(w, err)
		return
	}

	log.Printf("Opened feed session %s (%s) for %s", snapshot.SessionID, request.Category, request.UserID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(snapshot)
}

// HandleGetSession - fetch the current card and cursor state
func (c *FeedController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.FeedService.Snapshot(mux.Vars(r)["sessionId"])
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleSwipe - record a like/nope decision on the active card
func (c *FeedController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Action models.InteractionAction `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	snapshot, err := c.FeedService.Swipe(mux.Vars(r)["sessionId"], request.Action)
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleView - record a view interaction without moving the cursor
func (c *FeedController) HandleView(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.FeedService.RecordView(mux.Vars(r)["sessionId"])
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleReturn - undo the last swipe (single use)
func (c *FeedController) HandleReturn(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.FeedService.Return(mux.Vars(r)["sessionId"])
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleSearch - run a free-text query through the query interpreter
func (c *FeedController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Query string `json:"query"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(request.Query) == "" {
		http.Error(w, `{"error": "Query must not be empty"}`, http.StatusBadRequest)
		return
	}

	snapshot, err := c.FeedService.Search(r.Context(), mux.Vars(r)["sessionId"], request.Query)
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleSetFilters - replace the structured filter set wholesale
func (c *FeedController) HandleSetFilters(w http.ResponseWriter, r *http.Request) {
	var filters models.AIFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	snapshot, err := c.FeedService.SetFilters(mux.Vars(r)["sessionId"], &filters)
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleClearFilters - drop the active filter set
func (c *FeedController) HandleClearFilters(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.FeedService.ClearFilters(mux.Vars(r)["sessionId"])
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleSetCategory - switch the feed vertical
func (c *FeedController) HandleSetCategory(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Category models.ListingCategory `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	snapshot, err := c.FeedService.SetCategory(mux.Vars(r)["sessionId"], request.Category)
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func writeFeedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		http.Error(w, `{"error": "Session not found"}`, http.StatusNotFound)
	case errors.Is(err, services.ErrNoActiveCard):
		http.Error(w, `{"error": "No active card"}`, http.StatusConflict)
	case errors.Is(err, services.ErrInvalidAction), errors.Is(err, services.ErrInvalidCategory):
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
	default:
		http.Error(w, `{"error": "Internal server error"}`, http.StatusInternalServerError)
	}
}
