package controllers

import (
	"encoding/json"
	"net/http"

	"swipess_server/models"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// ProspectController exposes the owner-side prospecting swipe flow.
type ProspectController struct {
	ProspectService *services.ProspectService
}

// NewProspectController initializes the controller.
func NewProspectController(service *services.ProspectService) *ProspectController {
	return &ProspectController{ProspectService: service}
}

// HandleOpenSession - start a prospecting run for an owner
func (c *ProspectController) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID string `json:"ownerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	snapshot := c.ProspectService.OpenSession(request.OwnerID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(snapshot)
}

// HandleGetSession - current prospect and cursor state
func (c *ProspectController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.ProspectService.Snapshot(mux.Vars(r)["sessionId"])
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleSwipe - record a decision on the active prospect
func (c *ProspectController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Action models.InteractionAction `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	snapshot, err := c.ProspectService.Swipe(mux.Vars(r)["sessionId"], request.Action)
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}

// HandleReturn - undo the last prospect swipe
func (c *ProspectController) HandleReturn(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.ProspectService.Return(mux.Vars(r)["sessionId"])
	if err != nil {
		writeFeedError(w, err)
		return
	}
	writeJSON(w, snapshot)
}
