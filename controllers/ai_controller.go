package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"swipess_server/models"
	"swipess_server/services"
)

// AIController exposes the generative helpers: listing drafting and the
// concierge chat.
type AIController struct {
	AI *services.AIService
}

// NewAIController initializes the controller.
func NewAIController(ai *services.AIService) *AIController {
	return &AIController{AI: ai}
}

// HandleDraft - turn a short description into a ready-to-edit listing
// draft
func (c *AIController) HandleDraft(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Description string                 `json:"description"`
		Category    models.ListingCategory `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(request.Description) == "" {
		http.Error(w, `{"error": "Description must not be empty"}`, http.StatusBadRequest)
		return
	}
	if !c.AI.Configured() {
		http.Error(w, `{"error": "AI collaborator is not configured"}`, http.StatusServiceUnavailable)
		return
	}

	category := request.Category
	if !category.Valid() {
		category = models.CategoryProperty
	}

	draft, err := c.AI.GenerateListingDraft(r.Context(), request.Description, category)
	if err != nil {
		log.Printf("Listing draft failed: %v", err)
		http.Error(w, `{"error": "Failed to generate listing draft"}`, http.StatusBadGateway)
		return
	}
	writeJSON(w, draft)
}

// HandleChat - one concierge chat turn
func (c *AIController) HandleChat(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Message string            `json:"message"`
		History []models.ChatTurn `json:"history"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(request.Message) == "" {
		http.Error(w, `{"error": "Message must not be empty"}`, http.StatusBadRequest)
		return
	}
	if !c.AI.Configured() {
		http.Error(w, `{"error": "AI collaborator is not configured"}`, http.StatusServiceUnavailable)
		return
	}

	reply, err := c.AI.Chat(r.Context(), request.Message, request.History)
	if err != nil {
		log.Printf("Chat failed: %v", err)
		http.Error(w, `{"error": "Failed to get chat reply"}`, http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]string{"reply": reply})
}
