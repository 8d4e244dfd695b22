package routes

import (
	"swipess_server/controllers"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// RegisterAIRoutes sets up routes for the generative helpers under
// /api/ai
func RegisterAIRoutes(r *mux.Router, aiService *services.AIService) {
	controller := controllers.NewAIController(aiService)

	aiRouter := r.PathPrefix("/api/ai").Subrouter()
	aiRouter.HandleFunc("/draft", controller.HandleDraft).Methods("POST")
	aiRouter.HandleFunc("/chat", controller.HandleChat).Methods("POST")
}
