package routes

import (
	"swipess_server/controllers"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// RegisterProspectRoutes sets up routes for the owner-side prospecting
// flow under /api/prospects
func RegisterProspectRoutes(r *mux.Router, prospectService *services.ProspectService) {
	controller := controllers.NewProspectController(prospectService)

	prospectRouter := r.PathPrefix("/api/prospects").Subrouter()
	prospectRouter.HandleFunc("/sessions", controller.HandleOpenSession).Methods("POST")
	prospectRouter.HandleFunc("/sessions/{sessionId}", controller.HandleGetSession).Methods("GET")
	prospectRouter.HandleFunc("/sessions/{sessionId}/swipe", controller.HandleSwipe).Methods("POST")
	prospectRouter.HandleFunc("/sessions/{sessionId}/return", controller.HandleReturn).Methods("POST")
}
