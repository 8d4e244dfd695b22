package routes

import (
	"swipess_server/controllers"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up routes for feed sessions under /api/feed
func RegisterFeedRoutes(r *mux.Router, feedService *services.FeedService) {
	controller := controllers.NewFeedController(feedService)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()
	feedRouter.HandleFunc("/sessions", controller.HandleOpenSession).Methods("POST")
	feedRouter.HandleFunc("/sessions/{sessionId}", controller.HandleGetSession).Methods("GET")
	feedRouter.HandleFunc("/sessions/{sessionId}/swipe", controller.HandleSwipe).Methods("POST")
	feedRouter.HandleFunc("/sessions/{sessionId}/view", controller.HandleView).Methods("POST")
	feedRouter.HandleFunc("/sessions/{sessionId}/return", controller.HandleReturn).Methods("POST")
	feedRouter.HandleFunc("/sessions/{sessionId}/search", controller.HandleSearch).Methods("POST")
	feedRouter.HandleFunc("/sessions/{sessionId}/filters", controller.HandleSetFilters).Methods("PUT")
	feedRouter.HandleFunc("/sessions/{sessionId}/filters", controller.HandleClearFilters).Methods("DELETE")
	feedRouter.HandleFunc("/sessions/{sessionId}/category", controller.HandleSetCategory).Methods("POST")
}
