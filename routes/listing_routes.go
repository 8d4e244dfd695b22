package routes

import (
	"swipess_server/controllers"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// RegisterListingRoutes sets up routes for catalog operations under
// /api/listings
func RegisterListingRoutes(r *mux.Router, catalog *services.CatalogService, realtime *services.RealtimeService) {
	controller := controllers.NewListingController(catalog, realtime)

	listingRouter := r.PathPrefix("/api/listings").Subrouter()
	listingRouter.HandleFunc("", controller.HandleGetListings).Methods("GET")
	listingRouter.HandleFunc("", controller.HandlePublishListing).Methods("POST")
	listingRouter.HandleFunc("/events", controller.HandleIngestEvent).Methods("POST")
	listingRouter.HandleFunc("/alert", controller.HandleGetAlert).Methods("GET")
	listingRouter.HandleFunc("/alert", controller.HandleDismissAlert).Methods("DELETE")
}
