package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"swipess_server/config"
	"swipess_server/routes"
	"swipess_server/services"
	"swipess_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// DynamoDB-backed catalog when configured; seed-only otherwise.
	// Missing backend config is a visible setup state, not an error.
	var dynamoService *services.DynamoService
	if cfg.CatalogConfigured() {
		log.Println("Initializing DynamoDB client...")
		dynamoService = &services.DynamoService{Client: services.InitializeDynamoDBClient(cfg.AWSRegion)}
		log.Println("DynamoDB client initialized.")
	} else {
		log.Println("No catalog backend configured; running on seed data only")
	}

	catalogService := services.NewCatalogService(dynamoService, cfg.ListingsTable)

	aiService := services.NewAIService(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	if !aiService.Configured() {
		log.Println("No AI collaborator configured; search parsing and re-ranking degrade to no-ops")
	}

	// Socket.IO push channel for listing-created events
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	realtimeService := services.NewRealtimeService(catalogService, socketServer)
	if err := realtimeService.Bootstrap(context.Background()); err != nil {
		log.Printf("Catalog bootstrap failed, continuing with seed data: %v", err)
	}

	feedService := services.NewFeedService(catalogService, aiService, aiService)
	feedService.Dynamo = dynamoService
	feedService.InteractionsTable = cfg.InteractionsTable

	prospectService := services.NewProspectService()

	var s3Service *services.S3Service
	if cfg.StorageConfigured() {
		s3Service = services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket)
	}

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Swipess")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"status":            "healthy",
			"catalogConfigured": cfg.CatalogConfigured(),
			"storageConfigured": cfg.StorageConfigured(),
			"aiConfigured":      cfg.AIConfigured(),
		}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterListingRoutes(r, catalogService, realtimeService)
	routes.RegisterProspectRoutes(r, prospectService)
	routes.RegisterAIRoutes(r, aiService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
