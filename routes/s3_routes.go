package routes

import (
	"swipess_server/controllers"
	"swipess_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for S3-related operations
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	r.HandleFunc("/generate-presigned-url", controller.HandleGeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.HandleGetPresignedReadURL).Methods("POST")
}
