package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"swipess_server/services"
)

// S3Controller issues presigned URLs for listing image uploads and
// reads.
type S3Controller struct {
	S3 *services.S3Service
}

// NewS3Controller initializes the controller. A nil service means
// storage is not configured.
func NewS3Controller(s3 *services.S3Service) *S3Controller {
	return &S3Controller{S3: s3}
}

// HandleGeneratePresignedURL generates a presigned URL for uploading a
// listing image
func (c *S3Controller) HandleGeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	if c.S3 == nil {
		http.Error(w, `{"error": "Storage is not configured"}`, http.StatusServiceUnavailable)
		return
	}

	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "Missing required fields"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.S3.GenerateUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		http.Error(w, `{"error": "Failed to generate pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"url": url, "fileName": key})
}

// HandleGetPresignedReadURL generates a presigned URL for reading a
// stored image
func (c *S3Controller) HandleGetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	if c.S3 == nil {
		http.Error(w, `{"error": "Storage is not configured"}`, http.StatusServiceUnavailable)
		return
	}

	var payload struct {
		Key string `json:"key"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.Key == "" {
		http.Error(w, `{"error": "Missing required fields"}`, http.StatusBadRequest)
		return
	}

	url, err := c.S3.GenerateReadURL(payload.Key)
	if err != nil {
		log.Printf("Error generating read URL: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"url": url})
}
