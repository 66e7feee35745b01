package main

import (
	"log"
	"net/http"

	"predict-web/internal/config"
	"predict-web/internal/handlers"
	"predict-web/internal/metrics"
	"predict-web/internal/model"
	"predict-web/internal/storage"
	"predict-web/internal/web"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func main() {
	cfg := config.Load()

	log.Printf("Loading model from: %s", cfg.ModelPath)

	modelServer, err := model.NewServer(cfg.ModelPath, cfg.MetadataPath)
	if err != nil {
		log.Fatalf("Failed to initialize model server: %v", err)
	}
	defer modelServer.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	archive, err := storage.NewArchive(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload archive: %v", err)
	}

	handler := handlers.NewHandler(modelServer, renderer, archive, cfg.MaxUploadMemory)

	http.HandleFunc("/", enableCORS(handler.Index))
	http.HandleFunc("/health", enableCORS(handler.Health))
	http.HandleFunc("/prediction", enableCORS(handler.Predict))
	http.Handle("/metrics", metrics.Handler())

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Model loaded: %s", cfg.ModelPath)
	log.Printf("Classes: %v", modelServer.Metadata.Classes)
	if cfg.UploadDir != "" {
		log.Printf("Archiving uploads to: %s", cfg.UploadDir)
	}
	log.Println("Endpoints:")
	log.Println("  GET  /           - Upload form")
	log.Println("  GET  /health     - Health check")
	log.Println("  POST /prediction - Predict from image upload")
	log.Println("  GET  /metrics    - Prometheus metrics")

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
