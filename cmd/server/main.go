package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pagovia/settlements/internal/api"
	"github.com/pagovia/settlements/internal/ingestion"
	"github.com/pagovia/settlements/internal/repository"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "settlements.db"
	}

	log.Printf("Initializing database at %s", dbPath)
	db, err := repository.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to init DB: %v", err)
	}
	defer db.Close()

	reportRepo := repository.NewReportRepo(db)
	ingestionSvc := ingestion.NewService(reportRepo)

	router := api.NewRouter(reportRepo, ingestionSvc)

	log.Printf("Pagovia POS Settlement & Commission Service")
	log.Printf("Listening on http://localhost:%s", port)
	log.Printf("API base: http://localhost:%s/api/v1", port)
	log.Printf("")
	log.Printf("Endpoints:")
	log.Printf("  POST   /api/v1/reports/ingest")
	log.Printf("  POST   /api/v1/reports/detect")
	log.Printf("  GET    /api/v1/reports")
	log.Printf("  GET    /api/v1/reports/{id}")
	log.Printf("  GET    /api/v1/reports/{id}/transactions")
	log.Printf("  GET    /api/v1/reports/{id}/csv")
	log.Printf("  GET    /api/v1/profiles")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
