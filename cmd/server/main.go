package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"datadetective/adapters/ingest"
	"datadetective/adapters/postgres"
	"datadetective/analyzer"
	"datadetective/domain/record"
	"datadetective/internal/config"
	"datadetective/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	records, err := loadRecords(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}
	log.Printf("Loaded %d records", len(records))

	server := ui.NewServer(analyzer.New(records), ui.Config{
		Threshold:  cfg.Report.Threshold,
		ReportPath: cfg.Report.Path,
	})

	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func loadRecords(ctx context.Context, cfg *config.Config) (record.Dataset, error) {
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return postgres.NewRecordSource(db).Fetch(ctx, cfg.Database.Table)
	}
	return ingest.NewDataReader(cfg.Data.File).ReadRecords()
}
