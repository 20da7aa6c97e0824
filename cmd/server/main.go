package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"polisched/internal/auth"
	"polisched/internal/config"
	"polisched/internal/fetch"
	"polisched/internal/handler"
	"polisched/internal/port"
	"polisched/internal/repository/postgres"
	"polisched/internal/router"
	"polisched/internal/service"
	s3storage "polisched/internal/storage/s3"

	// Register the insurer parsers.
	_ "polisched/internal/insurer/discovery"
	_ "polisched/internal/insurer/generic"
	_ "polisched/internal/insurer/hollard"
	_ "polisched/internal/insurer/santam"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Record persistence is optional
	var db *sqlx.DB
	var recordRepo port.ParseRecordRepository
	if cfg.DB.Enabled {
		db, err = postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		recordRepo = postgres.NewParseRecordRepo(db)
	}

	// Object storage is optional
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	fetcher := fetch.New(cfg.Fetch)
	authSvc := auth.NewService(&cfg.JWT)
	parseSvc := service.NewParseService(fetcher, &cfg.Parse, recordRepo, storage, &cfg.S3)

	// Initialize handlers
	parseH := handler.NewParseHandler(parseSvc)
	doctypeH := handler.NewDocTypeHandler()
	healthH := handler.NewHealthHandler(db)

	var recordH *handler.RecordHandler
	if recordRepo != nil {
		recordH = handler.NewRecordHandler(service.NewRecordService(recordRepo, storage, &cfg.S3))
	}

	// Setup router
	r := router.Setup(cfg, authSvc, parseH, doctypeH, recordH, healthH)

	log.Printf("Server starting on %s (db=%v, s3=%v, auth=%v)",
		cfg.Server.Port, cfg.DB.Enabled, cfg.S3.Enabled, cfg.Auth.Enabled)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
