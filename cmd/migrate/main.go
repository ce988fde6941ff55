package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"rental-chat-service/internal/config"
	"rental-chat-service/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg.Log)

	slog.Info("Starting database migration...")

	db, err := database.NewSQLConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	slog.Info("Running GORM auto-migration...")
	if err := database.Migrate(db); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	mongoDB, err := database.NewMongoConnection(&cfg.Mongo)
	if err != nil {
		slog.Error("Failed to connect to mongodb", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoDB.Close(ctx)

	slog.Info("Ensuring mongo indexes...")
	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		slog.Error("Failed to create mongo indexes", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed successfully!")
}
