package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"rental-chat-service/internal/config"
	"rental-chat-service/internal/database"
	"rental-chat-service/internal/repositories"
	"rental-chat-service/internal/repositories/postgres"
)

// moderate disables or re-enables a user and prints the disable history.
//
//	go run ./cmd/moderate -user <id> -reason "spam" -by <admin id>
//	go run ./cmd/moderate -user <id> -enable
//	go run ./cmd/moderate -user <id> -history
func main() {
	userID := flag.String("user", "", "user id")
	reason := flag.String("reason", "", "reason for disabling")
	by := flag.String("by", "admin", "moderator id")
	enable := flag.Bool("enable", false, "re-enable the user")
	history := flag.Bool("history", false, "only print the disable history")
	flag.Parse()

	if err := run(*userID, *reason, *by, *enable, *history); err != nil {
		slog.Error("Moderation failed", "error", err)
		os.Exit(1)
	}
}

func run(userID, reason, by string, enable, history bool) error {
	if userID == "" {
		return errors.New("-user is required")
	}
	if !enable && !history && reason == "" {
		return errors.New("-reason is required to disable a user")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.SetupLogger(cfg.Log)

	db, err := database.NewSQLConnection(&cfg.Database)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	users := postgres.NewUserRepository(db)

	switch {
	case history:
	case enable:
		if err := users.Enable(ctx, userID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("user %s not found", userID)
			}
			return err
		}
		slog.Info("User re-enabled", "userId", userID)
	default:
		record, err := users.Disable(ctx, userID, reason, by)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("user %s not found", userID)
			}
			return err
		}
		slog.Info("User disabled", "userId", userID, "recordId", record.ID)
	}

	records, err := users.DisableHistory(ctx, userID)
	if err != nil {
		return err
	}
	for _, r := range records {
		state := "open"
		if r.ReenabledAt != nil {
			state = "closed " + r.ReenabledAt.Format(time.RFC3339)
		}
		fmt.Printf("#%d %s by %s: %s (%s)\n", r.ID, r.DisabledAt.Format(time.RFC3339), r.DisabledBy, r.Reason, state)
	}
	return nil
}
