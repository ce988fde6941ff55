package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"rental-chat-service/internal/config"
	"rental-chat-service/internal/database"
	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories/postgres"

	"github.com/golang-jwt/jwt/v5"
)

type seedUser struct {
	name  string
	email string
}

var seedUsers = []seedUser{
	{"Olivia Owner", "olivia@rental.dev"},
	{"Alice Renter", "alice@rental.dev"},
	{"Bob Renter", "bob@rental.dev"},
	{"Mallory Suspended", "mallory@rental.dev"},
}

const suspendedEmail = "mallory@rental.dev"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg.Log)

	slog.Info("Starting database seeding...")

	db, err := database.NewSQLConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db)
	carRepo := postgres.NewCarRepository(db)

	slog.Info("Creating initial users...")
	users := make([]*models.User, 0, len(seedUsers))
	for _, u := range seedUsers {
		user, err := userRepo.FindByEmail(ctx, u.email)
		if err != nil {
			user = &models.User{Name: u.name, Email: u.email}
			if err := userRepo.Create(ctx, user); err != nil {
				slog.Error("Failed to create user", "email", u.email, "error", err)
				os.Exit(1)
			}
			slog.Info("Created user", "email", u.email, "id", user.ID)
		} else {
			slog.Info("User already exists", "email", u.email, "id", user.ID)
		}
		users = append(users, user)
	}

	// One moderated account so clients can exercise the disabled state
	for _, u := range users {
		if u.Email != suspendedEmail {
			continue
		}
		record, err := userRepo.Disable(ctx, u.ID, "Seeded moderation example", "seed")
		if err != nil {
			slog.Error("Failed to disable user", "email", u.Email, "error", err)
			os.Exit(1)
		}
		u.Disabled = true
		slog.Info("Disabled user", "email", u.Email, "recordId", record.ID)
	}

	owner := users[0]
	slog.Info("Creating initial cars...")
	cars := []*models.Car{
		{OwnerID: owner.ID, Brand: "Tesla", Model: "Model 3", IsAutoApproved: true},
		{OwnerID: owner.ID, Brand: "Toyota", Model: "Corolla"},
	}
	for _, car := range cars {
		if err := carRepo.Create(ctx, car); err != nil {
			slog.Warn("Car might already exist", "car", car.DisplayName(), "error", err)
			continue
		}
		slog.Info("Created car", "car", car.DisplayName(), "id", car.ID, "autoApproved", car.IsAutoApproved)
	}

	// Tokens for trying the API by hand
	for _, u := range users {
		token, err := issueToken(cfg.JWT, u)
		if err != nil {
			slog.Error("Failed to sign token", "email", u.Email, "error", err)
			continue
		}
		fmt.Printf("%s (%s)\n  Bearer %s\n", u.Name, u.ID, token)
	}

	slog.Info("Database seeding completed successfully!")
}

func issueToken(cfg config.JWTConfig, u *models.User) (string, error) {
	ttl := cfg.ExpirationTime
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
