package main

// @title           Rental Chat Service API
// @version         1.0
// @description     Messaging, notifications and push delivery for the car rental marketplace
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "rental-chat-service/docs"
	"rental-chat-service/internal/adapters/storage"
	"rental-chat-service/internal/api/handlers"
	"rental-chat-service/internal/api/routes"
	"rental-chat-service/internal/config"
	"rental-chat-service/internal/database"
	"rental-chat-service/internal/outbox"
	"rental-chat-service/internal/presence"
	"rental-chat-service/internal/push"
	mongorepo "rental-chat-service/internal/repositories/mongo"
	"rental-chat-service/internal/repositories/postgres"
	"rental-chat-service/internal/services"
	"rental-chat-service/internal/websocket"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.SetupLogger(cfg.Log)
	slog.Info("Starting rental chat server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Relational store: users, device tokens, cars, rentals, reviews
	db, err := database.NewSQLConnection(&cfg.Database)
	if err != nil {
		return err
	}

	// Document store: messages, notifications, push outbox
	mongoDB, err := database.NewMongoConnection(&cfg.Mongo)
	if err != nil {
		return err
	}
	defer mongoDB.Close(context.Background())
	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		slog.Warn("Failed to ensure mongo indexes", "error", err)
	}

	// Redis is optional; without it presence and dedup stay in this process
	var redisService *services.RedisService
	var registry presence.Registry = presence.NewMemoryRegistry()
	var dedup services.Deduplicator = services.NewMemoryDeduplicator()
	health := map[string]handlers.Pinger{
		"database": database.SQLPinger{DB: db},
		"mongo":    mongoDB,
	}

	redisClient, err := database.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running single-instance", "error", err)
	} else {
		defer redisClient.Close()
		redisService = services.NewRedisService(redisClient)
		dedup = redisService
		health["redis"] = redisClient
		if cfg.Messaging.PresenceBackend == "redis" {
			registry = presence.NewRedisRegistry(redisClient.GetClient(), cfg.Messaging.PresenceTTL)
		}
	}
	slog.Info("Presence backend selected", "backend", fmt.Sprintf("%T", registry))

	uploader, err := storage.NewMinIOClient(&cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init minio: %w", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	carRepo := postgres.NewCarRepository(db)
	rentalRepo := postgres.NewRentalRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	messageRepo := mongorepo.NewMessageRepository(mongoDB)
	notificationRepo := mongorepo.NewNotificationRepository(mongoDB)

	// Push adapter; tokens Expo reports as unregistered are pruned
	var deviceService *services.DeviceService
	expo := push.NewClient(&cfg.Push)
	defer expo.Close()
	pushService := push.NewService(expo,
		push.WithTimeout(cfg.Push.Timeout),
		push.WithReceiptDelay(cfg.Push.ReceiptDelay),
		push.WithUnregisteredHandler(func(ctx context.Context, token string) {
			deviceService.PruneToken(ctx, token)
		}),
	)
	defer pushService.Wait()
	deviceService = services.NewDeviceService(userRepo, pushService)

	var deliverer services.Deliverer
	switch cfg.Messaging.DeliveryMode {
	case "outbox":
		deliverer = outbox.NewStore(mongoDB)
	default:
		deliverer = services.NewInlineDeliverer(pushService, cfg.Push.Timeout)
	}
	slog.Info("Push delivery mode", "mode", cfg.Messaging.DeliveryMode)

	// Services
	dispatcher := services.NewDispatcher(registry, dedup, userRepo, carRepo, deliverer, cfg.Messaging.DedupTTL)
	notificationService := services.NewNotificationService(notificationRepo, messageRepo, userRepo, carRepo)
	messageService := services.NewMessageService(messageRepo, notificationService, uploader, cfg.Messaging.EditWindow)

	// Initialize WebSocket hub
	hub := websocket.NewHub(registry, dispatcher, messageService, redisService)
	messageService.SetRoomNotifier(hub)

	router := routes.NewRouter(routes.Deps{
		MessageService:      messageService,
		NotificationService: notificationService,
		DeviceService:       deviceService,
		RentalService:       services.NewRentalService(rentalRepo, carRepo),
		ReviewService:       services.NewReviewService(reviewRepo, carRepo),
		Notifier:            dispatcher,
		WSHandler:           handlers.NewWSHandler(hub, websocket.NewUpgrader(cfg.Server.AllowedOrigins)),
		HealthHandler:       handlers.NewHealthHandler(health),
		RedisService:        redisService,
		JWTSecret:           cfg.JWT.Secret,
		InternalKey:         cfg.Messaging.InternalKey,
		AllowedOrigins:      cfg.Server.AllowedOrigins,
	})
	router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run()
		return nil
	})

	g.Go(func() error {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Server shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		hub.Stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
		return nil
	})

	err = g.Wait()
	slog.Info("Server stopped")
	return err
}
