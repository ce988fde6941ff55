package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rental-chat-service/internal/adapters/kafka"
	"rental-chat-service/internal/config"
	"rental-chat-service/internal/database"
	"rental-chat-service/internal/outbox"
	"rental-chat-service/internal/push"
	"rental-chat-service/internal/repositories/postgres"
	"rental-chat-service/internal/services"

	"golang.org/x/sync/errgroup"
)

// The worker moves push intents from the mongo outbox to Kafka and delivers them to Expo.
func main() {
	if err := run(); err != nil {
		slog.Error("Worker exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.SetupLogger(cfg.Log)
	slog.Info("Starting push worker", "topic", cfg.Kafka.PushTopic, "group", cfg.Kafka.ConsumerGroup)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoDB, err := database.NewMongoConnection(&cfg.Mongo)
	if err != nil {
		return err
	}
	defer mongoDB.Close(context.Background())

	db, err := database.NewSQLConnection(&cfg.Database)
	if err != nil {
		return err
	}

	producer, err := kafka.NewPushProducer(&cfg.Kafka)
	if err != nil {
		return err
	}
	defer producer.Close()

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
	deviceService = services.NewDeviceService(postgres.NewUserRepository(db), pushService)

	relay := outbox.NewRelay(outbox.NewStore(mongoDB), producer, cfg.Kafka.PushTopic,
		cfg.Messaging.OutboxPollPeriod, cfg.Messaging.OutboxBatchSize, cfg.Messaging.OutboxMaxAttempt)
	reader := outbox.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.PushTopic, cfg.Kafka.ConsumerGroup)
	consumer := outbox.NewConsumer(reader, pushService)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return relay.Run(gctx) })
	g.Go(func() error { return consumer.Run(gctx) })

	err = g.Wait()
	slog.Info("Push worker stopped")
	return err
}
