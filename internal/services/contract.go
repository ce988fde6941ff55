//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package services

import (
	"context"
	"mime/multipart"
	"time"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/push"
)

type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	FindByID(ctx context.Context, id string) (*models.Message, error)
	FindConversation(ctx context.Context, userA, userB, carID string) ([]models.Message, error)
	UpdateContent(ctx context.Context, id, senderID, content string, notBefore, now time.Time) (*models.Message, error)
	SoftDelete(ctx context.Context, id, senderID string, notBefore, now time.Time) (*models.Message, error)
	MarkDelivered(ctx context.Context, id, receiverID string, at time.Time) error
	MarkRead(ctx context.Context, id, receiverID string, at time.Time) (*models.Message, error)
}

type NotificationStore interface {
	CreateMany(ctx context.Context, notifications []*models.Notification) error
	List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, int64, int64, error)
	MarkRead(ctx context.Context, id, userID string, at time.Time) (*models.Notification, error)
	MarkAllRead(ctx context.Context, filter models.NotificationFilter, at time.Time) (int64, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	AddDeviceToken(ctx context.Context, token *models.DeviceToken) (bool, error)
	HasDeviceToken(ctx context.Context, userID, token string) (bool, error)
	DeviceTokens(ctx context.Context, userID string) ([]string, error)
	RemoveDeviceToken(ctx context.Context, token string) error
}

type CarStore interface {
	FindByID(ctx context.Context, id string) (*models.Car, error)
}

type RentalStore interface {
	Create(ctx context.Context, rental *models.Rental) error
	FindByRenter(ctx context.Context, renterID string) ([]models.Rental, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByCar(ctx context.Context, carID string) ([]models.Review, error)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type PushSender interface {
	Send(ctx context.Context, n push.Notification) ([]push.Ticket, error)
}

// Deliverer takes ownership of a push intent once it has been deduplicated.
type Deliverer interface {
	Deliver(ctx context.Context, dedupKey string, n push.Notification) error
}

type PresenceChecker interface {
	Lookup(ctx context.Context, userID string) (string, bool, error)
}

// Deduplicator claims a key once. Later claims within ttl report false and the winner's value.
type Deduplicator interface {
	Claim(ctx context.Context, key, value string, ttl time.Duration) (bool, string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RoomNotifier tells connected clients that a message changed after it was sent.
type RoomNotifier interface {
	MessageUpdated(ctx context.Context, msg models.MessageResponse)
	MessageDeleted(ctx context.Context, msg models.MessageResponse)
}

// MessageNotifier is the single entry point for message push notifications.
type MessageNotifier interface {
	NotifyMessage(ctx context.Context, ev MessageEvent)
}
