package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type NotificationService struct {
	notifications NotificationStore
	messages      MessageStore
	users         UserStore
	cars          CarStore
	now           func() time.Time
}

func NewNotificationService(notifications NotificationStore, messages MessageStore, users UserStore, cars CarStore) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		messages:      messages,
		users:         users,
		cars:          cars,
		now:           time.Now,
	}
}

// CreateForMessage stores inquiry_received for the receiver and, unless the sender owns the car,
// inquiry_sent for the sender.
func (s *NotificationService) CreateForMessage(ctx context.Context, msg *models.Message) ([]*models.Notification, error) {
	senderName := s.userName(ctx, msg.SenderID)
	receiverName := s.userName(ctx, msg.ReceiverID)

	carName := "a car"
	senderOwnsCar := false
	if car, err := s.cars.FindByID(ctx, msg.CarID); err == nil {
		carName = car.DisplayName()
		senderOwnsCar = car.OwnerID == msg.SenderID
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to load car: %w", err)
	}

	now := s.now()
	preview := messagePreview(msg.Content, msg.Images)
	base := models.Notification{
		MessageID:  msg.ID.Hex(),
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		CarID:      msg.CarID,
		Body:       preview,
		CreatedAt:  now,
	}

	received := base
	received.UserID = msg.ReceiverID
	received.Type = models.NotificationInquiryReceived
	received.Title = fmt.Sprintf("New inquiry from %s about %s", senderName, carName)
	out := []*models.Notification{&received}

	if !senderOwnsCar {
		sent := base
		sent.UserID = msg.SenderID
		sent.Type = models.NotificationInquirySent
		sent.Title = fmt.Sprintf("Inquiry sent to %s about %s", receiverName, carName)
		out = append(out, &sent)
	}

	if err := s.notifications.CreateMany(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NotificationService) CreateForMessageID(ctx context.Context, messageID string) ([]*models.Notification, error) {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return s.CreateForMessage(ctx, msg)
}

func (s *NotificationService) List(ctx context.Context, filter models.NotificationFilter) (*models.NotificationListResponse, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	items, total, unread, err := s.notifications.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &models.NotificationListResponse{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) (*models.Notification, error) {
	n, err := s.notifications.MarkRead(ctx, id, userID, s.now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, filter models.NotificationFilter) (*models.MarkAllReadResponse, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	modified, err := s.notifications.MarkAllRead(ctx, filter, s.now())
	if err != nil {
		return nil, err
	}
	return &models.MarkAllReadResponse{Modified: modified}, nil
}

func normalizeFilter(f models.NotificationFilter) (models.NotificationFilter, error) {
	if f.Type != "" && !f.Type.IsValid() {
		verrs := models.ValidationErrors{}
		verrs.Add("type", "type must be inquiry_received or inquiry_sent")
		return f, verrs
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	return f, nil
}

func (s *NotificationService) userName(ctx context.Context, id string) string {
	if u, err := s.users.FindByID(ctx, id); err == nil && u.Name != "" {
		return u.Name
	}
	return unknownSender
}

func messagePreview(content string, images []string) string {
	content = strings.TrimSpace(content)
	if content == "" && len(images) > 0 {
		return photoBody
	}
	return content
}
