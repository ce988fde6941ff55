package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"
)

const DefaultEditWindow = 20 * time.Minute

type MessageService struct {
	messages      MessageStore
	notifications *NotificationService
	uploader      ImageUploader
	rooms         RoomNotifier
	editWindow    time.Duration
	now           func() time.Time
}

func NewMessageService(messages MessageStore, notifications *NotificationService, uploader ImageUploader, editWindow time.Duration) *MessageService {
	if editWindow <= 0 {
		editWindow = DefaultEditWindow
	}
	return &MessageService{
		messages:      messages,
		notifications: notifications,
		uploader:      uploader,
		editWindow:    editWindow,
		now:           time.Now,
	}
}

// SetRoomNotifier connects the service to the socket gateway once it exists.
func (s *MessageService) SetRoomNotifier(rooms RoomNotifier) {
	s.rooms = rooms
}

type CreateMessageInput struct {
	SenderID string
	models.CreateMessageRequest
	Images []*multipart.FileHeader
}

func (s *MessageService) Create(ctx context.Context, in CreateMessageInput) (*models.MessageResponse, error) {
	in.Content = strings.TrimSpace(in.Content)

	verrs := models.ValidationErrors{}
	if in.ReceiverID == "" {
		verrs.Add("receiverId", "receiverId is required")
	} else if in.ReceiverID == in.SenderID {
		verrs.Add("receiverId", "cannot send a message to yourself")
	}
	if in.CarID == "" {
		verrs.Add("carId", "carId is required")
	}
	if in.Content == "" && len(in.Images) == 0 {
		verrs.Add("content", "content or at least one image is required")
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	images := s.uploadImages(ctx, in.Images)
	if in.Content == "" && len(images) == 0 {
		verrs.Add("images", "no image could be stored")
		return nil, verrs
	}

	now := s.now()
	msg := &models.Message{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		CarID:      in.CarID,
		Content:    in.Content,
		Images:     images,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if s.notifications != nil {
		if _, err := s.notifications.CreateForMessage(ctx, msg); err != nil {
			slog.Error("Failed to create message notifications", "messageId", msg.ID.Hex(), "error", err)
		}
	}

	resp := msg.ToResponse()
	return &resp, nil
}

func (s *MessageService) uploadImages(ctx context.Context, files []*multipart.FileHeader) []string {
	if len(files) == 0 {
		return nil
	}
	if s.uploader == nil {
		slog.Warn("Image storage is not configured, dropping attachments", "count", len(files))
		return nil
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.uploader.UploadImage(ctx, f)
		if err != nil {
			slog.Error("Failed to upload image", "filename", f.Filename, "error", err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (s *MessageService) FindByID(ctx context.Context, id string) (*models.MessageResponse, error) {
	msg, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := msg.ToResponse()
	return &resp, nil
}

// Conversation lists the non-deleted messages between userID and otherID, optionally for one car.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID, carID string) (*models.ConversationResponse, error) {
	msgs, err := s.messages.FindConversation(ctx, userID, otherID, carID)
	if err != nil {
		return nil, err
	}
	items := make([]models.MessageResponse, 0, len(msgs))
	for i := range msgs {
		items = append(items, msgs[i].ToResponse())
	}
	return &models.ConversationResponse{Items: items, Total: len(items)}, nil
}

func (s *MessageService) Edit(ctx context.Context, userID, messageID, content string) (*models.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	now := s.now()
	if err := s.checkModifiable(ctx, userID, messageID, now); err != nil {
		return nil, err
	}

	updated, err := s.messages.UpdateContent(ctx, messageID, userID, content, now.Add(-s.editWindow), now)
	if err != nil {
		return nil, s.explainNoMatch(ctx, messageID, err)
	}

	resp := updated.ToResponse()
	if s.rooms != nil {
		s.rooms.MessageUpdated(ctx, resp)
	}
	return &resp, nil
}

func (s *MessageService) Delete(ctx context.Context, userID, messageID string) (*models.MessageResponse, error) {
	now := s.now()
	if err := s.checkModifiable(ctx, userID, messageID, now); err != nil {
		return nil, err
	}

	deleted, err := s.messages.SoftDelete(ctx, messageID, userID, now.Add(-s.editWindow), now)
	if err != nil {
		return nil, s.explainNoMatch(ctx, messageID, err)
	}

	resp := deleted.ToResponse()
	if s.rooms != nil {
		s.rooms.MessageDeleted(ctx, resp)
	}
	return &resp, nil
}

// checkModifiable picks the error to report; the store update re-checks the same guards atomically.
func (s *MessageService) checkModifiable(ctx context.Context, userID, messageID string, now time.Time) error {
	msg, err := s.find(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != userID {
		return ErrForbidden
	}
	if msg.IsDeleted {
		return ErrMessageDeleted
	}
	if now.After(msg.EditableUntil(s.editWindow)) {
		return ErrEditWindowExpired
	}
	return nil
}

// explainNoMatch maps a lost race on the guarded update to the guard that failed.
func (s *MessageService) explainNoMatch(ctx context.Context, messageID string, err error) error {
	if !errors.Is(err, repositories.ErrNoMatch) {
		return err
	}
	msg, ferr := s.find(ctx, messageID)
	if ferr != nil {
		return ferr
	}
	if msg.IsDeleted {
		return ErrMessageDeleted
	}
	return ErrEditWindowExpired
}

func (s *MessageService) MarkRead(ctx context.Context, userID, messageID string) (*models.MessageResponse, error) {
	msg, err := s.find(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverID != userID {
		return nil, ErrForbidden
	}
	updated, err := s.messages.MarkRead(ctx, messageID, userID, s.now())
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

// MarkDelivered records the receiver's delivery confirmation and returns the message.
func (s *MessageService) MarkDelivered(ctx context.Context, messageID, receiverID string) (*models.Message, error) {
	msg, err := s.find(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverID != receiverID {
		return nil, ErrForbidden
	}
	if err := s.messages.MarkDelivered(ctx, messageID, receiverID, s.now()); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) find(ctx context.Context, id string) (*models.Message, error) {
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return msg, nil
}
