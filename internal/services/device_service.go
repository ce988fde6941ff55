package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/push"
)

type DeviceService struct {
	users  UserStore
	sender PushSender
}

func NewDeviceService(users UserStore, sender PushSender) *DeviceService {
	return &DeviceService{users: users, sender: sender}
}

// RegisterToken stores the token for the user once; registering it again is a no-op.
func (s *DeviceService) RegisterToken(ctx context.Context, userID string, req models.RegisterTokenRequest) (*models.RegisterTokenResponse, error) {
	token := strings.TrimSpace(req.Token)
	if !push.IsExpoPushToken(token) {
		verrs := models.ValidationErrors{}
		verrs.Add("token", "not an Expo push token")
		return nil, verrs
	}

	exists, err := s.users.HasDeviceToken(ctx, userID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check device token: %w", err)
	}
	if exists {
		return &models.RegisterTokenResponse{Registered: true, Duplicate: true}, nil
	}

	platform := req.Platform
	if platform == "" {
		platform = "unknown"
	}
	inserted, err := s.users.AddDeviceToken(ctx, &models.DeviceToken{
		UserID:   userID,
		Token:    token,
		Platform: platform,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Device token registered", "userId", userID, "platform", platform, "duplicate", !inserted)
	return &models.RegisterTokenResponse{Registered: true, Duplicate: !inserted}, nil
}

// SendDirect pushes to explicit tokens without any presence or dedup logic.
func (s *DeviceService) SendDirect(ctx context.Context, req models.SendNotificationRequest) ([]push.Ticket, error) {
	return s.sender.Send(ctx, push.Notification{
		Tokens: req.Tokens,
		Title:  req.Title,
		Body:   req.Body,
		Data:   req.Data,
	})
}

// PruneToken forgets a token the push provider no longer accepts.
func (s *DeviceService) PruneToken(ctx context.Context, token string) {
	if err := s.users.RemoveDeviceToken(ctx, token); err != nil {
		slog.Error("Failed to remove unregistered device token", "error", err)
	}
}
