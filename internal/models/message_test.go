package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMessageToResponse(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &Message{
		ID:         primitive.NewObjectID(),
		SenderID:   "u-1",
		ReceiverID: "u-2",
		CarID:      "car-1",
		Content:    "Is it free on Friday?",
		CreatedAt:  created,
	}

	resp := msg.ToResponse()
	assert.Equal(t, msg.ID.Hex(), resp.ID)
	assert.Equal(t, "Is it free on Friday?", resp.Content)
	assert.NotNil(t, resp.Images)
	assert.Empty(t, resp.Images)

	msg.Images = []string{"http://minio/messages/a.jpg"}
	msg.IsDeleted = true
	resp = msg.ToResponse()
	assert.True(t, resp.IsDeleted)
	assert.Equal(t, DeletedMessagePlaceholder, resp.Content)
	assert.Empty(t, resp.Images)
	assert.Equal(t, "u-1", resp.SenderID)
}

func TestEditableUntil(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &Message{CreatedAt: created}
	assert.Equal(t, created.Add(20*time.Minute), msg.EditableUntil(20*time.Minute))
}

func TestNotificationTypeIsValid(t *testing.T) {
	assert.True(t, NotificationInquiryReceived.IsValid())
	assert.True(t, NotificationInquirySent.IsValid())
	assert.False(t, NotificationType("inquiry").IsValid())
}
