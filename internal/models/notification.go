package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// enum
type NotificationType string

const (
	// NotificationInquiryReceived is stored for the receiver of a message.
	NotificationInquiryReceived NotificationType = "inquiry_received"
	// NotificationInquirySent is stored for a sender who does not own the car.
	NotificationInquirySent NotificationType = "inquiry_sent"
)

func (t NotificationType) IsValid() bool {
	return t == NotificationInquiryReceived || t == NotificationInquirySent
}

/** --------------------ENTITIES-------------------- */
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Type       NotificationType   `bson:"type" json:"type"`
	MessageID  string             `bson:"messageId" json:"messageId"`
	SenderID   string             `bson:"senderId" json:"senderId"`
	ReceiverID string             `bson:"receiverId" json:"receiverId"`
	CarID      string             `bson:"carId" json:"carId"`
	Title      string             `bson:"title" json:"title"`
	Body       string             `bson:"body" json:"body"`
	IsRead     bool               `bson:"isRead" json:"isRead"`
	ReadAt     *time.Time         `bson:"readAt,omitempty" json:"readAt,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
// Request
type CreateMessageNotificationRequest struct {
	MessageID string `json:"messageId" binding:"required"`
}

// NotificationFilter narrows list and mark-all-read queries. Empty Type means all.
type NotificationFilter struct {
	UserID string
	Type   NotificationType
	Page   int
	Limit  int
}

// Response
type NotificationListResponse struct {
	Items       []Notification `json:"items"`
	Total       int64          `json:"total"`
	UnreadCount int64          `json:"unreadCount"`
	Page        int            `json:"page"`
	Limit       int            `json:"limit"`
}

type MarkAllReadResponse struct {
	Modified int64 `json:"modified"`
}
