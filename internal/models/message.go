package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeletedMessagePlaceholder replaces the content of soft-deleted messages in responses.
const DeletedMessagePlaceholder = "This message was deleted"

/** --------------------ENTITIES-------------------- */
// Message is a chat message between a renter and an owner about one car.
// Deleting only flips IsDeleted; documents are never removed.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID    string             `bson:"senderId" json:"senderId"`
	ReceiverID  string             `bson:"receiverId" json:"receiverId"`
	CarID       string             `bson:"carId" json:"carId"`
	Content     string             `bson:"content" json:"content"`
	Images      []string           `bson:"images,omitempty" json:"images"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	IsEdited    bool               `bson:"isEdited" json:"isEdited"`
	IsRead      bool               `bson:"isRead" json:"isRead"`
	ReadAt      *time.Time         `bson:"readAt,omitempty" json:"readAt,omitempty"`
	IsDelivered bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EditableUntil is the end of the edit window that starts at creation.
func (m *Message) EditableUntil(window time.Duration) time.Time {
	return m.CreatedAt.Add(window)
}

// ToResponse renders the message for clients; deleted messages keep their metadata only.
func (m *Message) ToResponse() MessageResponse {
	resp := MessageResponse{
		ID:          m.ID.Hex(),
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		CarID:       m.CarID,
		Content:     m.Content,
		Images:      m.Images,
		IsDeleted:   m.IsDeleted,
		IsEdited:    m.IsEdited,
		IsRead:      m.IsRead,
		ReadAt:      m.ReadAt,
		IsDelivered: m.IsDelivered,
		DeliveredAt: m.DeliveredAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if m.IsDeleted {
		resp.Content = DeletedMessagePlaceholder
		resp.Images = []string{}
	}
	return resp
}

/** -------------------- DTOs -------------------- */
// Request
type CreateMessageRequest struct {
	ReceiverID string `json:"receiverId" form:"receiverId"`
	CarID      string `json:"carId" form:"carId"`
	Content    string `json:"content" form:"content"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Response
type MessageResponse struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"senderId"`
	ReceiverID  string     `json:"receiverId"`
	CarID       string     `json:"carId"`
	Content     string     `json:"content"`
	Images      []string   `json:"images"`
	IsDeleted   bool       `json:"isDeleted"`
	IsEdited    bool       `json:"isEdited"`
	IsRead      bool       `json:"isRead"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	IsDelivered bool       `json:"isDelivered"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ConversationResponse struct {
	Items []MessageResponse `json:"items"`
	Total int               `json:"total"`
}
