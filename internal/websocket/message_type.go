package websocket

import (
	"encoding/json"
	"time"
)

// EventType is the event name carried by every frame.
type EventType string

const (
	// client -> server
	EventAddUser         EventType = "addUser"
	EventJoinRoom        EventType = "joinRoom"
	EventLeaveRoom       EventType = "leaveRoom"
	EventSendMessage     EventType = "sendMessage"
	EventConfirmDelivery EventType = "confirmDelivery"

	// server -> client
	EventGetUsers         EventType = "getUsers"
	EventRoomJoined       EventType = "roomJoined"
	EventGetMessage       EventType = "getMessage"
	EventMessageDelivered EventType = "messageDelivered"
	EventMessageUpdated   EventType = "messageUpdated"
	EventMessageDeleted   EventType = "messageDeleted"
	EventRefreshMessages  EventType = "refreshMessages"
	EventError            EventType = "error"
)

func (e EventType) String() string {
	return string(e)
}

// IsInbound reports whether clients may send this event.
func (e EventType) IsInbound() bool {
	switch e {
	case EventAddUser, EventJoinRoom, EventLeaveRoom, EventSendMessage, EventConfirmDelivery:
		return true
	default:
		return false
	}
}

// Envelope is one websocket frame: {"event": "...", "data": {...}}.
type Envelope struct {
	Event EventType       `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func NewEnvelope(event EventType, data interface{}) (*Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Envelope{Event: event, Data: raw}, nil
}

type AddUserData struct {
	UserID string `json:"userId"`
}

type RoomData struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	CarID      string `json:"carId"`
}

type RoomJoinedData struct {
	RoomID string `json:"roomId"`
}

type SendMessageData struct {
	MessageID  string    `json:"messageId,omitempty"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	CarID      string    `json:"carId"`
	Text       string    `json:"text"`
	Images     []string  `json:"images,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ConfirmDeliveryData struct {
	MessageID string `json:"messageId"`
	SenderID  string `json:"senderId"`
	CarID     string `json:"carId"`
}

type MessageDeliveredData struct {
	MessageID   string    `json:"messageId"`
	ReceiverID  string    `json:"receiverId"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

type UsersData struct {
	Users []string `json:"users"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
