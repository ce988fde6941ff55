package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/presence"
	"rental-chat-service/internal/services"

	"github.com/redis/go-redis/v9"
)

var ErrClientDisconnected = errors.New("client disconnected")

const (
	notifyTimeout   = 15 * time.Second
	presenceTimeout = 5 * time.Second
)

// DeliveryMarker records delivery confirmations coming from receivers.
type DeliveryMarker interface {
	MarkDelivered(ctx context.Context, messageID, receiverID string) (*models.Message, error)
}

// busMessage travels over Redis pub/sub between gateway instances.
type busMessage struct {
	Exclude string          `json:"exclude,omitempty"`
	Frame   json.RawMessage `json:"frame"`
}

type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Client lookup by connection id
	conns map[string]*Client

	// Room membership of local clients
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	presence   presence.Registry
	notifier   services.MessageNotifier
	deliveries DeliveryMarker

	// nil keeps fan-out inside this process
	redisService *services.RedisService
	pubsub       *redis.PubSub

	ctx    context.Context
	cancel context.CancelFunc

	mu sync.RWMutex
}

func NewHub(registry presence.Registry, notifier services.MessageNotifier, deliveries DeliveryMarker, redisService *services.RedisService) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:      make(map[*Client]bool),
		conns:        make(map[string]*Client),
		rooms:        make(map[string]map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		presence:     registry,
		notifier:     notifier,
		deliveries:   deliveries,
		redisService: redisService,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (h *Hub) Run() {
	if h.redisService != nil {
		h.pubsub = h.redisService.PSubscribe(h.ctx, "ws:*")
		go h.redisListener()
	}

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-h.ctx.Done():
			slog.Info("WebSocket hub shutting down")
			return
		}
	}
}

// Stop closes every local connection and removes its presence before returning,
// so users served by this instance show as offline until they reconnect.
func (h *Hub) Stop() {
	h.cancel()
	if h.pubsub != nil {
		h.pubsub.Close()
	}

	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[*Client]bool)
	h.conns = make(map[string]*Client)
	h.rooms = make(map[string]map[*Client]bool)
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()

	for _, client := range clients {
		client.close()
		if _, err := h.presence.Remove(ctx, client.id); err != nil {
			slog.Error("Failed to remove presence on shutdown", "clientID", client.id, "userID", client.userID, "error", err)
		}
	}
	slog.Info("WebSocket hub stopped", "clients", len(clients))
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.conns[client.id] = client

	slog.Info("Client registered", "clientID", client.id, "userID", client.userID)
}

// unregisterClient handles disconnect: presence entry, rooms, then the online list.
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	delete(h.conns, client.id)
	for _, roomID := range client.GetRooms() {
		h.leaveLocked(client, roomID)
	}
	h.mu.Unlock()

	client.close()

	// h.ctx may already be cancelled during shutdown
	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()

	userID, err := h.presence.Remove(ctx, client.id)
	if err != nil {
		slog.Error("Failed to remove presence", "clientID", client.id, "error", err)
		return
	}
	slog.Info("Client unregistered", "clientID", client.id, "userID", client.userID)
	if userID != "" {
		h.broadcastUsers(ctx)
	}
}

// HandleEvent runs on the client's read goroutine.
func (h *Hub) HandleEvent(ctx context.Context, client *Client, env *Envelope) {
	if !env.Event.IsInbound() {
		client.sendError("UNKNOWN_EVENT", "Unknown event: "+env.Event.String())
		return
	}

	var err error
	switch env.Event {
	case EventAddUser:
		err = h.handleAddUser(ctx, client, env.Data)
	case EventJoinRoom:
		err = h.handleJoinRoom(client, env.Data)
	case EventLeaveRoom:
		err = h.handleLeaveRoom(client, env.Data)
	case EventSendMessage:
		err = h.handleSendMessage(ctx, client, env.Data)
	case EventConfirmDelivery:
		err = h.handleConfirmDelivery(ctx, client, env.Data)
	}

	if err != nil {
		slog.Warn("Event rejected", "event", env.Event, "clientID", client.id, "userID", client.userID, "error", err)
		client.sendError("INVALID_"+strings.ToUpper(env.Event.String()), err.Error())
	}
}

func (h *Hub) handleAddUser(ctx context.Context, client *Client, raw json.RawMessage) error {
	var data AddUserData
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return errors.New("invalid payload")
		}
	}
	if data.UserID != "" && data.UserID != client.userID {
		return errors.New("userId does not match the authenticated user")
	}

	if err := h.presence.Add(ctx, client.userID, client.id); err != nil {
		return err
	}
	client.online.Store(true)
	h.broadcastUsers(ctx)
	return nil
}

func (h *Hub) handleJoinRoom(client *Client, raw json.RawMessage) error {
	roomID, err := h.roomFor(client, raw)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	h.mu.Unlock()
	client.addRoom(roomID)

	slog.Debug("Client joined room", "clientID", client.id, "roomID", roomID)
	return client.Send(EventRoomJoined, RoomJoinedData{RoomID: roomID})
}

func (h *Hub) handleLeaveRoom(client *Client, raw json.RawMessage) error {
	roomID, err := h.roomFor(client, raw)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.leaveLocked(client, roomID)
	h.mu.Unlock()
	return nil
}

func (h *Hub) leaveLocked(client *Client, roomID string) {
	if members, ok := h.rooms[roomID]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	client.removeRoom(roomID)
}

// roomFor validates a room payload; the client must be one of the two participants.
func (h *Hub) roomFor(client *Client, raw json.RawMessage) (string, error) {
	var data RoomData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", errors.New("invalid payload")
	}
	if data.SenderID == "" || data.ReceiverID == "" || data.CarID == "" {
		return "", errors.New("senderId, receiverId and carId are required")
	}
	if client.userID != data.SenderID && client.userID != data.ReceiverID {
		return "", errors.New("not a participant of this conversation")
	}
	return RoomID(data.SenderID, data.ReceiverID, data.CarID), nil
}

func (h *Hub) handleSendMessage(ctx context.Context, client *Client, raw json.RawMessage) error {
	var data SendMessageData
	if err := json.Unmarshal(raw, &data); err != nil {
		return errors.New("invalid payload")
	}
	data.SenderID = client.userID
	if data.ReceiverID == "" || data.CarID == "" {
		return errors.New("receiverId and carId are required")
	}
	if strings.TrimSpace(data.Text) == "" && len(data.Images) == 0 {
		return errors.New("text or images are required")
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	roomID := RoomID(data.SenderID, data.ReceiverID, data.CarID)
	h.emitRoom(ctx, roomID, EventGetMessage, data, "")

	if h.notifier != nil {
		ev := services.MessageEvent{
			MessageID:  data.MessageID,
			SenderID:   data.SenderID,
			ReceiverID: data.ReceiverID,
			CarID:      data.CarID,
			Content:    data.Text,
			Images:     data.Images,
			Source:     "socket",
		}
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			h.notifier.NotifyMessage(nctx, ev)
		}()
	}
	return nil
}

func (h *Hub) handleConfirmDelivery(ctx context.Context, client *Client, raw json.RawMessage) error {
	var data ConfirmDeliveryData
	if err := json.Unmarshal(raw, &data); err != nil {
		return errors.New("invalid payload")
	}
	if data.MessageID == "" {
		return errors.New("messageId is required")
	}

	// client-supplied ids are only trusted when there is no store to check them against
	if h.deliveries != nil {
		msg, err := h.deliveries.MarkDelivered(ctx, data.MessageID, client.userID)
		switch {
		case errors.Is(err, services.ErrForbidden):
			return errors.New("message was not sent to you")
		case errors.Is(err, services.ErrMessageNotFound):
			return errors.New("message not found")
		case err != nil:
			slog.Error("Failed to mark message delivered", "messageId", data.MessageID, "error", err)
			return errors.New("failed to confirm delivery")
		}
		data.SenderID = msg.SenderID
		data.CarID = msg.CarID
	}
	if data.SenderID == "" {
		return errors.New("senderId is required")
	}

	if connID, online, err := h.presence.Lookup(ctx, data.SenderID); err != nil {
		slog.Warn("Presence lookup failed", "userID", data.SenderID, "error", err)
	} else if online {
		h.emitConn(ctx, connID, EventMessageDelivered, MessageDeliveredData{
			MessageID:   data.MessageID,
			ReceiverID:  client.userID,
			DeliveredAt: time.Now(),
		})
	}

	if data.CarID != "" {
		roomID := RoomID(data.SenderID, client.userID, data.CarID)
		h.emitRoom(ctx, roomID, EventRefreshMessages, RoomJoinedData{RoomID: roomID}, "")
	}
	return nil
}

// refreshPresence runs on every pong of a client that announced itself.
func (h *Hub) refreshPresence(client *Client) {
	if !client.online.Load() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()
	if err := h.presence.Refresh(ctx, client.userID, client.id); err != nil {
		slog.Warn("Failed to refresh presence", "clientID", client.id, "userID", client.userID, "error", err)
	}
}

func (h *Hub) broadcastUsers(ctx context.Context) {
	users, err := h.presence.Online(ctx)
	if err != nil {
		slog.Error("Failed to list online users", "error", err)
		return
	}
	h.emitAll(ctx, EventGetUsers, UsersData{Users: users})
}

// MessageUpdated tells the conversation room about an edit made through the REST API.
func (h *Hub) MessageUpdated(ctx context.Context, msg models.MessageResponse) {
	h.emitRoom(ctx, RoomID(msg.SenderID, msg.ReceiverID, msg.CarID), EventMessageUpdated, msg, "")
}

// MessageDeleted tells the conversation room about a soft delete made through the REST API.
func (h *Hub) MessageDeleted(ctx context.Context, msg models.MessageResponse) {
	h.emitRoom(ctx, RoomID(msg.SenderID, msg.ReceiverID, msg.CarID), EventMessageDeleted, msg, "")
}

// =============================================================================
// Fan-out
// =============================================================================

func encodeFrame(event EventType, data interface{}) ([]byte, error) {
	env, err := NewEnvelope(event, data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func (h *Hub) emitRoom(ctx context.Context, roomID string, event EventType, data interface{}, exclude string) {
	frame, err := encodeFrame(event, data)
	if err != nil {
		slog.Error("Failed to encode frame", "event", event, "error", err)
		return
	}
	if h.redisService != nil {
		if err := h.redisService.PublishRoomEvent(ctx, roomID, busMessage{Exclude: exclude, Frame: frame}); err == nil {
			return
		}
	}
	h.deliverRoom(roomID, frame, exclude)
}

func (h *Hub) emitConn(ctx context.Context, connID string, event EventType, data interface{}) {
	frame, err := encodeFrame(event, data)
	if err != nil {
		slog.Error("Failed to encode frame", "event", event, "error", err)
		return
	}
	if h.redisService != nil {
		if err := h.redisService.PublishConnEvent(ctx, connID, busMessage{Frame: frame}); err == nil {
			return
		}
	}
	h.deliverConn(connID, frame)
}

func (h *Hub) emitAll(ctx context.Context, event EventType, data interface{}) {
	frame, err := encodeFrame(event, data)
	if err != nil {
		slog.Error("Failed to encode frame", "event", event, "error", err)
		return
	}
	if h.redisService != nil {
		if err := h.redisService.PublishBroadcast(ctx, busMessage{Frame: frame}); err == nil {
			return
		}
	}
	h.deliverAll(frame)
}

func (h *Hub) deliverRoom(roomID string, frame []byte, exclude string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[roomID] {
		if client.id == exclude {
			continue
		}
		client.sendRaw(frame)
	}
}

func (h *Hub) deliverConn(connID string, frame []byte) {
	h.mu.RLock()
	client, ok := h.conns[connID]
	h.mu.RUnlock()
	if ok {
		client.sendRaw(frame)
	}
}

func (h *Hub) deliverAll(frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.sendRaw(frame)
	}
}

func (h *Hub) redisListener() {
	ch := h.pubsub.Channel()
	for {
		select {
		case <-h.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.handleBusMessage(msg.Channel, msg.Payload)
		}
	}
}

func (h *Hub) handleBusMessage(channel, payload string) {
	var bus busMessage
	if err := json.Unmarshal([]byte(payload), &bus); err != nil {
		slog.Error("Failed to decode bus message", "channel", channel, "error", err)
		return
	}

	switch {
	case channel == services.BroadcastChannel:
		h.deliverAll(bus.Frame)
	case strings.HasPrefix(channel, services.RoomChannelPrefix):
		h.deliverRoom(strings.TrimPrefix(channel, services.RoomChannelPrefix), bus.Frame, bus.Exclude)
	case strings.HasPrefix(channel, services.ConnChannelPrefix):
		h.deliverConn(strings.TrimPrefix(channel, services.ConnChannelPrefix), bus.Frame)
	}
}

// ConnectionCount is the number of sockets held by this instance.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
