package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rental-chat-service/internal/push"
	"rental-chat-service/internal/repositories"
)

const (
	PushTypeChatMessage = "chat_message"
	ChatScreen          = "Chat"

	photoBody       = "Sent a photo"
	unknownSender   = "Someone"
	defaultPairTTL  = time.Minute
	defaultDedupTTL = 10 * time.Minute
)

// MessageEvent is what both the socket gateway and the REST interceptor know about a sent message.
type MessageEvent struct {
	MessageID  string
	SenderID   string
	ReceiverID string
	CarID      string
	Content    string
	Images     []string
	Source     string
}

type Outcome string

const (
	OutcomeDelivered      Outcome = "delivered"
	OutcomeReceiverOnline Outcome = "receiver_online"
	OutcomeDuplicate      Outcome = "duplicate"
	OutcomeNoTokens       Outcome = "no_tokens"
)

// Fingerprint identifies a message by its participants and payload when no id is known.
func (ev MessageEvent) Fingerprint() string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s", ev.SenderID, ev.ReceiverID, ev.CarID, ev.Content, strings.Join(ev.Images, ","))
	return hex.EncodeToString(h.Sum(nil))
}

// Dispatcher decides whether a sent message needs a push and builds it.
// Socket and REST paths both call it for the same message; only the first call pushes.
type Dispatcher struct {
	presence  PresenceChecker
	dedup     Deduplicator
	users     UserStore
	cars      CarStore
	deliverer Deliverer
	dedupTTL  time.Duration
	pairTTL   time.Duration
}

func NewDispatcher(presence PresenceChecker, dedup Deduplicator, users UserStore, cars CarStore, deliverer Deliverer, dedupTTL time.Duration) *Dispatcher {
	if dedupTTL <= 0 {
		dedupTTL = defaultDedupTTL
	}
	return &Dispatcher{
		presence:  presence,
		dedup:     dedup,
		users:     users,
		cars:      cars,
		deliverer: deliverer,
		dedupTTL:  dedupTTL,
		pairTTL:   defaultPairTTL,
	}
}

// NotifyMessage never fails the caller; problems are logged.
func (d *Dispatcher) NotifyMessage(ctx context.Context, ev MessageEvent) {
	outcome, err := d.Dispatch(ctx, ev)
	if err != nil {
		slog.Error("Failed to dispatch message notification",
			"messageId", ev.MessageID,
			"receiverId", ev.ReceiverID,
			"source", ev.Source,
			"error", err,
		)
		return
	}
	slog.Debug("Message notification dispatched",
		"messageId", ev.MessageID,
		"source", ev.Source,
		"outcome", outcome,
	)
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev MessageEvent) (Outcome, error) {
	if ev.SenderID == "" || ev.ReceiverID == "" {
		return "", errors.New("sender and receiver are required")
	}

	if _, online, err := d.presence.Lookup(ctx, ev.ReceiverID); err != nil {
		slog.Warn("Presence lookup failed, treating receiver as offline", "receiverId", ev.ReceiverID, "error", err)
	} else if online {
		return OutcomeReceiverOnline, nil
	}

	key, fresh := d.claim(ctx, ev)
	if !fresh {
		return OutcomeDuplicate, nil
	}

	tokens, err := d.users.DeviceTokens(ctx, ev.ReceiverID)
	if err != nil {
		return "", fmt.Errorf("failed to load device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return OutcomeNoTokens, nil
	}

	n := d.build(ctx, ev)
	n.Tokens = tokens
	if err := d.deliverer.Deliver(ctx, key, n); err != nil {
		return "", fmt.Errorf("failed to deliver push: %w", err)
	}
	return OutcomeDelivered, nil
}

// claim reserves the message id, then the payload fingerprint for a short while.
// The fingerprint pairs a socket event without id with the REST call that stored it.
// Its value is the id of the stored message that claimed it, or empty for a socket event.
// Dedup backend errors fail open.
func (d *Dispatcher) claim(ctx context.Context, ev MessageEvent) (string, bool) {
	fpKey := "fp:" + ev.Fingerprint()
	if ev.MessageID == "" {
		ok, _, err := d.dedup.Claim(ctx, fpKey, "", d.pairTTL)
		if err != nil {
			slog.Warn("Dedup claim failed", "key", fpKey, "error", err)
			return fpKey, true
		}
		return fpKey, ok
	}

	key := "id:" + ev.MessageID
	ok, _, err := d.dedup.Claim(ctx, key, ev.MessageID, d.dedupTTL)
	if err != nil {
		slog.Warn("Dedup claim failed", "key", key, "error", err)
	} else if !ok {
		return key, false
	}

	ok, holder, err := d.dedup.Claim(ctx, fpKey, ev.MessageID, d.pairTTL)
	switch {
	case err != nil:
		slog.Warn("Dedup claim failed", "key", fpKey, "error", err)
		return key, true
	case ok:
		return key, true
	case holder == ev.MessageID:
		return key, false
	case holder != "":
		// another stored message with the same payload
		return key, true
	}

	// The socket twin already pushed this message. Hand the fingerprint to this id
	// so the next stored copy of the same text gets its own push.
	if err := d.dedup.Set(ctx, fpKey, ev.MessageID, d.pairTTL); err != nil {
		slog.Warn("Dedup handoff failed", "key", fpKey, "error", err)
	}
	return key, false
}

func (d *Dispatcher) build(ctx context.Context, ev MessageEvent) push.Notification {
	senderName := unknownSender
	if u, err := d.users.FindByID(ctx, ev.SenderID); err == nil && u.Name != "" {
		senderName = u.Name
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		slog.Warn("Failed to load sender", "senderId", ev.SenderID, "error", err)
	}

	carName := "your car"
	if ev.CarID != "" {
		if car, err := d.cars.FindByID(ctx, ev.CarID); err == nil {
			carName = car.DisplayName()
		} else if !errors.Is(err, repositories.ErrNotFound) {
			slog.Warn("Failed to load car", "carId", ev.CarID, "error", err)
		}
	}

	return push.Notification{
		Title: fmt.Sprintf("New message from %s about %s", senderName, carName),
		Body:  messagePreview(ev.Content, ev.Images),
		Data: map[string]interface{}{
			"type":      PushTypeChatMessage,
			"messageId": ev.MessageID,
			"senderId":  ev.SenderID,
			"carId":     ev.CarID,
			"navigation": map[string]interface{}{
				"screen": ChatScreen,
				"params": map[string]interface{}{
					"recipientId":   ev.SenderID,
					"carId":         ev.CarID,
					"recipientName": senderName,
				},
			},
		},
	}
}

// InlineDeliverer sends the push from the calling process.
type InlineDeliverer struct {
	sender  PushSender
	timeout time.Duration
}

func NewInlineDeliverer(sender PushSender, timeout time.Duration) *InlineDeliverer {
	return &InlineDeliverer{sender: sender, timeout: timeout}
}

func (d *InlineDeliverer) Deliver(ctx context.Context, dedupKey string, n push.Notification) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	tickets, err := d.sender.Send(ctx, n)
	if err != nil {
		return err
	}
	slog.Info("Push sent", "dedupKey", dedupKey, "tickets", len(tickets))
	return nil
}
