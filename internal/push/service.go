package push

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	sendChunkSize    = 100
	receiptChunkSize = 300

	priorityHigh = "high"
	soundDefault = "default"
)

// ErrAllChunksFailed is returned when no chunk of a send was accepted.
var ErrAllChunksFailed = errors.New("push: every chunk failed")

// Provider is the wire surface of the push service.
type Provider interface {
	SendChunk(ctx context.Context, messages []Message) ([]Ticket, error)
	GetReceipts(ctx context.Context, ticketIDs []string) (map[string]Receipt, error)
}

// UnregisteredFunc is called for tokens the provider reports as DeviceNotRegistered.
type UnregisteredFunc func(ctx context.Context, token string)

type Service struct {
	provider       Provider
	timeout        time.Duration
	receiptDelay   time.Duration
	onUnregistered UnregisteredFunc

	wg sync.WaitGroup
}

type Option func(*Service)

func WithReceiptDelay(d time.Duration) Option {
	return func(s *Service) { s.receiptDelay = d }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func WithUnregisteredHandler(fn UnregisteredFunc) Option {
	return func(s *Service) { s.onUnregistered = fn }
}

func NewService(provider Provider, opts ...Option) *Service {
	s := &Service{
		provider:     provider,
		timeout:      10 * time.Second,
		receiptDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send delivers n to every valid token in chunks of 100.
// Invalid tokens are dropped with a log line; a failed chunk does not stop the others.
// Receipts for accepted tickets are checked once, after the receipt delay.
func (s *Service) Send(ctx context.Context, n Notification) ([]Ticket, error) {
	valid, invalid := FilterTokens(n.Tokens)
	for _, t := range invalid {
		slog.Warn("Skipping invalid push token", "token", t)
	}
	if len(valid) == 0 {
		return []Ticket{}, nil
	}

	messages := make([]Message, 0, len(valid))
	for _, token := range valid {
		messages = append(messages, Message{
			To:       token,
			Title:    n.Title,
			Body:     n.Body,
			Data:     n.Data,
			Sound:    soundDefault,
			Priority: priorityHigh,
		})
	}

	tickets := make([]Ticket, 0, len(messages))
	chunks := chunk(messages, sendChunkSize)
	failed := 0
	for i, batch := range chunks {
		got, err := s.sendChunk(ctx, batch)
		if err != nil {
			failed++
			slog.Error("Failed to send push chunk", "chunk", i, "size", len(batch), "error", err)
			continue
		}
		for j := range got {
			got[j].Token = batch[j].To
			if got[j].Status == StatusError {
				slog.Warn("Push ticket rejected", "token", got[j].Token, "message", got[j].Message)
				s.handleError(ctx, got[j].Token, got[j].Details)
			}
		}
		tickets = append(tickets, got...)
	}

	s.scheduleReceipts(tickets)

	if failed == len(chunks) {
		return tickets, ErrAllChunksFailed
	}
	return tickets, nil
}

// sendChunk returns exactly one ticket per message or an error.
func (s *Service) sendChunk(ctx context.Context, batch []Message) ([]Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	got, err := s.provider.SendChunk(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(got) != len(batch) {
		return nil, fmt.Errorf("provider returned %d tickets for %d messages", len(got), len(batch))
	}
	return got, nil
}

func (s *Service) scheduleReceipts(tickets []Ticket) {
	tokenByTicket := make(map[string]string)
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		if t.Status == StatusOK && t.ID != "" {
			ids = append(ids, t.ID)
			tokenByTicket[t.ID] = t.Token
		}
	}
	if len(ids) == 0 {
		return
	}

	s.wg.Add(1)
	time.AfterFunc(s.receiptDelay, func() {
		defer s.wg.Done()
		s.checkReceipts(ids, tokenByTicket)
	})
}

// checkReceipts only logs; receipts are never retried.
func (s *Service) checkReceipts(ids []string, tokenByTicket map[string]string) {
	for _, batch := range chunk(ids, receiptChunkSize) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		receipts, err := s.provider.GetReceipts(ctx, batch)
		if err != nil {
			cancel()
			slog.Error("Failed to fetch push receipts", "count", len(batch), "error", err)
			continue
		}
		for id, r := range receipts {
			if r.Status != StatusError {
				continue
			}
			slog.Warn("Push receipt error",
				"ticket", id,
				"message", r.Message,
				"error", DetailError(r.Details),
			)
			s.handleError(ctx, tokenByTicket[id], r.Details)
		}
		cancel()
	}
}

func (s *Service) handleError(ctx context.Context, token string, details map[string]interface{}) {
	if token == "" || s.onUnregistered == nil {
		return
	}
	if DetailError(details) == ErrorDeviceNotRegistered {
		s.onUnregistered(ctx, token)
	}
}

// Wait blocks until scheduled receipt checks have run.
func (s *Service) Wait() {
	s.wg.Wait()
}
