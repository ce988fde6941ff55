package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memMessageStore mirrors the guarded updates of the Mongo repository.
type memMessageStore struct {
	mu   sync.Mutex
	byID map[string]*models.Message
}

func newMemMessageStore() *memMessageStore {
	return &memMessageStore{byID: make(map[string]*models.Message)}
}

func (s *memMessageStore) Create(_ context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	cp := *msg
	s.byID[msg.ID.Hex()] = &cp
	return nil
}

func (s *memMessageStore) FindByID(_ context.Context, id string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *msg
	return &cp, nil
}

func (s *memMessageStore) FindConversation(_ context.Context, userA, userB, carID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Message{}
	for _, m := range s.byID {
		between := (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA)
		if !between || m.IsDeleted || (carID != "" && m.CarID != carID) {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memMessageStore) guarded(id, senderID string, notBefore time.Time, apply func(*models.Message)) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok || m.SenderID != senderID || m.IsDeleted || m.CreatedAt.Before(notBefore) {
		return nil, repositories.ErrNoMatch
	}
	apply(m)
	cp := *m
	return &cp, nil
}

func (s *memMessageStore) UpdateContent(_ context.Context, id, senderID, content string, notBefore, now time.Time) (*models.Message, error) {
	return s.guarded(id, senderID, notBefore, func(m *models.Message) {
		m.Content = content
		m.IsEdited = true
		m.UpdatedAt = now
	})
}

func (s *memMessageStore) SoftDelete(_ context.Context, id, senderID string, notBefore, now time.Time) (*models.Message, error) {
	return s.guarded(id, senderID, notBefore, func(m *models.Message) {
		m.IsDeleted = true
		m.UpdatedAt = now
	})
}

func (s *memMessageStore) MarkDelivered(_ context.Context, id, receiverID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.byID[id]; ok && m.ReceiverID == receiverID && !m.IsDelivered {
		m.IsDelivered = true
		m.DeliveredAt = &at
	}
	return nil
}

func (s *memMessageStore) MarkRead(ctx context.Context, id, receiverID string, at time.Time) (*models.Message, error) {
	s.mu.Lock()
	if m, ok := s.byID[id]; ok && m.ReceiverID == receiverID && !m.IsRead {
		m.IsRead = true
		m.ReadAt = &at
		m.IsDelivered = true
	}
	s.mu.Unlock()
	return s.FindByID(ctx, id)
}

type memNotificationStore struct {
	mu    sync.Mutex
	items []*models.Notification
}

func (s *memNotificationStore) CreateMany(_ context.Context, ns []*models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range ns {
		n.ID = primitive.NewObjectID()
		s.items = append(s.items, n)
	}
	return nil
}

func (s *memNotificationStore) List(_ context.Context, f models.NotificationFilter) ([]models.Notification, int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Notification
	var unread int64
	for _, n := range s.items {
		if n.UserID != f.UserID || (f.Type != "" && n.Type != f.Type) {
			continue
		}
		all = append(all, *n)
		if !n.IsRead {
			unread++
		}
	}
	total := int64(len(all))
	start := (f.Page - 1) * f.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, unread, nil
}

func (s *memNotificationStore) MarkRead(_ context.Context, id, userID string, at time.Time) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.items {
		if n.ID.Hex() == id && n.UserID == userID {
			n.IsRead = true
			n.ReadAt = &at
			cp := *n
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memNotificationStore) MarkAllRead(_ context.Context, f models.NotificationFilter, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var modified int64
	for _, n := range s.items {
		if n.UserID == f.UserID && !n.IsRead && (f.Type == "" || n.Type == f.Type) {
			n.IsRead = true
			n.ReadAt = &at
			modified++
		}
	}
	return modified, nil
}

func (s *memNotificationStore) forUser(userID string) []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Notification
	for _, n := range s.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type memUserStore struct {
	users  map[string]*models.User
	tokens map[string][]string
}

func newMemUserStore(users ...*models.User) *memUserStore {
	s := &memUserStore{users: map[string]*models.User{}, tokens: map[string][]string{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *memUserStore) AddDeviceToken(_ context.Context, t *models.DeviceToken) (bool, error) {
	for _, existing := range s.tokens[t.UserID] {
		if existing == t.Token {
			return false, nil
		}
	}
	s.tokens[t.UserID] = append(s.tokens[t.UserID], t.Token)
	return true, nil
}

func (s *memUserStore) HasDeviceToken(_ context.Context, userID, token string) (bool, error) {
	for _, existing := range s.tokens[userID] {
		if existing == token {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) DeviceTokens(_ context.Context, userID string) ([]string, error) {
	return s.tokens[userID], nil
}

func (s *memUserStore) RemoveDeviceToken(_ context.Context, token string) error {
	for user, tokens := range s.tokens {
		kept := tokens[:0]
		for _, t := range tokens {
			if t != token {
				kept = append(kept, t)
			}
		}
		s.tokens[user] = kept
	}
	return nil
}

type memCarStore map[string]*models.Car

func (s memCarStore) FindByID(_ context.Context, id string) (*models.Car, error) {
	if c, ok := s[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrNotFound
}

type staticPresence map[string]string

func (p staticPresence) Lookup(_ context.Context, userID string) (string, bool, error) {
	conn, ok := p[userID]
	return conn, ok, nil
}
