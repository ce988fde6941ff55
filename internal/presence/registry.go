package presence

import (
	"context"
	"sort"
	"sync"
)

// Registry maps online users to their current socket connection.
// A user has at most one entry; adding again replaces the connection.
type Registry interface {
	Add(ctx context.Context, userID, connID string) error
	// Refresh keeps the entry of a live connection. It never replaces a newer connection.
	Refresh(ctx context.Context, userID, connID string) error
	// Remove drops the entry owned by connID, if any, and returns its user id.
	Remove(ctx context.Context, connID string) (string, error)
	Lookup(ctx context.Context, userID string) (string, bool, error)
	Online(ctx context.Context) ([]string, error)
}

// MemoryRegistry keeps presence in the current process only.
type MemoryRegistry struct {
	mu     sync.RWMutex
	byUser map[string]string
	byConn map[string]string
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		byUser: make(map[string]string),
		byConn: make(map[string]string),
	}
}

func (r *MemoryRegistry) Add(_ context.Context, userID, connID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byUser[userID]; ok {
		delete(r.byConn, prev)
	}
	if prevUser, ok := r.byConn[connID]; ok && prevUser != userID {
		delete(r.byUser, prevUser)
	}
	r.byUser[userID] = connID
	r.byConn[connID] = userID
	return nil
}

// Refresh restores an entry only when the user has none; process memory never expires.
func (r *MemoryRegistry) Refresh(_ context.Context, userID, connID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[userID]; ok {
		return nil
	}
	if prevUser, ok := r.byConn[connID]; ok && prevUser != userID {
		delete(r.byUser, prevUser)
	}
	r.byUser[userID] = connID
	r.byConn[connID] = userID
	return nil
}

func (r *MemoryRegistry) Remove(_ context.Context, connID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[connID]
	if !ok {
		return "", nil
	}
	delete(r.byConn, connID)
	if r.byUser[userID] == connID {
		delete(r.byUser, userID)
	}
	return userID, nil
}

func (r *MemoryRegistry) Lookup(_ context.Context, userID string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	connID, ok := r.byUser[userID]
	return connID, ok, nil
}

func (r *MemoryRegistry) Online(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.byUser))
	for id := range r.byUser {
		users = append(users, id)
	}
	sort.Strings(users)
	return users, nil
}
