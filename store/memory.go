package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finsage/finsage/finance"
)

// MemoryStore keeps profiles and history in process memory. Useful for
// tests and single-run sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*finance.Profile
	history  map[string][]Message
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*finance.Profile),
		history:  make(map[string][]Message),
	}
}

func (m *MemoryStore) GetProfile(clientID string) (*finance.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryStore) SaveProfile(clientID string, p *finance.Profile) error {
	if p == nil {
		return errors.New("store: nil profile")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[clientID] = normalize(p)
	return nil
}

func (m *MemoryStore) AppendMessage(clientID, role, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history[clientID] = append(m.history[clientID], Message{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	return nil
}

func (m *MemoryStore) History(clientID string, limit int) ([]Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msgs := tail(m.history[clientID], limit)
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
