package session

import "sync"

// Manager hands out the session store bound to an identity. Stores are
// created lazily and kept for the life of the process; durable snapshots make
// them survive restarts.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	stores  map[string]*Store
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
		stores:  make(map[string]*Store),
	}
}

// For returns the store scoped to userID, switching a fresh store onto the
// identity's namespace on first use. An empty id yields the guest store.
func (m *Manager) For(userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := namespaceKeyFor(userID)
	if s, ok := m.stores[key]; ok {
		return s
	}
	s := NewStore(m.storage)
	s.SetCurrentUserID(userID)
	m.stores[key] = s
	return s
}

// Guest returns the shared guest-namespace store.
func (m *Manager) Guest() *Store {
	return m.For("")
}
