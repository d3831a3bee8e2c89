package session

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Storage is the durable side of the session store. Implementations must be
// safe for concurrent use.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, payload []byte) error
}

// ErrNotFound is returned by Load when no snapshot exists under the key.
var ErrNotFound = errors.New("session: snapshot not found")

// Snapshot is the GORM row backing one namespace.
type Snapshot struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte
	UpdatedAt time.Time
}

// GormStorage persists snapshots in the session_snapshots table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Load(key string) ([]byte, error) {
	var row Snapshot
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Payload, nil
}

func (s *GormStorage) Save(key string, payload []byte) error {
	row := Snapshot{Key: key, Payload: payload, UpdatedAt: time.Now()}
	return s.db.Save(&row).Error
}

// MemoryStorage keeps snapshots in a map. Used by tests and as the degraded
// fallback when no database is configured.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (s *MemoryStorage) Save(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(payload))
	copy(out, payload)
	s.data[key] = out
	return nil
}
