package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MockShard creates in-memory storage for every shard.
func MockShard() Shard {
	return func(shard string) (Persistence, error) {
		return NewMockStorage(), nil
	}
}

// MockStorage keeps the json encoded values in memory.
type MockStorage struct {
	Elements map[Key][]byte
	mutex    *sync.RWMutex
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		Elements: make(map[Key][]byte),
		mutex:    new(sync.RWMutex),
	}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value: %w", err)
	}
	m.Elements[k] = bb
	return nil
}

func (m *MockStorage) Load(k Key, value interface{}) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	bb, ok := m.Elements[k]
	if !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	if err := json.Unmarshal(bb, value); err != nil {
		return fmt.Errorf("could not unmarshal '%v': %s: %w", k, err.Error(), CouldNotLoadErr)
	}
	return nil
}
