package blobstore

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore is an in-process Store used by tests and the local demo mode.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string]json.RawMessage
}

func NewMemory() Store {
	return &memoryStore{
		blobs: make(map[string]json.RawMessage),
	}
}

func (s *memoryStore) Load(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}

	cloned := make(json.RawMessage, len(value))
	copy(cloned, value)

	return cloned, nil
}

func (s *memoryStore) Save(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := make(json.RawMessage, len(value))
	copy(cloned, value)
	s.blobs[key] = cloned

	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)

	return nil
}
