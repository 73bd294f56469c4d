// Package memory is an in-memory blob store, used as the throwaway dev
// backend and in tests.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	blobs map[string]string
}

func New() *Store {
	return &Store{blobs: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.blobs[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
