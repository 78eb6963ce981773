package extract

import (
	"context"
	"sync"
)

// admissionIDStoreMemory is the in-process AdmissionIDStore used in
// development and tests.
type admissionIDStoreMemory struct {
	mu  sync.RWMutex
	ids map[string]map[string]struct{}
}

// NewAdmissionIDStoreMemory creates an in-memory AdmissionIDStore.
func NewAdmissionIDStoreMemory() AdmissionIDStore {
	return &admissionIDStoreMemory{ids: make(map[string]map[string]struct{})}
}

func (s *admissionIDStoreMemory) Snapshot(_ context.Context, providerID string) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]struct{}, len(s.ids[providerID]))
	for id := range s.ids[providerID] {
		snapshot[id] = struct{}{}
	}
	return snapshot, nil
}

func (s *admissionIDStoreMemory) Add(_ context.Context, providerID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.ids[providerID]
	if !ok {
		set = make(map[string]struct{})
		s.ids[providerID] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return nil
}
