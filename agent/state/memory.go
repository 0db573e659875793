package state

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is the volatile fallback backend. Unlike the durable store it
// auto-creates: loading an unknown id still returns ErrStateNotFound, but
// nothing is verified against a remote system and saves always succeed.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*SessionState),
	}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (*SessionState, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrStateNotFound
	}
	return cloneState(st), nil
}

func (m *MemoryStore) Save(_ context.Context, st *SessionState) error {
	if err := st.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[st.SessionID] = cloneState(st)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func cloneState(st *SessionState) *SessionState {
	if st == nil {
		return nil
	}
	clone := *st
	clone.Turns = append([]Turn(nil), st.Turns...)
	return &clone
}
