// Package session keeps conversation state in memory, one record per
// fact-find session. The store is safe for concurrent handlers.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*types.ConversationState
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*types.ConversationState)}
}

// Create starts a fresh session and returns its state.
func (s *Store) Create() *types.ConversationState {
	now := time.Now()
	state := &types.ConversationState{
		SessionID:     uuid.New().String(),
		CollectedData: types.NewCollectedData(),
		StartTime:     now,
		LastActivity:  now,
	}
	s.mu.Lock()
	s.sessions[state.SessionID] = state
	s.mu.Unlock()
	return state
}

// Get returns the session or an error if it is unknown.
func (s *Store) Get(id string) (*types.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", id)
	}
	return state, nil
}

// GetOrCreate resolves an id to an existing session, or creates one
// when the id is empty or unknown.
func (s *Store) GetOrCreate(id string) *types.ConversationState {
	if id != "" {
		if state, err := s.Get(id); err == nil {
			return state
		}
	}
	return s.Create()
}

// Delete removes a session. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
