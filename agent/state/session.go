package state

import (
	"errors"
	"strings"
	"time"
)

// SessionState groups the turns of one conversation so follow-up queries can
// reuse context. Persistence guarantees are whatever the configured backend
// provides; this core never mutates a session concurrently within a turn.
type SessionState struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	Turns     []Turn    `json:"turns,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Turn is one completed query/response pair.
type Turn struct {
	Query    string    `json:"query"`
	Response string    `json:"response"`
	Outcome  string    `json:"outcome,omitempty"`
	At       time.Time `json:"at"`
}

// maxTurns bounds the history carried back to the model per turn.
const maxTurns = 20

var (
	ErrInvalidSession = errors.New("session id is empty")
	ErrNilSessionState = errors.New("session state is nil")
)

func NewSessionState(sessionID, userID string, now time.Time) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		UserID:    userID,
		UpdatedAt: now.UTC(),
	}
}

func (s *SessionState) Validate() error {
	if s == nil {
		return ErrNilSessionState
	}
	if strings.TrimSpace(s.SessionID) == "" {
		return ErrInvalidSession
	}
	return nil
}

// AppendTurn records a completed turn, trimming the oldest entries beyond
// the history bound.
func (s *SessionState) AppendTurn(query, response, outcome string, now time.Time) {
	s.Turns = append(s.Turns, Turn{
		Query:    query,
		Response: response,
		Outcome:  outcome,
		At:       now.UTC(),
	})
	if len(s.Turns) > maxTurns {
		s.Turns = s.Turns[len(s.Turns)-maxTurns:]
	}
	s.UpdatedAt = now.UTC()
}
