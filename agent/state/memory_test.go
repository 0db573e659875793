package state

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	now := time.Now()

	st := NewSessionState("s1", "u1", now)
	st.AppendTurn("q", "r", "rendered", now)

	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.SessionID != "s1" || len(loaded.Turns) != 1 {
		t.Fatalf("unexpected state: %+v", loaded)
	}

	// Mutating the loaded copy must not leak into the store.
	loaded.Turns[0].Query = "mutated"
	again, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again.Turns[0].Query != "q" {
		t.Fatal("store must hand out independent copies")
	}
}

func TestMemoryStoreLoadUnknown(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	st := NewSessionState("s1", "", time.Now())
	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(context.Background(), "s1"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound after delete, got %v", err)
	}
}

func TestSessionAppendTurnTrimsHistory(t *testing.T) {
	t.Parallel()

	now := time.Now()
	st := NewSessionState("s1", "", now)
	for i := 0; i < maxTurns+5; i++ {
		st.AppendTurn("q", "r", "rendered", now)
	}
	if len(st.Turns) != maxTurns {
		t.Fatalf("expected %d turns after trim, got %d", maxTurns, len(st.Turns))
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()

	var nilState *SessionState
	if err := nilState.Validate(); !errors.Is(err, ErrNilSessionState) {
		t.Fatalf("expected ErrNilSessionState, got %v", err)
	}
	if err := (&SessionState{}).Validate(); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}
