package orchestrator

import (
	"context"
	"fmt"

	contractx "github.com/paxbot/curator-agent/agent/contract"
	statex "github.com/paxbot/curator-agent/agent/state"
	"github.com/rs/zerolog/log"
)

// recordTurn appends the finished turn to the session and persists it, then
// hands a copy to the audit recorder. Audit failures are logged, not fatal.
func recordTurn(
	ctx context.Context,
	in *graphState,
	store statex.Store,
	recorder TurnRecorder,
) (*graphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.AppendTurn(in.Query, in.Reply, string(in.Outcome), in.Now)
	if err := in.Session.Validate(); err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}

	turn := in.Session.Turns[len(in.Session.Turns)-1]
	if err := recorder.Record(ctx, in.Session.SessionID, turn); err != nil {
		log.Warn().Err(err).
			Str("session_id", in.Session.SessionID).
			Msg("turn audit record failed")
	}
	return in, nil
}
