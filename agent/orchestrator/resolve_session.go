package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	statex "github.com/paxbot/curator-agent/agent/state"
)

// resolveSession reuses the caller-provided session id or mints a fresh one.
// With strict sessions (durable backend) an unknown id is a resolution error;
// the volatile backend auto-creates instead. Either way a backend fault stops
// the turn before the model runs.
func resolveSession(
	ctx context.Context,
	in *graphState,
	store statex.Store,
	strictSessions bool,
) (*graphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if in.RequestedSessionID == "" {
		in.Session = statex.NewSessionState(uuid.NewString(), in.UserID, in.Now)
		return in, nil
	}

	st, err := store.Load(ctx, in.RequestedSessionID)
	if err == nil {
		in.Session = st
		return in, nil
	}
	if !errors.Is(err, statex.ErrStateNotFound) {
		return nil, fmt.Errorf("%w: load session %s: %v", contractx.ErrSessionResolve, in.RequestedSessionID, err)
	}
	if strictSessions {
		return nil, fmt.Errorf("%w: session %s does not exist", contractx.ErrSessionResolve, in.RequestedSessionID)
	}

	in.Session = statex.NewSessionState(in.RequestedSessionID, in.UserID, in.Now)
	return in, nil
}
