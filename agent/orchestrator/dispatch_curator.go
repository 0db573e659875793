package orchestrator

import (
	"context"
	"errors"
	"fmt"

	contractx "github.com/paxbot/curator-agent/agent/contract"
	statex "github.com/paxbot/curator-agent/agent/state"
)

const noResponseReply = "No response generated."

// dispatchCurator hands the turn to the model. A turn where the model never
// produces final text ends in the no-response outcome instead of an error;
// every other model fault propagates.
func dispatchCurator(ctx context.Context, in *graphState, curator contractx.Curator) (*graphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	message := in.Query
	if in.Location != "" {
		message = fmt.Sprintf("%s\n\nUser location hint: %s", in.Query, in.Location)
	}

	raw, err := curator.Respond(ctx, message, exchanges(in.Session))
	if err != nil {
		if errors.Is(err, contractx.ErrNoResponse) {
			in.Reply = noResponseReply
			in.Outcome = contractx.OutcomeNoResponse
			return in, nil
		}
		return nil, err
	}

	in.RawAnswer = raw
	return in, nil
}

func exchanges(session *statex.SessionState) []contractx.Exchange {
	out := make([]contractx.Exchange, 0, len(session.Turns))
	for _, t := range session.Turns {
		out = append(out, contractx.Exchange{Query: t.Query, Response: t.Response})
	}
	return out
}
