package orchestrator

import (
	"fmt"

	answerx "github.com/paxbot/curator-agent/agent/answer"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	"github.com/rs/zerolog/log"
)

// parseAnswer normalizes and decodes the model's final text. A payload that
// still fails to parse after normalization degrades to passthrough text
// rather than failing the turn.
func parseAnswer(in *graphState) (*graphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Outcome == contractx.OutcomeNoResponse {
		return in, nil
	}

	result, cleaned, ok := answerx.Decode(in.RawAnswer)
	in.Cleaned = cleaned
	if !ok {
		log.Warn().
			Str("session_id", in.Session.SessionID).
			Msg("model output failed schema decode, passing text through")
		in.Reply = cleaned
		in.Outcome = contractx.OutcomePassthrough
		return in, nil
	}

	in.Parsed = &result
	return in, nil
}
