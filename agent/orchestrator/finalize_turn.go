package orchestrator

import (
	"fmt"
	"strings"

	contractx "github.com/paxbot/curator-agent/agent/contract"
)

func finalizeTurn(in *graphState) (contractx.TurnResult, error) {
	if in == nil || in.Session == nil {
		return contractx.TurnResult{}, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return contractx.TurnResult{}, fmt.Errorf("%w: turn produced empty reply", contractx.ErrNoResponse)
	}

	return contractx.TurnResult{
		Response:  reply,
		SessionID: in.Session.SessionID,
		Outcome:   in.Outcome,
	}, nil
}
