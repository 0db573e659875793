package orchestrator

import (
	"fmt"

	contractx "github.com/paxbot/curator-agent/agent/contract"
	renderx "github.com/paxbot/curator-agent/agent/render"
)

func renderReply(in *graphState) (*graphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Parsed == nil {
		return in, nil
	}

	html, err := renderx.Render(*in.Parsed)
	if err != nil {
		return nil, fmt.Errorf("render reply: %w", err)
	}
	in.Reply = html
	in.Outcome = contractx.OutcomeRendered
	return in, nil
}
