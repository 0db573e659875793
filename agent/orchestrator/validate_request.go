package orchestrator

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/paxbot/curator-agent/agent/contract"
	statex "github.com/paxbot/curator-agent/agent/state"
)

type graphState struct {
	Query    string
	Location string
	UserID   string
	Now      time.Time

	RequestedSessionID string
	Session            *statex.SessionState

	RawAnswer string
	Parsed    *contractx.QueryResult
	Cleaned   string

	Reply   string
	Outcome contractx.TurnOutcome
}

func validateRequest(in contractx.TurnRequest, nowFn func() time.Time) (*graphState, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}

	return &graphState{
		Query:              query,
		Location:           strings.TrimSpace(in.Location),
		UserID:             strings.TrimSpace(in.UserID),
		RequestedSessionID: strings.TrimSpace(in.SessionID),
		Now:                nowFn().UTC(),
	}, nil
}
