// Package orchestrator drives one conversation turn end to end: session
// resolution, model dispatch, answer normalization, rendering, and turn
// persistence, compiled as a single linear graph.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	statex "github.com/paxbot/curator-agent/agent/state"
)

// TurnRecorder receives a copy of every finished turn for durable auditing.
type TurnRecorder interface {
	Record(ctx context.Context, sessionID string, turn statex.Turn) error
}

type Config struct {
	// StrictSessions makes an unknown caller-provided session id a
	// resolution error instead of an implicit create. Enabled with the
	// durable session backend.
	StrictSessions bool
}

type Orchestrator struct {
	store    statex.Store
	curator  contractx.Curator
	recorder TurnRecorder

	graphRunner compose.Runnable[contractx.TurnRequest, contractx.TurnResult]

	strictSessions bool

	now func() time.Time
}

func New(
	store statex.Store,
	curator contractx.Curator,
	recorder TurnRecorder,
	cfg Config,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if curator == nil {
		return nil, errors.New("curator is required")
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}

	o := &Orchestrator{
		store:          store,
		curator:        curator,
		recorder:       recorder,
		strictSessions: cfg.StrictSessions,
		now:            time.Now,
	}

	graphRunner, err := o.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleTurn processes one user turn and returns the user-facing payload.
func (o *Orchestrator) HandleTurn(ctx context.Context, req contractx.TurnRequest) (contractx.TurnResult, error) {
	return o.graphRunner.Invoke(ctx, req)
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, string, statex.Turn) error {
	return nil
}
