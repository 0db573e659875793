package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/paxbot/curator-agent/agent/contract"
)

func (o *Orchestrator) compileHandleTurnGraph(
	ctx context.Context,
) (compose.Runnable[contractx.TurnRequest, contractx.TurnResult], error) {
	graph := compose.NewGraph[contractx.TurnRequest, contractx.TurnResult]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in contractx.TurnRequest) (*graphState, error) {
			return validateRequest(in, o.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_session",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return resolveSession(ctx, in, o.store, o.strictSessions)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_session: %w", err)
	}

	if err := graph.AddLambdaNode("dispatch_curator",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return dispatchCurator(ctx, in, o.curator)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dispatch_curator: %w", err)
	}

	if err := graph.AddLambdaNode("parse_answer",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return parseAnswer(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node parse_answer: %w", err)
	}

	if err := graph.AddLambdaNode("render_reply",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return renderReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node render_reply: %w", err)
	}

	if err := graph.AddLambdaNode("record_turn",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return recordTurn(ctx, in, o.store, o.recorder)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node record_turn: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_turn",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (contractx.TurnResult, error) {
			return finalizeTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_turn: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "resolve_session"},
		{"resolve_session", "dispatch_curator"},
		{"dispatch_curator", "parse_answer"},
		{"parse_answer", "render_reply"},
		{"render_reply", "record_turn"},
		{"record_turn", "finalize_turn"},
		{"finalize_turn", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
