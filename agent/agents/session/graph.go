package session

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	nodex "github.com/ndezwa/relego-support/agent/nodes/session"
)

func (m *Manager) compileTurnGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.TurnResult], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.TurnResult]()

	if err := graph.AddLambdaNode("validate_turn",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateTurn(in, m.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_turn: %w", err)
	}

	if err := graph.AddLambdaNode("extract_signals",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ExtractSignals(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_signals: %w", err)
	}

	if err := graph.AddLambdaNode("apply_turn",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ApplyTurn(in, m.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node apply_turn: %w", err)
	}

	if err := graph.AddLambdaNode("decide_escalation",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.DecideEscalation(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node decide_escalation: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_result",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.TurnResult, error) {
			return nodex.FinalizeResult(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_result: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_turn"},
		{"validate_turn", "extract_signals"},
		{"extract_signals", "apply_turn"},
		{"apply_turn", "decide_escalation"},
		{"decide_escalation", "finalize_result"},
		{"finalize_result", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("session.record_interaction"))
	if err != nil {
		return nil, fmt.Errorf("compile session turn graph: %w", err)
	}
	return runner, nil
}
