package specialist

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	llmx "github.com/ndezwa/relego-support/agent/llm"
)

func compileStructuredReplyGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, specialistLLMOutput], error) {
	runner, err := llmx.CompileStructuredGraph[specialistLLMOutput](ctx, chatModel, systemPrompt, "specialist.structured_graph")
	if err != nil {
		return nil, fmt.Errorf("compile specialist structured graph: %w", err)
	}
	return runner, nil
}

func compileToolPlanningGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add tool planning prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add tool planning model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add tool planning edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add tool planning edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add tool planning edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("specialist.tool_planning_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile specialist tool planning graph: %w", err)
	}
	return runner, nil
}

type specialistGraphState struct {
	Req      contractx.SpecialistRequest
	UseTools bool
}

func compileRuntimeGraph(
	ctx context.Context,
	spec *specialistImpl,
) (compose.Runnable[contractx.SpecialistRequest, contractx.SpecialistResponse], error) {
	graph := compose.NewGraph[contractx.SpecialistRequest, contractx.SpecialistResponse]()

	if err := graph.AddLambdaNode("validate_and_prepare",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SpecialistRequest) (*specialistGraphState, error) {
			if strings.TrimSpace(req.UserMessage) == "" {
				return nil, fmt.Errorf("%w: user message is required", contractx.ErrValidation)
			}

			return &specialistGraphState{
				Req:      req,
				UseTools: spec.toolRunner != nil && len(req.ToolResults) == 0,
			}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add specialist runtime validate node: %w", err)
	}

	if err := graph.AddLambdaNode("tool_path",
		compose.InvokableLambda(func(ctx context.Context, in *specialistGraphState) (contractx.SpecialistResponse, error) {
			if in == nil {
				return contractx.SpecialistResponse{}, fmt.Errorf("%w: specialist graph state is nil", contractx.ErrValidation)
			}
			return spec.runToolPath(ctx, in.Req)
		}),
	); err != nil {
		return nil, fmt.Errorf("add specialist runtime tool node: %w", err)
	}

	if err := graph.AddLambdaNode("structured_path",
		compose.InvokableLambda(func(ctx context.Context, in *specialistGraphState) (contractx.SpecialistResponse, error) {
			if in == nil {
				return contractx.SpecialistResponse{}, fmt.Errorf("%w: specialist graph state is nil", contractx.ErrValidation)
			}
			return spec.runStructured(ctx, in.Req)
		}),
	); err != nil {
		return nil, fmt.Errorf("add specialist runtime structured node: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *specialistGraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: specialist graph state is nil", contractx.ErrValidation)
			}
			if in.UseTools {
				return "tool_path", nil
			}
			return "structured_path", nil
		},
		map[string]bool{
			"tool_path":       true,
			"structured_path": true,
		},
	)

	if err := graph.AddBranch("validate_and_prepare", branch); err != nil {
		return nil, fmt.Errorf("add specialist runtime branch: %w", err)
	}
	if err := graph.AddEdge(compose.START, "validate_and_prepare"); err != nil {
		return nil, fmt.Errorf("add specialist runtime edge start->validate: %w", err)
	}
	if err := graph.AddEdge("tool_path", compose.END); err != nil {
		return nil, fmt.Errorf("add specialist runtime edge tool->end: %w", err)
	}
	if err := graph.AddEdge("structured_path", compose.END); err != nil {
		return nil, fmt.Errorf("add specialist runtime edge structured->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("specialist.runtime_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile specialist runtime graph: %w", err)
	}
	return runner, nil
}
