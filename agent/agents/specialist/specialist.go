package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	toolx "github.com/ndezwa/relego-support/agent/tool"
)

type specialistImpl struct {
	agentType        contractx.AgentType
	structuredRunner compose.Runnable[map[string]any, specialistLLMOutput]
	toolRunner       compose.Runnable[map[string]any, *schema.Message]
	runtimeRunner    compose.Runnable[contractx.SpecialistRequest, contractx.SpecialistResponse]
	tools            contractx.ToolGateway
	allowedTools     map[string]struct{}
}

type specialistLLMOutput struct {
	Message        string `json:"message"`
	FollowUpNeeded bool   `json:"follow_up_needed,omitempty"`
	Escalate       bool   `json:"escalate,omitempty"`
}

func newSpecialist(
	ctx context.Context,
	agentType contractx.AgentType,
	chatModel einomodel.ToolCallingChatModel,
	systemPrompt string,
	tools contractx.ToolGateway,
) (*specialistImpl, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: specialist=%s", contractx.ErrPromptMissing, agentType)
	}

	structuredRunner, err := compileStructuredReplyGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile structured specialist graph: %v", contractx.ErrModelInvoke, err)
	}

	spec := &specialistImpl{
		agentType:        agentType,
		structuredRunner: structuredRunner,
		tools:            tools,
		allowedTools:     map[string]struct{}{},
	}

	if infos, _ := toolx.BuildForAgent(agentType); len(infos) > 0 {
		toolModel, err := chatModel.WithTools(infos)
		if err != nil {
			return nil, fmt.Errorf("%w: bind tools for specialist=%s: %v", contractx.ErrModelInvoke, agentType, err)
		}
		toolRunner, err := compileToolPlanningGraph(ctx, toolModel, systemPrompt)
		if err != nil {
			return nil, fmt.Errorf("%w: compile tool planner graph: %v", contractx.ErrModelInvoke, err)
		}
		spec.toolRunner = toolRunner
		for _, t := range infos {
			if t == nil || strings.TrimSpace(t.Name) == "" {
				continue
			}
			spec.allowedTools[t.Name] = struct{}{}
		}
	}

	runtimeRunner, err := compileRuntimeGraph(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: compile specialist runtime graph: %v", contractx.ErrModelInvoke, err)
	}
	spec.runtimeRunner = runtimeRunner

	return spec, nil
}

func (s *specialistImpl) Run(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistResponse, error) {
	out, err := s.runtimeRunner.Invoke(ctx, req)
	if err != nil {
		return contractx.SpecialistResponse{}, err
	}
	return out, nil
}

// runToolPath asks the model which tools to call, executes them through the
// gateway, then finalizes with the results attached. A plan with no tool
// calls short-circuits into a direct reply.
func (s *specialistImpl) runToolPath(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistResponse, error) {
	payload := map[string]any{
		"mode":             "plan",
		"user_message":     req.UserMessage,
		"customer_context": req.CustomerContext,
	}
	input, err := json.Marshal(payload)
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: marshal tool planning payload: %v", contractx.ErrValidation, err)
	}

	msg, err := s.toolRunner.Invoke(ctx, map[string]any{"input": string(input)})
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: tool planning invoke: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: empty tool planning response", contractx.ErrSchemaViolation)
	}

	toolRequests, err := toToolRequests(msg.ToolCalls)
	if err != nil {
		return contractx.SpecialistResponse{}, err
	}
	if len(toolRequests) == 0 {
		return s.runStructured(ctx, req)
	}

	for _, tr := range toolRequests {
		if _, ok := s.allowedTools[tr.Tool]; !ok {
			return contractx.SpecialistResponse{}, fmt.Errorf("%w: tool=%s is not allowed for agent=%s", contractx.ErrSchemaViolation, tr.Tool, s.agentType)
		}
	}

	results, err := s.tools.Execute(ctx, string(s.agentType), toolRequests)
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: execute tools for agent=%s: %v", contractx.ErrModelInvoke, s.agentType, err)
	}

	req.ToolResults = results
	resp, err := s.runStructured(ctx, req)
	if err != nil {
		return contractx.SpecialistResponse{}, err
	}
	resp.ToolRequests = toolRequests
	return resp, nil
}

func (s *specialistImpl) runStructured(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistResponse, error) {
	payload := map[string]any{
		"mode":             "reply",
		"user_message":     req.UserMessage,
		"customer_context": req.CustomerContext,
		"tool_results":     req.ToolResults,
	}
	input, err := json.Marshal(payload)
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: marshal specialist payload: %v", contractx.ErrValidation, err)
	}

	out, err := s.structuredRunner.Invoke(ctx, map[string]any{"input": string(input)})
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: specialist invoke: %v", contractx.ErrModelInvoke, err)
	}

	message := strings.TrimSpace(out.Message)
	if message == "" {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: specialist message is empty", contractx.ErrSchemaViolation)
	}

	return contractx.SpecialistResponse{
		Message:        message,
		FollowUpNeeded: out.FollowUpNeeded,
		Escalate:       out.Escalate,
	}, nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{Tool: tool, Args: args})
	}
	return reqs, nil
}
