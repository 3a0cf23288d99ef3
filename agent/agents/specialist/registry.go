package specialist

import (
	"context"
	"fmt"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	llmx "github.com/ndezwa/relego-support/agent/llm"
	promptx "github.com/ndezwa/relego-support/agent/prompt"
)

type registryImpl struct {
	specialists map[contractx.AgentType]contractx.Specialist
}

func (r *registryImpl) ForAgent(agentType contractx.AgentType) (contractx.Specialist, bool) {
	s, ok := r.specialists[agentType]
	return s, ok
}

// NewRegistry compiles one specialist per service area plus the triage and
// escalation agents, sharing a single tool gateway.
func NewRegistry(ctx context.Context, cfg llmx.Config, tools contractx.ToolGateway) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tools == nil {
		return nil, fmt.Errorf("%w: tool gateway is required", contractx.ErrValidation)
	}

	prompts := promptx.LoadPromptSet()

	personas := []struct {
		agentType contractx.AgentType
		prompt    string
	}{
		{contractx.AgentTypeTriage, prompts.Triage},
		{contractx.AgentTypeAIDevelopment, prompts.AIDevelopment},
		{contractx.AgentTypeAutomation, prompts.Automation},
		{contractx.AgentTypeFullstack, prompts.Fullstack},
		{contractx.AgentTypeCybersecurity, prompts.Cybersecurity},
		{contractx.AgentTypeEscalation, prompts.Escalation},
	}

	specialists := make(map[contractx.AgentType]contractx.Specialist, len(personas))
	for _, p := range personas {
		modelCfg := cfg.OpenRouterFor(p.agentType)
		chatModel, err := modelCfg.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: create model for agent=%s: %v", contractx.ErrModelInvoke, p.agentType, err)
		}

		spec, err := newSpecialist(ctx, p.agentType, chatModel, p.prompt, tools)
		if err != nil {
			return nil, err
		}
		specialists[p.agentType] = spec
	}

	return &registryImpl{specialists: specialists}, nil
}
