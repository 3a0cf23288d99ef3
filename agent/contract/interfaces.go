package contract

import "context"

type Specialist interface {
	Run(ctx context.Context, req SpecialistRequest) (SpecialistResponse, error)
}

// Registry resolves the specialist responsible for a service area.
type Registry interface {
	ForAgent(agentType AgentType) (Specialist, bool)
}

type ToolGateway interface {
	Execute(ctx context.Context, agentType string, reqs []ToolRequest) ([]ToolResult, error)
}
