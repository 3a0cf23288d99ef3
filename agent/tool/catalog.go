package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

const (
	ToolKnowledgeSearch = "knowledge_base.search"
	ToolCompanyOverview = "company.overview"
	ToolCompanyServices = "company.services"
	ToolCompanyPricing  = "company.pricing"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

func BuildForAgent(agentType contractx.AgentType) ([]*schema.ToolInfo, Executor) {
	return infosForAgent(agentType), NewExecutor(agentType)
}

func NewExecutor(agentType contractx.AgentType) Executor {
	fallback := DefaultExecutor(agentType)
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolKnowledgeSearch:
			return executeKnowledgeSearch(tool, args)
		case ToolCompanyOverview:
			return contractx.ToolResult{Tool: tool, Result: CompanyOverview()}, nil
		case ToolCompanyServices:
			return executeServiceOverview(tool, args)
		case ToolCompanyPricing:
			return contractx.ToolResult{Tool: tool, Result: PricingInfo()}, nil
		default:
			return fallback(ctx, tool, args)
		}
	}
}

func DefaultExecutor(agentType contractx.AgentType) Executor {
	return func(ctx context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for agent=%s", tool, agentType),
		}, nil
	}
}

// Gateway executes tool requests on behalf of a specialist.
type Gateway struct{}

var _ contractx.ToolGateway = Gateway{}

func (Gateway) Execute(ctx context.Context, agentType string, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	executor := NewExecutor(contractx.AgentType(agentType))
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := executor(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

var knowledgeSearchInfo = &schema.ToolInfo{
	Name: ToolKnowledgeSearch,
	Desc: "Search the company knowledge base for FAQs and service details.",
	ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
		"query":    {Type: schema.String, Desc: "Search query", Required: true},
		"category": {Type: schema.String, Desc: "Optional category filter (ai_development, automation, fullstack, cybersecurity, company)"},
	}),
}

func infosForAgent(agentType contractx.AgentType) []*schema.ToolInfo {
	switch agentType {
	case contractx.AgentTypeTriage:
		return []*schema.ToolInfo{
			knowledgeSearchInfo,
			{
				Name: ToolCompanyOverview,
				Desc: "Get the company overview: mission, contact, business hours, services.",
			},
			{
				Name: ToolCompanyServices,
				Desc: "Get the overview of a specific service area.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"service": {Type: schema.String, Desc: "Service area (ai_development, automation, fullstack, cybersecurity)", Required: true},
				}),
			},
			{
				Name: ToolCompanyPricing,
				Desc: "Get starting prices and quote process.",
			},
		}
	case contractx.AgentTypeAIDevelopment,
		contractx.AgentTypeAutomation,
		contractx.AgentTypeFullstack,
		contractx.AgentTypeCybersecurity:
		return []*schema.ToolInfo{knowledgeSearchInfo}
	default:
		return nil
	}
}
