package tool

import (
	"context"
	"strings"
	"testing"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

func TestInfosPerAgent(t *testing.T) {
	t.Parallel()

	infos, _ := BuildForAgent(contractx.AgentTypeTriage)
	if len(infos) != 4 {
		t.Fatalf("triage tool count = %d, want 4", len(infos))
	}

	infos, _ = BuildForAgent(contractx.AgentTypeCybersecurity)
	if len(infos) != 1 || infos[0].Name != ToolKnowledgeSearch {
		t.Fatalf("specialist tools = %#v", infos)
	}

	infos, _ = BuildForAgent(contractx.AgentTypeEscalation)
	if len(infos) != 0 {
		t.Fatalf("escalation tools = %#v", infos)
	}
}

func TestExecutorKnowledgeSearch(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeAIDevelopment)
	res, err := executor(context.Background(), ToolKnowledgeSearch, map[string]any{
		"query":    "chatbot",
		"category": "ai_development",
	})
	if err != nil {
		t.Fatalf("executor error = %v", err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected tool error: %s", res.Error)
	}
	out, ok := res.Result.(KnowledgeSearchOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", res.Result)
	}
	if len(out.Matches) == 0 {
		t.Fatal("expected at least one knowledge match for chatbot")
	}
}

func TestExecutorKnowledgeSearchRequiresQuery(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeTriage)
	res, err := executor(context.Background(), ToolKnowledgeSearch, map[string]any{})
	if err != nil {
		t.Fatalf("executor error = %v", err)
	}
	if res.Error == "" {
		t.Fatal("expected a tool error for a missing query")
	}
}

func TestExecutorUnknownToolFallsBack(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeTriage)
	res, err := executor(context.Background(), "no.such_tool", nil)
	if err != nil {
		t.Fatalf("executor error = %v", err)
	}
	if !strings.Contains(res.Error, "unavailable") {
		t.Fatalf("unexpected fallback result: %+v", res)
	}
}

func TestGatewayExecute(t *testing.T) {
	t.Parallel()

	results, err := Gateway{}.Execute(context.Background(), string(contractx.AgentTypeTriage), []contractx.ToolRequest{
		{Tool: ToolCompanyOverview},
		{Tool: ToolCompanyPricing},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Error != "" || r.Result == nil {
			t.Fatalf("unexpected result: %+v", r)
		}
	}
}

func TestSearchKnowledgeCategoryFilter(t *testing.T) {
	t.Parallel()

	everywhere := SearchKnowledge("audit", "")
	scoped := SearchKnowledge("audit", "cybersecurity")
	if len(scoped.Matches) == 0 {
		t.Fatal("expected cybersecurity matches for audit")
	}
	if len(scoped.Matches) > len(everywhere.Matches) {
		t.Fatalf("scoped search found more than global: %d vs %d", len(scoped.Matches), len(everywhere.Matches))
	}

	if out := SearchKnowledge("", "cybersecurity"); len(out.Matches) != 0 {
		t.Fatalf("empty query must not match, got %#v", out.Matches)
	}
}
