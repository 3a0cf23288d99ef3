package specialist

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	toolx "github.com/ndezwa/relego-support/agent/tool"
)

type fakeToolCallingModel struct {
	responses []*schema.Message
	err       error
	idx       int
}

func (f *fakeToolCallingModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeToolCallingModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeToolCallingModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

type fakeGateway struct {
	calls   []contractx.ToolRequest
	results []contractx.ToolResult
	err     error
}

func (f *fakeGateway) Execute(ctx context.Context, agentType string, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	f.calls = append(f.calls, reqs...)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestSpecialistStructuredReply(t *testing.T) {
	t.Parallel()

	// Escalation has no tools, so the runtime goes straight to the
	// structured path.
	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Content: `{"message":"A human specialist will reach out shortly.","escalate":true}`},
		},
	}

	spec, err := newSpecialist(context.Background(), contractx.AgentTypeEscalation, fake, "escalation prompt", &fakeGateway{})
	if err != nil {
		t.Fatalf("newSpecialist() error = %v", err)
	}

	resp, err := spec.Run(context.Background(), contractx.SpecialistRequest{
		UserMessage: "I need to talk to a person",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Message == "" || !resp.Escalate {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.ToolRequests) != 0 {
		t.Fatalf("escalation made tool requests: %#v", resp.ToolRequests)
	}
}

func TestSpecialistToolPath(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						Function: schema.FunctionCall{
							Name:      toolx.ToolKnowledgeSearch,
							Arguments: `{"query":"chatbot pricing","category":"ai_development"}`,
						},
					},
				},
			},
			{Content: `{"message":"Our chatbot projects start at $5,000.","follow_up_needed":true}`},
		},
	}
	gateway := &fakeGateway{
		results: []contractx.ToolResult{
			{Tool: toolx.ToolKnowledgeSearch, Result: "chatbots start at $5,000"},
		},
	}

	spec, err := newSpecialist(context.Background(), contractx.AgentTypeAIDevelopment, fake, "ai prompt", gateway)
	if err != nil {
		t.Fatalf("newSpecialist() error = %v", err)
	}

	resp, err := spec.Run(context.Background(), contractx.SpecialistRequest{
		UserMessage: "how much is a chatbot?",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(gateway.calls) != 1 || gateway.calls[0].Tool != toolx.ToolKnowledgeSearch {
		t.Fatalf("unexpected gateway calls: %#v", gateway.calls)
	}
	if gateway.calls[0].Args["query"] != "chatbot pricing" {
		t.Fatalf("unexpected tool args: %#v", gateway.calls[0].Args)
	}
	if !resp.FollowUpNeeded {
		t.Fatal("expected follow up flag from final reply")
	}
	if len(resp.ToolRequests) != 1 {
		t.Fatalf("unexpected tool requests: %#v", resp.ToolRequests)
	}
}

func TestSpecialistPlanWithoutToolCallsAnswersDirectly(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "no tools needed"},
			{Content: `{"message":"Happy to explain our automation services."}`},
		},
	}
	gateway := &fakeGateway{}

	spec, err := newSpecialist(context.Background(), contractx.AgentTypeAutomation, fake, "automation prompt", gateway)
	if err != nil {
		t.Fatalf("newSpecialist() error = %v", err)
	}

	resp, err := spec.Run(context.Background(), contractx.SpecialistRequest{
		UserMessage: "what automation services do you offer?",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Fatalf("gateway called without tool requests: %#v", gateway.calls)
	}
	if resp.Message == "" {
		t.Fatal("expected direct answer")
	}
}

func TestSpecialistRejectsDisallowedTool(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						Function: schema.FunctionCall{
							Name:      toolx.ToolCompanyPricing,
							Arguments: `{}`,
						},
					},
				},
			},
		},
	}
	gateway := &fakeGateway{}

	// Service-area specialists only carry knowledge search.
	spec, err := newSpecialist(context.Background(), contractx.AgentTypeFullstack, fake, "fullstack prompt", gateway)
	if err != nil {
		t.Fatalf("newSpecialist() error = %v", err)
	}

	_, err = spec.Run(context.Background(), contractx.SpecialistRequest{
		UserMessage: "build me a website",
	})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Fatalf("gateway called despite disallowed tool: %#v", gateway.calls)
	}
}

func TestSpecialistSkipsToolPathWithResults(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Content: `{"message":"Based on the search, audits start at $2,000."}`},
		},
	}

	spec, err := newSpecialist(context.Background(), contractx.AgentTypeCybersecurity, fake, "security prompt", &fakeGateway{})
	if err != nil {
		t.Fatalf("newSpecialist() error = %v", err)
	}

	resp, err := spec.Run(context.Background(), contractx.SpecialistRequest{
		UserMessage: "how much is an audit?",
		ToolResults: []contractx.ToolResult{
			{Tool: toolx.ToolKnowledgeSearch, Result: "audits start at $2,000"},
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Message == "" {
		t.Fatal("expected a reply from the structured path")
	}
}

func TestSpecialistEmptyMessageIsSchemaViolation(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Content: `{"message":"   "}`},
		},
	}

	spec, err := newSpecialist(context.Background(), contractx.AgentTypeEscalation, fake, "escalation prompt", &fakeGateway{})
	if err != nil {
		t.Fatalf("newSpecialist() error = %v", err)
	}

	_, err = spec.Run(context.Background(), contractx.SpecialistRequest{UserMessage: "hello?"})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}
