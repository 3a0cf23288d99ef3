package triage

import (
	"testing"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

func TestClassifyIntent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		message string
		want    Intent
	}{
		{"I need a machine learning model for churn prediction", IntentAIDevelopment},
		{"can you automate our invoicing workflow?", IntentAutomation},
		{"we need a new website with a react frontend", IntentFullstack},
		{"looking for a security audit of our network", IntentCybersecurity},
		{"how much does a project cost?", IntentPricing},
		{"tell me about your company", IntentCompanyInfo},
		{"hello there", IntentGeneral},
	}
	for _, tc := range cases {
		got, confidence := ClassifyIntent(tc.message)
		if got != tc.want {
			t.Fatalf("ClassifyIntent(%q) = %s, want %s", tc.message, got, tc.want)
		}
		if confidence <= 0 || confidence > 1 {
			t.Fatalf("ClassifyIntent(%q) confidence = %v", tc.message, confidence)
		}
	}
}

func TestClassifyIntentFirstRuleWins(t *testing.T) {
	t.Parallel()

	// Mentions both ml and pricing; the earlier service-area rule wins.
	got, _ := ClassifyIntent("what does a machine learning project cost?")
	if got != IntentAIDevelopment {
		t.Fatalf("got %s, want ai_development", got)
	}
}

func TestAgentFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		intent Intent
		want   contractx.AgentType
	}{
		{IntentAIDevelopment, contractx.AgentTypeAIDevelopment},
		{IntentAutomation, contractx.AgentTypeAutomation},
		{IntentFullstack, contractx.AgentTypeFullstack},
		{IntentCybersecurity, contractx.AgentTypeCybersecurity},
		{IntentPricing, contractx.AgentTypeTriage},
		{IntentCompanyInfo, contractx.AgentTypeTriage},
		{IntentGeneral, contractx.AgentTypeTriage},
	}
	for _, tc := range cases {
		if got := AgentFor(tc.intent); got != tc.want {
			t.Fatalf("AgentFor(%s) = %s, want %s", tc.intent, got, tc.want)
		}
	}
}
