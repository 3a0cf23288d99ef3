// Package triage routes inbound inquiries to a service area before any model
// is involved. Classification is lexical and deterministic.
package triage

import (
	"strings"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

type Intent string

const (
	IntentAIDevelopment Intent = "ai_development"
	IntentAutomation    Intent = "automation"
	IntentFullstack     Intent = "fullstack"
	IntentCybersecurity Intent = "cybersecurity"
	IntentPricing       Intent = "pricing"
	IntentCompanyInfo   Intent = "company_info"
	IntentGeneral       Intent = "general"
)

type rule struct {
	intent     Intent
	confidence float64
	keywords   []string
}

// Rules are checked in order; the first hit wins.
var rules = []rule{
	{IntentAIDevelopment, 0.85, []string{
		"ai", "artificial intelligence", "machine learning", "ml", "model",
		"neural network", "deep learning", "nlp", "computer vision",
		"generative ai", "chatbot", "llm", "custom agent",
	}},
	{IntentAutomation, 0.85, []string{
		"automation", "automate", "workflow", "process", "rpa",
		"optimize", "efficiency", "streamline", "robotic process",
	}},
	{IntentFullstack, 0.85, []string{
		"website", "web app", "frontend", "backend", "fullstack",
		"api", "database", "react", "node", "development",
	}},
	{IntentCybersecurity, 0.85, []string{
		"security", "cybersecurity", "vulnerability", "audit",
		"penetration", "pentest", "secure", "compliance", "breach",
	}},
	{IntentPricing, 0.9, []string{
		"price", "cost", "pricing", "quote", "budget", "how much", "fee",
	}},
	{IntentCompanyInfo, 0.8, []string{
		"about", "company", "services", "what do you do", "who are you",
	}},
}

// ClassifyIntent maps an utterance to a service-area intent with a coarse
// confidence. Unmatched input degrades to the general bucket instead of
// failing.
func ClassifyIntent(message string) (Intent, float64) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent, r.confidence
			}
		}
	}
	return IntentGeneral, 0.5
}

// AgentFor maps an intent onto the specialist that should answer it. Pricing
// and company questions stay with triage, which answers them from tools.
func AgentFor(intent Intent) contractx.AgentType {
	switch intent {
	case IntentAIDevelopment:
		return contractx.AgentTypeAIDevelopment
	case IntentAutomation:
		return contractx.AgentTypeAutomation
	case IntentFullstack:
		return contractx.AgentTypeFullstack
	case IntentCybersecurity:
		return contractx.AgentTypeCybersecurity
	default:
		return contractx.AgentTypeTriage
	}
}
