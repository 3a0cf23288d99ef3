package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/triage.txt
	triageRaw string

	//go:embed template/ai_development.txt
	aiDevelopmentRaw string

	//go:embed template/automation.txt
	automationRaw string

	//go:embed template/fullstack.txt
	fullstackRaw string

	//go:embed template/cybersecurity.txt
	cybersecurityRaw string

	//go:embed template/escalation.txt
	escalationRaw string

	//go:embed template/security_guard.txt
	securityGuardRaw string

	//go:embed template/content_guard.txt
	contentGuardRaw string

	//go:embed template/business_guard.txt
	businessGuardRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Triage        string
	AIDevelopment string
	Automation    string
	Fullstack     string
	Cybersecurity string
	Escalation    string
	SecurityGuard string
	ContentGuard  string
	BusinessGuard string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Triage:        strings.TrimSpace(triageRaw),
		AIDevelopment: strings.TrimSpace(aiDevelopmentRaw),
		Automation:    strings.TrimSpace(automationRaw),
		Fullstack:     strings.TrimSpace(fullstackRaw),
		Cybersecurity: strings.TrimSpace(cybersecurityRaw),
		Escalation:    strings.TrimSpace(escalationRaw),
		SecurityGuard: strings.TrimSpace(securityGuardRaw),
		ContentGuard:  strings.TrimSpace(contentGuardRaw),
		BusinessGuard: strings.TrimSpace(businessGuardRaw),
	}
}
