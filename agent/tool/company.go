package tool

import (
	"strings"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

// Static company facts served to the triage agent.

func CompanyOverview() string {
	return `About Relego AI Solutions

We are a technology company specializing in AI-driven solutions for businesses.

Mission: transforming businesses through intelligent automation and AI innovation.
Contact: support@ndezwa.dev | https://ndezwa.dev
Business hours: 08:00 - 18:00 UTC

Services:
- AI Development: custom AI agents, ML models, generative AI solutions
- Automation Solutions: process automation and workflow optimization
- Full-Stack Development: web applications and API development
- Cybersecurity Services: security audits and secure development`
}

var serviceOverviews = map[string]string{
	"ai_development": `AI Development Services

Custom AI agents, machine learning models, generative AI solutions, and AI
integration into existing systems. Starting from $5,000 for basic implementations.`,

	"automation": `Automation Solutions

Process automation, workflow optimization, RPA implementation, and analytics
integration. Starting from $3,000 for process automation.`,

	"fullstack": `Full-Stack Development

Modern responsive web applications, robust API development, mobile-first design,
and scalable cloud deployment. Starting from $4,000 for web applications.`,

	"cybersecurity": `Cybersecurity Services

Comprehensive security audits, penetration testing, compliance services (GDPR,
HIPAA), and security-first development practices. Starting from $2,000 for audits.`,
}

func ServiceOverview(service string) (string, bool) {
	overview, ok := serviceOverviews[strings.ToLower(strings.TrimSpace(service))]
	return overview, ok
}

func PricingInfo() string {
	return `Pricing Information

Pricing is customized to project scope. A free initial consultation is available.

Starting prices:
- AI Development: from $5,000
- Automation Solutions: from $3,000
- Full-Stack Development: from $4,000
- Cybersecurity Services: from $2,000

For an accurate quote we connect you with the sales team.`
}

func executeServiceOverview(tool string, args map[string]any) (contractx.ToolResult, error) {
	rawService, ok := args["service"]
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "service is required"}, nil
	}
	service, ok := rawService.(string)
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "service must be a string"}, nil
	}

	overview, ok := ServiceOverview(service)
	if !ok {
		// Unknown service areas degrade to an empty result rather than failing.
		return contractx.ToolResult{Tool: tool, Result: ""}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: overview}, nil
}
