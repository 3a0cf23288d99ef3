package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	openrouterx "github.com/ndezwa/relego-support/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	TriageModel           string  `envconfig:"TRIAGE_MODEL" split_words:"true"`
	SpecialistModel       string  `envconfig:"SPECIALIST_MODEL" split_words:"true"`
	EscalationModel       string  `envconfig:"ESCALATION_MODEL" split_words:"true"`
	GuardrailModel        string  `envconfig:"GUARDRAIL_MODEL" split_words:"true"`
	TriageTemperature     float32 `envconfig:"TRIAGE_TEMPERATURE" split_words:"true" default:"-1"`
	SpecialistTemperature float32 `envconfig:"SPECIALIST_TEMPERATURE" split_words:"true" default:"-1"`
	EscalationTemperature float32 `envconfig:"ESCALATION_TEMPERATURE" split_words:"true" default:"-1"`
	GuardrailTemperature  float32 `envconfig:"GUARDRAIL_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves the model settings for one agent. The four service
// area specialists share the SPECIALIST overrides; triage and escalation have
// their own.
func (c Config) OpenRouterFor(agentType contractx.AgentType) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch agentType {
	case contractx.AgentTypeTriage:
		if v := strings.TrimSpace(c.TriageModel); v != "" {
			modelName = v
		}
		if c.TriageTemperature >= 0 {
			temp = c.TriageTemperature
		}
	case contractx.AgentTypeEscalation:
		if v := strings.TrimSpace(c.EscalationModel); v != "" {
			modelName = v
		}
		if c.EscalationTemperature >= 0 {
			temp = c.EscalationTemperature
		}
	case contractx.AgentTypeAIDevelopment, contractx.AgentTypeAutomation,
		contractx.AgentTypeFullstack, contractx.AgentTypeCybersecurity:
		if v := strings.TrimSpace(c.SpecialistModel); v != "" {
			modelName = v
		}
		if c.SpecialistTemperature >= 0 {
			temp = c.SpecialistTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}

// OpenRouterForGuardrail resolves the model used by the input and output
// screens. Guardrail checks default to temperature 0 when not overridden.
func (c Config) OpenRouterForGuardrail() openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	if v := strings.TrimSpace(c.GuardrailModel); v != "" {
		modelName = v
	}
	temp := float32(0)
	if c.GuardrailTemperature >= 0 {
		temp = c.GuardrailTemperature
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
