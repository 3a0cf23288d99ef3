// Package guardrail screens text entering and leaving the assistant. Cheap
// lexical tiers settle most verdicts; a structured model assessment handles
// the long ambiguous remainder when a model is configured.
package guardrail

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	llmx "github.com/ndezwa/relego-support/agent/llm"
	promptx "github.com/ndezwa/relego-support/agent/prompt"
)

const (
	securityAssessmentMinLen = 50
	businessAssessmentMinLen = 100
	shortInputPassLen        = 20
	minProfessionalReplyLen  = 20
	lowQualityThreshold      = 4
)

// InputVerdict is the inbound screening result.
type InputVerdict struct {
	Allowed  bool
	Reason   string
	Security *contractx.SecurityAssessment
	Business *contractx.BusinessAssessment
}

// OutputVerdict is the outbound screening result.
type OutputVerdict struct {
	Allowed bool
	Reason  string
	Content *contractx.ContentAssessment
}

// InputScreen validates inbound customer text before any specialist sees it.
type InputScreen struct {
	securityRunner compose.Runnable[map[string]any, contractx.SecurityAssessment]
	businessRunner compose.Runnable[map[string]any, contractx.BusinessAssessment]
}

// NewInputScreen builds the inbound screen. chatModel may be nil, in which
// case only the lexical tiers run.
func NewInputScreen(ctx context.Context, chatModel einomodel.BaseChatModel, prompts promptx.PromptSet) (*InputScreen, error) {
	s := &InputScreen{}
	if chatModel == nil {
		return s, nil
	}

	securityRunner, err := llmx.CompileStructuredGraph[contractx.SecurityAssessment](
		ctx, chatModel, prompts.SecurityGuard, "guardrail.security_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile security guard graph: %v", contractx.ErrModelInvoke, err)
	}
	businessRunner, err := llmx.CompileStructuredGraph[contractx.BusinessAssessment](
		ctx, chatModel, prompts.BusinessGuard, "guardrail.business_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile business guard graph: %v", contractx.ErrModelInvoke, err)
	}

	s.securityRunner = securityRunner
	s.businessRunner = businessRunner
	return s, nil
}

// Screen returns whether text may enter the assistant. The tiers mirror the
// inbound policy: greetings pass, hard threat and homework patterns trip,
// short or clearly business-flavored text passes, and only the long ambiguous
// remainder reaches the model.
func (s *InputScreen) Screen(ctx context.Context, text string) (InputVerdict, error) {
	trimmed := strings.TrimSpace(text)

	if simpleGreetings[strings.ToLower(trimmed)] {
		return InputVerdict{Allowed: true, Reason: "greeting"}, nil
	}

	if pattern, ok := anyMatch(highThreatPatterns, trimmed); ok {
		log.Warn().Str("pattern", pattern).Msg("input guardrail tripped on threat pattern")
		return InputVerdict{Allowed: false, Reason: "threat_pattern"}, nil
	}
	if _, ok := anyMatch(homeworkPatterns, trimmed); ok {
		return InputVerdict{Allowed: false, Reason: "off_topic"}, nil
	}

	if len(trimmed) < shortInputPassLen {
		return InputVerdict{Allowed: true, Reason: "short_input"}, nil
	}

	lower := strings.ToLower(trimmed)
	for _, kw := range businessKeywords {
		if strings.Contains(lower, kw) {
			return InputVerdict{Allowed: true, Reason: "business_keywords"}, nil
		}
	}

	if s.securityRunner != nil && len(trimmed) > securityAssessmentMinLen {
		assessment, err := s.runSecurity(ctx, trimmed)
		if err != nil {
			return InputVerdict{}, err
		}
		if assessment.IsMalicious || assessment.ThreatLevel == "high" {
			log.Warn().Str("threat_level", assessment.ThreatLevel).Msg("input guardrail tripped on security assessment")
			return InputVerdict{Allowed: false, Reason: "security_assessment", Security: assessment}, nil
		}
		if s.businessRunner != nil && len(trimmed) > businessAssessmentMinLen {
			business, err := s.runBusiness(ctx, trimmed)
			if err != nil {
				return InputVerdict{}, err
			}
			if !business.IsBusinessRelated || !business.IsSupportAppropriate {
				return InputVerdict{Allowed: false, Reason: "business_assessment", Security: assessment, Business: business}, nil
			}
			return InputVerdict{Allowed: true, Reason: "assessed", Security: assessment, Business: business}, nil
		}
		return InputVerdict{Allowed: true, Reason: "assessed", Security: assessment}, nil
	}

	return InputVerdict{Allowed: true, Reason: "default_pass"}, nil
}

func (s *InputScreen) runSecurity(ctx context.Context, text string) (*contractx.SecurityAssessment, error) {
	out, err := s.securityRunner.Invoke(ctx, map[string]any{"input": text})
	if err != nil {
		return nil, fmt.Errorf("%w: security assessment: %v", contractx.ErrModelInvoke, err)
	}
	return &out, nil
}

func (s *InputScreen) runBusiness(ctx context.Context, text string) (*contractx.BusinessAssessment, error) {
	out, err := s.businessRunner.Invoke(ctx, map[string]any{"input": text})
	if err != nil {
		return nil, fmt.Errorf("%w: business assessment: %v", contractx.ErrModelInvoke, err)
	}
	return &out, nil
}

// OutputScreen validates generated replies before they reach the customer.
type OutputScreen struct {
	contentRunner compose.Runnable[map[string]any, contractx.ContentAssessment]
}

// NewOutputScreen builds the outbound screen. chatModel may be nil.
func NewOutputScreen(ctx context.Context, chatModel einomodel.BaseChatModel, prompts promptx.PromptSet) (*OutputScreen, error) {
	s := &OutputScreen{}
	if chatModel == nil {
		return s, nil
	}

	contentRunner, err := llmx.CompileStructuredGraph[contractx.ContentAssessment](
		ctx, chatModel, prompts.ContentGuard, "guardrail.content_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile content guard graph: %v", contractx.ErrModelInvoke, err)
	}
	s.contentRunner = contentRunner
	return s, nil
}

// Screen returns whether a generated reply may be shown.
func (s *OutputScreen) Screen(ctx context.Context, text string) (OutputVerdict, error) {
	trimmed := strings.TrimSpace(text)

	if pattern, ok := anyMatch(sensitivePatterns, trimmed); ok {
		log.Warn().Str("pattern", pattern).Msg("output guardrail tripped on sensitive pattern")
		return OutputVerdict{Allowed: false, Reason: "sensitive_info"}, nil
	}
	if _, ok := anyMatch(unprofessionalPatterns, trimmed); ok {
		return OutputVerdict{Allowed: false, Reason: "unprofessional_tone"}, nil
	}
	if len(trimmed) < minProfessionalReplyLen {
		return OutputVerdict{Allowed: false, Reason: "too_short"}, nil
	}

	if s.contentRunner != nil {
		out, err := s.contentRunner.Invoke(ctx, map[string]any{"input": trimmed})
		if err != nil {
			return OutputVerdict{}, fmt.Errorf("%w: content assessment: %v", contractx.ErrModelInvoke, err)
		}
		if out.ContainsSensitiveInfo || !out.IsProfessional || out.QualityScore < lowQualityThreshold {
			detail, _ := json.Marshal(out)
			log.Warn().RawJSON("assessment", detail).Msg("output guardrail tripped on content assessment")
			return OutputVerdict{Allowed: false, Reason: "content_assessment", Content: &out}, nil
		}
		return OutputVerdict{Allowed: true, Reason: "assessed", Content: &out}, nil
	}

	return OutputVerdict{Allowed: true, Reason: "default_pass"}, nil
}
