package customer

import (
	"fmt"
	"strings"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

// ProfilePatch is an explicit, enumerated profile update. Nil fields are left
// untouched. It deliberately excludes the lead-qualification fields: those are
// owned by the scoring pipeline and SetOutcome.
type ProfilePatch struct {
	Email              *string
	CompanyName        *string
	Tier               *Tier
	Industry           *string
	CompanySize        *string
	TechnicalLevel     *string
	CommunicationStyle *string
	BudgetRange        *string
	DecisionTimeline   *string
}

var (
	technicalLevels     = map[string]bool{"beginner": true, "intermediate": true, "expert": true}
	communicationStyles = map[string]bool{"casual": true, "professional": true, "technical": true}
)

func (p ProfilePatch) validate() error {
	if p.Tier != nil && !p.Tier.Valid() {
		return fmt.Errorf("%w: unknown tier %q", contractx.ErrValidation, *p.Tier)
	}
	if p.TechnicalLevel != nil && !technicalLevels[strings.ToLower(*p.TechnicalLevel)] {
		return fmt.Errorf("%w: unknown technical level %q", contractx.ErrValidation, *p.TechnicalLevel)
	}
	if p.CommunicationStyle != nil && !communicationStyles[strings.ToLower(*p.CommunicationStyle)] {
		return fmt.Errorf("%w: unknown communication style %q", contractx.ErrValidation, *p.CommunicationStyle)
	}
	return nil
}

func (p ProfilePatch) apply(r *Record) {
	if p.Email != nil {
		r.Email = strings.TrimSpace(*p.Email)
	}
	if p.CompanyName != nil {
		r.CompanyName = strings.TrimSpace(*p.CompanyName)
	}
	if p.Tier != nil {
		r.Tier = *p.Tier
	}
	if p.Industry != nil {
		r.Industry = strings.TrimSpace(*p.Industry)
	}
	if p.CompanySize != nil {
		r.CompanySize = strings.TrimSpace(*p.CompanySize)
	}
	if p.TechnicalLevel != nil {
		r.TechnicalLevel = strings.ToLower(*p.TechnicalLevel)
	}
	if p.CommunicationStyle != nil {
		r.CommunicationStyle = strings.ToLower(*p.CommunicationStyle)
	}
	if p.BudgetRange != nil {
		r.BudgetRange = strings.TrimSpace(*p.BudgetRange)
	}
	if p.DecisionTimeline != nil {
		r.DecisionTimeline = strings.TrimSpace(*p.DecisionTimeline)
	}
}
