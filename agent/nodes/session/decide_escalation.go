package sessionnode

import (
	"fmt"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	intelx "github.com/ndezwa/relego-support/agent/intel"
)

const (
	// EscalationScore hands off to a human once the lead score reaches it.
	EscalationScore = intelx.QualifiedThreshold
	// EscalationInteractions hands off after this many turns regardless of score.
	EscalationInteractions = 5
)

// DecideEscalation recommends a human handoff when either threshold is met.
// The conditions are independent; one alone is sufficient.
func DecideEscalation(in *GraphState) (*GraphState, error) {
	if in == nil || in.Record == nil {
		return nil, fmt.Errorf("%w: graph record is nil", contractx.ErrValidation)
	}

	in.Escalate = in.Record.LeadScore >= EscalationScore ||
		in.Record.TotalInteractions >= EscalationInteractions
	return in, nil
}
